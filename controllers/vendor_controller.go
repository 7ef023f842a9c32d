package controllers

import (
	"strconv"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	Svc *services.VendorService
	Hub *ws.EventHub
}

func NewVendorController(svc *services.VendorService, hub *ws.EventHub) *VendorController {
	return &VendorController{Svc: svc, Hub: hub}
}

// GET /staff/vendors?user_email=  (also used by employee browsing)
func (ctl *VendorController) List(c *gin.Context) {
	items, err := ctl.Svc.List(c.Query("user_email"))
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /staff/vendors
func (ctl *VendorController) Create(c *gin.Context) {
	var req services.CreateVendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("vendors", v.OrgID)
	resp.Created(c, v)
}

// PUT /staff/vendors/:id
func (ctl *VendorController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateVendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("vendors", v.OrgID)
	resp.OK(c, v)
}

// DELETE /staff/vendors/:id
func (ctl *VendorController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.Delete(req.UserEmail, uint(id)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("vendors", 0)
	resp.Message(c, "vendor deleted")
}
