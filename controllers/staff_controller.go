package controllers

import (
	"strconv"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Svc *services.StaffService
	Hub *ws.EventHub
}

func NewStaffController(svc *services.StaffService, hub *ws.EventHub) *StaffController {
	return &StaffController{Svc: svc, Hub: hub}
}

// GET /staff/members?user_email=
func (ctl *StaffController) List(c *gin.Context) {
	items, err := ctl.Svc.List(c.Query("user_email"))
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /staff/members
func (ctl *StaffController) Create(c *gin.Context) {
	var req services.CreateStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	member, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("organization_staff", member.OrgID)
	resp.Created(c, gin.H{
		"id": member.ID, "name": member.Name, "email": member.Email,
		"phone": member.Phone, "orgId": member.OrgID,
	})
}

// PUT /staff/members/:id
func (ctl *StaffController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	member, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("organization_staff", member.OrgID)
	resp.OK(c, member)
}

// DELETE /staff/members/:id
func (ctl *StaffController) Delete(c *gin.Context) {
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
	ctl.Hub.Publish("organization_staff", 0)
	resp.Message(c, "staff member deleted")
}
