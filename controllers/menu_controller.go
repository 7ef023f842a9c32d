package controllers

import (
	"strconv"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
	Hub *ws.EventHub
}

func NewMenuController(svc *services.MenuService, hub *ws.EventHub) *MenuController {
	return &MenuController{Svc: svc, Hub: hub}
}

// GET /vendor/menu-items?user_email=
func (ctl *MenuController) ListOwn(c *gin.Context) {
	items, err := ctl.Svc.ListOwn(c.Query("user_email"))
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /employee/vendors/:id/menu?user_email=
// Active items only.
func (ctl *MenuController) Browse(c *gin.Context) {
	vendorID, _ := strconv.Atoi(c.Param("id"))

	items, err := ctl.Svc.Browse(c.Query("user_email"), uint(vendorID))
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /vendor/menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("menu_items", m.OrgID)
	resp.Created(c, m)
}

// PUT /vendor/menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("menu_items", m.OrgID)
	resp.OK(c, m)
}

// DELETE /vendor/menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
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
	ctl.Hub.Publish("menu_items", 0)
	resp.Message(c, "menu item deleted")
}
