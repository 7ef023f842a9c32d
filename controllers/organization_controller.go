package controllers

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

type OrganizationController struct {
	Svc *services.OrganizationService
	Hub *ws.EventHub
}

func NewOrganizationController(svc *services.OrganizationService, hub *ws.EventHub) *OrganizationController {
	return &OrganizationController{Svc: svc, Hub: hub}
}

// GET /staff/organization?user_email=
func (ctl *OrganizationController) Get(c *gin.Context) {
	org, err := ctl.Svc.Get(c.Query("user_email"))
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, org)
}

// PUT /staff/organization
func (ctl *OrganizationController) Update(c *gin.Context) {
	var req services.UpdateOrganizationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	org, err := ctl.Svc.Update(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("organizations", org.ID)
	resp.OK(c, org)
}
