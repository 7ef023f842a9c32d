package controllers

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	Svc *services.ImportService
	Hub *ws.EventHub
}

func NewImportController(svc *services.ImportService, hub *ws.EventHub) *ImportController {
	return &ImportController{Svc: svc, Hub: hub}
}

// POST /staff/import
func (ctl *ImportController) Import(c *gin.Context) {
	var req services.ImportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := ctl.Svc.Import(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if result.Count > 0 {
		ctl.Hub.Publish(req.Type, 0)
	}
	resp.OK(c, result)
}

// GET /staff/import/template?type=
func (ctl *ImportController) Template(c *gin.Context) {
	text, err := services.Template(c.Query("type"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	c.Header("Content-Type", "text/csv")
	c.String(200, text)
}
