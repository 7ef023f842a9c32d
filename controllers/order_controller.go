package controllers

import (
	"strconv"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
	Hub *ws.EventHub
}

func NewOrderController(svc *services.OrderService, hub *ws.EventHub) *OrderController {
	return &OrderController{Svc: svc, Hub: hub}
}

// ---------------- Employee side ----------------

// POST /employee/orders
func (ctl *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.Svc.Place(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("orders", 0)
	resp.Created(c, out)
}

// GET /employee/orders?user_email=&limit=
func (ctl *OrderController) ListForEmployee(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := ctl.Svc.ListForEmployee(c.Query("user_email"), limit)
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /employee/orders/:id?user_email=
func (ctl *OrderController) DetailForEmployee(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	detail, err := ctl.Svc.DetailForEmployee(c.Query("user_email"), uint(id))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, detail)
}

type cancelRequestReq struct {
	UserEmail string `json:"user_email" binding:"required,email"`
}

// POST /employee/orders/:id/cancel-request
func (ctl *OrderController) RequestCancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req cancelRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.RequestCancel(req.UserEmail, uint(id)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("orders", 0)
	resp.Message(c, "cancellation requested")
}

// ---------------- Vendor side ----------------

// GET /vendor/orders?user_email=&status=&limit=
func (ctl *OrderController) ListForVendor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := ctl.Svc.ListForVendor(c.Query("user_email"), c.Query("status"), limit)
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /vendor/orders/:id?user_email=
func (ctl *OrderController) DetailForVendor(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	detail, err := ctl.Svc.DetailForVendor(c.Query("user_email"), uint(id))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, detail)
}

type setStatusReq struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	Status    string `json:"status" binding:"required"`
}

// PATCH /vendor/orders/:id/status
func (ctl *OrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.SetStatus(req.UserEmail, uint(id), req.Status); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("orders", 0)
	resp.Message(c, "status updated")
}

type handleCancelReq struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	Action    string `json:"action" binding:"required,oneof=accept reject"`
}

// POST /vendor/orders/:id/cancellation
func (ctl *OrderController) HandleCancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req handleCancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.HandleCancel(req.UserEmail, uint(id), req.Action); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("orders", 0)
	ctl.Hub.Publish("employees", 0) // balance may have changed
	resp.Message(c, "cancellation "+req.Action+"ed")
}
