package controllers

import (
	"strconv"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	Svc *services.EmployeeService
	Hub *ws.EventHub
}

func NewEmployeeController(svc *services.EmployeeService, hub *ws.EventHub) *EmployeeController {
	return &EmployeeController{Svc: svc, Hub: hub}
}

// GET /staff/employees?user_email=
func (ctl *EmployeeController) List(c *gin.Context) {
	items, err := ctl.Svc.List(c.Query("user_email"))
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /staff/employees
func (ctl *EmployeeController) Create(c *gin.Context) {
	var req services.CreateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	emp, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("employees", emp.OrgID)
	resp.Created(c, emp)
}

// PUT /staff/employees/:id
func (ctl *EmployeeController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	emp, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("employees", emp.OrgID)
	resp.OK(c, emp)
}

type deleteReq struct {
	UserEmail string `json:"user_email" binding:"required,email"`
}

// DELETE /staff/employees/:id
func (ctl *EmployeeController) Delete(c *gin.Context) {
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
	ctl.Hub.Publish("employees", 0)
	resp.Message(c, "employee deleted")
}

type setBalanceReq struct {
	UserEmail string  `json:"user_email" binding:"required,email"`
	Balance   float64 `json:"balance"`
}

// PATCH /staff/employees/:id/balance
// Absolute write; the UI computes current + delta and sends the result.
func (ctl *EmployeeController) SetBalance(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req setBalanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	emp, err := ctl.Svc.SetBalance(req.UserEmail, uint(id), req.Balance)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctl.Hub.Publish("employees", emp.OrgID)
	resp.OK(c, emp)
}
