package controllers

import (
	"net/http"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req services.RegisterOrgReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	org, staff, err := ctl.Auth.RegisterOrganization(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{
		"organization": org,
		"staff": gin.H{
			"id": staff.ID, "name": staff.Name, "email": staff.Email, "orgId": staff.OrgID,
		},
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := ctl.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id": id.ID, "role": id.Role, "orgId": id.OrgID,
			"name": id.Name, "email": id.Email,
		},
	})
}

// GET /auth/session?email=
// The client re-resolves its stored email on page load.
func (ctl *AuthController) Session(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, "email is required")
		return
	}
	id, err := ctl.Auth.Resolve(email)
	if err != nil {
		resp.Unauthorized(c, "unknown email")
		return
	}
	resp.OK(c, gin.H{
		"id": id.ID, "role": id.Role, "orgId": id.OrgID,
		"name": id.Name, "email": id.Email,
	})
}

type ChangePasswordRequest struct {
	UserEmail   string `json:"user_email" binding:"required,email"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// POST /auth/change-password
func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Auth.ChangePassword(req.UserEmail, req.OldPassword, req.NewPassword); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Message(c, "password updated")
}
