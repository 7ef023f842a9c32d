package controllers

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/pkg/resp"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardController does its counting queries directly against the DB.
type DashboardController struct {
	DB   *gorm.DB
	Auth *services.AuthService
}

func NewDashboardController(db *gorm.DB, auth *services.AuthService) *DashboardController {
	return &DashboardController{DB: db, Auth: auth}
}

func (ctl *DashboardController) countByOrg(model any, orgID uint) int64 {
	var n int64
	ctl.DB.Model(model).Where("org_id = ?", orgID).Count(&n)
	return n
}

// GET /staff/dashboard?user_email=
func (ctl *DashboardController) Staff(c *gin.Context) {
	caller, err := ctl.Auth.ResolveRole(c.Query("user_email"), entity.RoleStaff)
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}

	orders := gin.H{}
	for _, st := range []string{
		entity.OrderPlaced, entity.OrderPreparing, entity.OrderPrepared,
		entity.OrderGiven, entity.OrderCancelRequested, entity.OrderCancelled,
	} {
		var n int64
		ctl.DB.Model(&entity.Order{}).Where("org_id = ? AND status = ?", caller.OrgID, st).Count(&n)
		orders[st] = n
	}

	resp.OK(c, gin.H{
		"employees": ctl.countByOrg(&entity.Employee{}, caller.OrgID),
		"vendors":   ctl.countByOrg(&entity.Vendor{}, caller.OrgID),
		"staff":     ctl.countByOrg(&entity.OrganizationStaff{}, caller.OrgID),
		"menuItems": ctl.countByOrg(&entity.MenuItem{}, caller.OrgID),
		"orders":    orders,
	})
}

// GET /vendor/dashboard?user_email=
func (ctl *DashboardController) Vendor(c *gin.Context) {
	caller, err := ctl.Auth.ResolveRole(c.Query("user_email"), entity.RoleVendor)
	if err != nil {
		resp.Forbidden(c, err.Error())
		return
	}

	orders := gin.H{}
	for _, st := range []string{
		entity.OrderPlaced, entity.OrderPreparing, entity.OrderPrepared,
		entity.OrderGiven, entity.OrderCancelRequested, entity.OrderCancelled,
	} {
		var n int64
		ctl.DB.Model(&entity.Order{}).Where("vendor_id = ? AND status = ?", caller.ID, st).Count(&n)
		orders[st] = n
	}

	var menuItems int64
	ctl.DB.Model(&entity.MenuItem{}).Where("vendor_id = ?", caller.ID).Count(&menuItems)

	resp.OK(c, gin.H{
		"menuItems": menuItems,
		"orders":    orders,
	})
}
