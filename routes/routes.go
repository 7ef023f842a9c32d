package routes

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/controllers"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/services"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *ws.EventHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	accounts := repository.NewAccountRepository(db)
	orgs := repository.NewOrganizationRepository(db)
	staff := repository.NewStaffRepository(db)
	employees := repository.NewEmployeeRepository(db)
	vendors := repository.NewVendorRepository(db)
	menu := repository.NewMenuRepository(db)
	orders := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, accounts, orgs, staff)
	orgSvc := services.NewOrganizationService(authSvc, orgs)
	staffSvc := services.NewStaffService(authSvc, staff)
	empSvc := services.NewEmployeeService(authSvc, employees)
	vendorSvc := services.NewVendorService(authSvc, vendors)
	menuSvc := services.NewMenuService(authSvc, menu, vendors)
	orderSvc := services.NewOrderService(db, authSvc, orders, menu, employees, vendors)
	importSvc := services.NewImportService(authSvc, employees, vendors, staff, menu)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orgCtrl := controllers.NewOrganizationController(orgSvc, hub)
	staffCtrl := controllers.NewStaffController(staffSvc, hub)
	empCtrl := controllers.NewEmployeeController(empSvc, hub)
	vendorCtrl := controllers.NewVendorController(vendorSvc, hub)
	menuCtrl := controllers.NewMenuController(menuSvc, hub)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	importCtrl := controllers.NewImportController(importSvc, hub)
	dashCtrl := controllers.NewDashboardController(db, authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/session", authCtrl.Session)
		a.POST("/change-password", authCtrl.ChangePassword)
	}

	// Staff
	st := r.Group("/staff")
	{
		st.GET("/dashboard", dashCtrl.Staff)

		st.GET("/organization", orgCtrl.Get)
		st.PUT("/organization", orgCtrl.Update)

		st.GET("/members", staffCtrl.List)
		st.POST("/members", staffCtrl.Create)
		st.PUT("/members/:id", staffCtrl.Update)
		st.DELETE("/members/:id", staffCtrl.Delete)

		st.GET("/employees", empCtrl.List)
		st.POST("/employees", empCtrl.Create)
		st.PUT("/employees/:id", empCtrl.Update)
		st.DELETE("/employees/:id", empCtrl.Delete)
		st.PATCH("/employees/:id/balance", empCtrl.SetBalance)

		st.GET("/vendors", vendorCtrl.List)
		st.POST("/vendors", vendorCtrl.Create)
		st.PUT("/vendors/:id", vendorCtrl.Update)
		st.DELETE("/vendors/:id", vendorCtrl.Delete)

		st.POST("/import", importCtrl.Import)
		st.GET("/import/template", importCtrl.Template)
	}

	// Employee
	emp := r.Group("/employee")
	{
		emp.GET("/vendors", vendorCtrl.List)
		emp.GET("/vendors/:id/menu", menuCtrl.Browse)

		emp.POST("/orders", orderCtrl.Place)
		emp.GET("/orders", orderCtrl.ListForEmployee)
		emp.GET("/orders/:id", orderCtrl.DetailForEmployee)
		emp.POST("/orders/:id/cancel-request", orderCtrl.RequestCancel)
	}

	// Vendor
	v := r.Group("/vendor")
	{
		v.GET("/dashboard", dashCtrl.Vendor)

		v.GET("/menu-items", menuCtrl.ListOwn)
		v.POST("/menu-items", menuCtrl.Create)
		v.PUT("/menu-items/:id", menuCtrl.Update)
		v.DELETE("/menu-items/:id", menuCtrl.Delete)

		v.GET("/orders", orderCtrl.ListForVendor)
		v.GET("/orders/:id", orderCtrl.DetailForVendor)
		v.PATCH("/orders/:id/status", orderCtrl.SetStatus)
		v.POST("/orders/:id/cancellation", orderCtrl.HandleCancel)
	}

	// Realtime table-change events
	r.GET("/ws", hub.Handle)
}
