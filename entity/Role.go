package entity

// Role tags returned by the email resolver.
const (
	RoleStaff    = "staff"
	RoleEmployee = "employee"
	RoleVendor   = "vendor"
)
