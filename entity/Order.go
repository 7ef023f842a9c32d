package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status      string  `gorm:"not null;default:placed" json:"status"`
	TotalAmount float64 `json:"totalAmount"`

	EmployeeID uint     `json:"employeeId"`
	Employee   Employee `gorm:"foreignKey:EmployeeID" json:"-"` // preload only when the vendor view needs a name

	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `gorm:"foreignKey:VendorID" json:"-"`

	OrgID        uint         `json:"orgId"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"-"`

	// preload only for detail
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
}
