package entity

import (
	"gorm.io/gorm"
)

const (
	MenuItemActive   = "active"
	MenuItemInactive = "inactive"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `gorm:"not null" json:"price"`
	Status      string  `gorm:"not null;default:active" json:"status"`

	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `gorm:"foreignKey:VendorID" json:"-"` // preload only for detail

	OrgID        uint         `json:"orgId"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"-"`

	OrderItems []OrderItem `gorm:"foreignKey:MenuItemID" json:"-"`
}
