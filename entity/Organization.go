package entity

import (
	"gorm.io/gorm"
)

type Organization struct {
	gorm.Model
	Name          string   `gorm:"not null" json:"name"`
	SpecialNumber string   `gorm:"uniqueIndex;not null" json:"specialNumber"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`

	// preload only when needed
	Staff     []OrganizationStaff `gorm:"foreignKey:OrgID" json:"-"`
	Employees []Employee          `gorm:"foreignKey:OrgID" json:"-"`
	Vendors   []Vendor            `gorm:"foreignKey:OrgID" json:"-"`
	MenuItems []MenuItem          `gorm:"foreignKey:OrgID" json:"-"`
	Orders    []Order             `gorm:"foreignKey:OrgID" json:"-"`
}
