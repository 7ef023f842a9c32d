package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	Name      string   `gorm:"not null" json:"name"`
	Email     string   `gorm:"uniqueIndex;not null" json:"email"`
	Password  string   `json:"-"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	OrgID        uint         `json:"orgId"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"-"`

	MenuItems []MenuItem `gorm:"foreignKey:VendorID" json:"-"`
	Orders    []Order    `gorm:"foreignKey:VendorID" json:"-"`
}
