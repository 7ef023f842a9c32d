package entity

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"name"`
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	Password      string  `json:"-"`
	Phone         string  `json:"phone"`
	SpecialNumber string  `json:"specialNumber"`
	Balance       float64 `gorm:"default:0" json:"balance"` // prepaid credit, no floor

	OrgID        uint         `json:"orgId"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"-"`

	Orders []Order `gorm:"foreignKey:EmployeeID" json:"-"`
}
