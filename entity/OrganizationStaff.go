package entity

import (
	"gorm.io/gorm"
)

type OrganizationStaff struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Phone    string `json:"phone"`

	OrgID        uint         `json:"orgId"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"-"`
}
