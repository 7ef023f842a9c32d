package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity  int     `json:"quantity"`
	TotalCost float64 `json:"totalCost"` // price × quantity, snapshotted at placement

	OrderID uint  `json:"orderId"`
	Order   Order `gorm:"foreignKey:OrderID" json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID" json:"-"` // preload only when the item name is needed
}
