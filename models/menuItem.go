package models

import "time"

type MenuItem struct {
	ID        int64      `gorm:"column:menu_item_id;primary_key" json:"menu_item_id"`
	DishID    int64      `gorm:"column:dish_id" json:"dish_id"`
	Quantity  int        `gorm:"column:quantity;default:1" json:"quantity"`
	Label     string     `gorm:"column:label" json:"label"`
	DayOfWeek string     `gorm:"column:day_of_week" json:"day_of_week"`
	Dish      Dish       `gorm:"foreignkey:DishID" json:"dish"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (m *MenuItem) TableName() string {
	return "menu_items"
}
