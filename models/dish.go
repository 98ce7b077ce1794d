package models

import "time"

type Dish struct {
	ID          int64               `gorm:"column:dish_id;primary_key" json:"dish_id"`
	Name        string              `gorm:"column:dish_name" json:"dish_name"`
	Ingredients []DishHasIngredient `gorm:"foreignkey:DishID" json:"dishIngredients"`
	CreatedAt   *time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (d *Dish) TableName() string {
	return "dishes"
}
