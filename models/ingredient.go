package models

import "time"

type Ingredient struct {
	ID        int64      `gorm:"column:ingredient_id;primary_key" json:"ingredient_id"`
	Name      string     `gorm:"column:ingredient_name" json:"ingredient_name"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (i *Ingredient) TableName() string {
	return "ingredients"
}
