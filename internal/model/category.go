package model

import "time"

// Category groups subcategories and products.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string { return "categories" }
