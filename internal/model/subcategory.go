package model

import "time"

// Subcategory belongs to exactly one Category.
type Subcategory struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(50);not null"`
	CategoryID uint   `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Subcategory) TableName() string { return "subcategories" }
