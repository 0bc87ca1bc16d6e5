package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Gender is the audience a product is aimed at.
type Gender string

const (
	GenderFemenino  Gender = "femenino"
	GenderMasculino Gender = "masculino"
	GenderUnisex    Gender = "unisex"
)

// Genders lists the accepted values in the order they are documented.
var Genders = []Gender{GenderFemenino, GenderMasculino, GenderUnisex}

// Product is a catalog item. It references one Category and one Subcategory;
// referential integrity is enforced by the database, not by the application.
//
// Availability carries no gorm default on purpose: gorm skips zero values of
// fields with a default tag on INSERT, which would turn an explicit false into
// true. The service layer applies the default instead.
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Price         decimal.Decimal `gorm:"type:numeric;not null;index"`
	Availability  bool            `gorm:"not null"`
	Gender        Gender          `gorm:"type:varchar(10);not null"`
	Description   *string         `gorm:"type:text"`
	Quantity      int             `gorm:"not null"`
	ImageURL      *string
	ImageURLs     pq.StringArray `gorm:"type:text[]"`
	CategoryID    uint           `gorm:"not null;index"`
	SubcategoryID uint           `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category    *Category    `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Product) TableName() string { return "products" }
