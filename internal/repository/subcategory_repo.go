package repository

import (
	"context"

	"catalogo/internal/model"

	"gorm.io/gorm"
)

// SubcategoryRepository defines persistence operations for Subcategory.
type SubcategoryRepository interface {
	Create(ctx context.Context, s *model.Subcategory) error
	FindAll(ctx context.Context) ([]model.Subcategory, error)
}

type subcategoryRepository struct{ db *gorm.DB }

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(ctx context.Context, s *model.Subcategory) error {
	return wrapErr(r.db.WithContext(ctx).Create(s).Error)
}

func (r *subcategoryRepository) FindAll(ctx context.Context) ([]model.Subcategory, error) {
	var list []model.Subcategory
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}
