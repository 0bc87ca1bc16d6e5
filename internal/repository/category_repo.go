package repository

import (
	"context"

	"catalogo/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository defines persistence operations for Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	// FindAll returns every category with its subcategories preloaded.
	FindAll(ctx context.Context) ([]model.Category, error)
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return wrapErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("id asc").
		Find(&list).Error
	return list, err
}
