package repository

import (
	"context"

	"catalogo/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// FindAll lists every product ordered ascending by orderBy; unknown
	// columns fall back to id.
	FindAll(ctx context.Context, orderBy string) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, p *model.Product) error
}

// Sortable product columns.
const (
	OrderByID       = "id"
	OrderByName     = "name"
	OrderByPrice    = "price"
	OrderByQuantity = "quantity"
)

var productOrderColumns = map[string]bool{
	OrderByID:       true,
	OrderByName:     true,
	OrderByPrice:    true,
	OrderByQuantity: true,
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return wrapErr(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindAll(ctx context.Context, orderBy string) ([]model.Product, error) {
	if !productOrderColumns[orderBy] {
		orderBy = OrderByID
	}
	var products []model.Product
	// id breaks ties so equal prices list in a stable order
	err := r.db.WithContext(ctx).Order(orderBy + " ASC").Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return wrapErr(r.db.WithContext(ctx).Save(p).Error)
}

func (r *productRepo) Delete(ctx context.Context, p *model.Product) error {
	return wrapErr(r.db.WithContext(ctx).Delete(p).Error)
}
