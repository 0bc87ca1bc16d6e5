package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"catalogo/internal/model"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
	failWith error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindAll(_ context.Context, orderBy string) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if orderBy == "price" && !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.products[p.ID]; !ok {
		return errors.New("update of unknown product")
	}
	p.UpdatedAt = time.Now()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, p *model.Product) error {
	delete(r.products, p.ID)
	return nil
}

type stubCategoryRepo struct {
	categories []model.Category
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	c.ID = uint(len(r.categories) + 1)
	r.categories = append(r.categories, *c)
	return nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	return r.categories, nil
}

type stubSubcategoryRepo struct {
	subcategories []model.Subcategory
}

func (r *stubSubcategoryRepo) Create(_ context.Context, s *model.Subcategory) error {
	s.ID = uint(len(r.subcategories) + 1)
	r.subcategories = append(r.subcategories, *s)
	return nil
}

func (r *stubSubcategoryRepo) FindAll(_ context.Context) ([]model.Subcategory, error) {
	return r.subcategories, nil
}
