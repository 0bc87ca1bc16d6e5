package handler_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"catalogo/internal/model"

	"gorm.io/gorm"
)

// ── In-memory repositories ───────────────────────────────────────────────────

type memProductRepo struct {
	mu       sync.Mutex
	products map[uint]model.Product
	nextID   uint
	failWith error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uint]model.Product), nextID: 1}
}

func (r *memProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *memProductRepo) FindAll(_ context.Context, _ string) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	p.UpdatedAt = time.Now()
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, p.ID)
	return nil
}

type memCatalogRepo struct {
	mu            sync.Mutex
	categories    []model.Category
	subcategories []model.Subcategory
}

type memCategoryRepo struct{ *memCatalogRepo }

func (r memCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uint(len(r.categories) + 1)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.categories = append(r.categories, *c)
	return nil
}

func (r memCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Category, len(r.categories))
	for i, c := range r.categories {
		for _, s := range r.subcategories {
			if s.CategoryID == c.ID {
				c.Subcategories = append(c.Subcategories, s)
			}
		}
		out[i] = c
	}
	return out, nil
}

type memSubcategoryRepo struct{ *memCatalogRepo }

func (r memSubcategoryRepo) Create(_ context.Context, s *model.Subcategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uint(len(r.subcategories) + 1)
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.subcategories = append(r.subcategories, *s)
	return nil
}

func (r memSubcategoryRepo) FindAll(_ context.Context) ([]model.Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Subcategory(nil), r.subcategories...), nil
}
