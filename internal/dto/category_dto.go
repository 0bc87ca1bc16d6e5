package dto

import (
	"time"

	"catalogo/internal/model"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string
}

type CreateSubcategoryRequest struct {
	Name       string
	CategoryID uint
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type SubcategoryResponse struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	CategoryID uint       `json:"categoryId"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListItem is a category as listed: nested subcategories, no timestamps.
type CategoryListItem struct {
	ID            uint                  `json:"id"`
	Name          string                `json:"name"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

func NewSubcategoryResponse(s model.Subcategory) SubcategoryResponse {
	r := NewSubcategoryListItem(s)
	created, updated := s.CreatedAt, s.UpdatedAt
	r.CreatedAt = &created
	r.UpdatedAt = &updated
	return r
}

func NewSubcategoryListItem(s model.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID}
}

func NewSubcategoryList(list []model.Subcategory) []SubcategoryResponse {
	out := make([]SubcategoryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewSubcategoryListItem(s))
	}
	return out
}

func NewCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// NewCategoryList maps categories with their nested subcategories, without
// audit timestamps at either level.
func NewCategoryList(list []model.Category) []CategoryListItem {
	out := make([]CategoryListItem, 0, len(list))
	for _, c := range list {
		out = append(out, CategoryListItem{
			ID:            c.ID,
			Name:          c.Name,
			Subcategories: NewSubcategoryList(c.Subcategories),
		})
	}
	return out
}
