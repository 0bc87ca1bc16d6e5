package dto

import (
	"time"

	"catalogo/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateProductRequest is built from a body that already passed
// validation.CreateProduct. Optional attributes are nil when not sent.
type CreateProductRequest struct {
	Name          string
	Price         decimal.Decimal
	Availability  *bool
	Gender        model.Gender
	Description   *string
	Quantity      int
	ImageURL      *string
	ImageURLs     []string
	CategoryID    uint
	SubcategoryID uint
}

// UpdateProductRequest carries only the attributes present in the PUT body;
// nil means "keep the stored value". SetDescription/SetImageURL distinguish an
// explicit null (clear the column) from an omitted key.
type UpdateProductRequest struct {
	Name           *string
	Price          *decimal.Decimal
	Availability   *bool
	Gender         *model.Gender
	SetDescription bool
	Description    *string
	Quantity       *int
	SetImageURL    bool
	ImageURL       *string
	ImageURLs      *[]string
	CategoryID     *uint
	SubcategoryID  *uint
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	Availability  bool       `json:"availability"`
	Gender        string     `json:"gender"`
	Description   *string    `json:"description"`
	Quantity      int        `json:"quantity"`
	ImageURL      *string    `json:"imageUrl"`
	ImageURLs     []string   `json:"imageUrls,omitempty"`
	CategoryID    uint       `json:"categoryId"`
	SubcategoryID uint       `json:"subcategoryId"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// NewProductResponse maps a stored product including its audit timestamps.
func NewProductResponse(p model.Product) ProductResponse {
	r := NewProductListItem(p)
	created, updated := p.CreatedAt, p.UpdatedAt
	r.CreatedAt = &created
	r.UpdatedAt = &updated
	return r
}

// NewProductListItem maps a stored product for list endpoints, which never
// expose audit timestamps.
func NewProductListItem(p model.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price.InexactFloat64(),
		Availability:  p.Availability,
		Gender:        string(p.Gender),
		Description:   p.Description,
		Quantity:      p.Quantity,
		ImageURL:      p.ImageURL,
		ImageURLs:     []string(p.ImageURLs),
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
	}
}

func NewProductList(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductListItem(p))
	}
	return out
}
