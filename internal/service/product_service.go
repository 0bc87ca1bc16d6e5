package service

import (
	"context"
	"errors"

	"catalogo/internal/dto"
	"catalogo/internal/model"
	"catalogo/internal/repository"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrPriceOutOfRange = errors.New("precio fuera del rango permitido")
)

// MaxPrice is the highest price accepted when creating a product.
var MaxPrice = decimal.NewFromInt(100000)

// ProductService defines the business logic contract for products.
type ProductService interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	ToggleAvailability(ctx context.Context, id uint) (dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// List returns every product ordered by ascending price.
func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.FindAll(ctx, repository.OrderByPrice)
	if err != nil {
		return nil, err
	}
	return dto.NewProductList(products), nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (dto.ProductResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.NewProductResponse(*p), nil
}

// Create stores a new product. Availability defaults to true. The price range
// check applies to creation only.
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	if req.Price.IsNegative() || req.Price.GreaterThan(MaxPrice) {
		return dto.ProductResponse{}, ErrPriceOutOfRange
	}

	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}
	p := &model.Product{
		Name:          req.Name,
		Price:         req.Price,
		Availability:  availability,
		Gender:        req.Gender,
		Description:   req.Description,
		Quantity:      req.Quantity,
		ImageURL:      req.ImageURL,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
	}
	if req.ImageURLs != nil {
		p.ImageURLs = pq.StringArray(req.ImageURLs)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.NewProductResponse(*p), nil
}

// Update overwrites the attributes present in req and keeps the rest.
func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Availability != nil {
		p.Availability = *req.Availability
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.SetDescription {
		p.Description = req.Description
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.SetImageURL {
		p.ImageURL = req.ImageURL
	}
	if req.ImageURLs != nil {
		p.ImageURLs = pq.StringArray(*req.ImageURLs)
	}
	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.SubcategoryID != nil {
		p.SubcategoryID = *req.SubcategoryID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.NewProductResponse(*p), nil
}

// ToggleAvailability flips the availability flag and leaves every other
// attribute untouched.
func (s *productService) ToggleAvailability(ctx context.Context, id uint) (dto.ProductResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	p.Availability = !p.Availability
	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.NewProductResponse(*p), nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p)
}

func (s *productService) find(ctx context.Context, id uint) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
