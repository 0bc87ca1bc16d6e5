package service

import (
	"context"

	"catalogo/internal/dto"
	"catalogo/internal/model"
	"catalogo/internal/repository"
)

// CategoryService defines business operations for product categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryListItem, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	c := &model.Category{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return dto.NewCategoryResponse(*c), nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryListItem, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryList(list), nil
}

// SubcategoryService defines business operations for subcategories.
type SubcategoryService interface {
	Create(ctx context.Context, req dto.CreateSubcategoryRequest) (dto.SubcategoryResponse, error)
	List(ctx context.Context) ([]dto.SubcategoryResponse, error)
}

type subcategoryService struct {
	repo repository.SubcategoryRepository
}

func NewSubcategoryService(repo repository.SubcategoryRepository) SubcategoryService {
	return &subcategoryService{repo: repo}
}

func (s *subcategoryService) Create(ctx context.Context, req dto.CreateSubcategoryRequest) (dto.SubcategoryResponse, error) {
	sub := &model.Subcategory{Name: req.Name, CategoryID: req.CategoryID}
	if err := s.repo.Create(ctx, sub); err != nil {
		return dto.SubcategoryResponse{}, err
	}
	return dto.NewSubcategoryResponse(*sub), nil
}

func (s *subcategoryService) List(ctx context.Context) ([]dto.SubcategoryResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSubcategoryList(list), nil
}
