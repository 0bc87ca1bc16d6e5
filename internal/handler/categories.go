package handler

import (
	"net/http"

	"catalogo/internal/dto"
	"catalogo/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// Create godoc
// @Summary Crea una categoría
// @Tags categories
// @Accept json
// @Produce json
// @Param body body docs.CategoryInput true "Nombre de la categoría"
// @Success 201 {object} dto.DataResponse[dto.CategoryResponse]
// @Failure 400 {object} apierror.ValidationError
// @Router /categories [post]
func (h *CategoriesHandler) Create(c *gin.Context) {
	in, ok := input(c)
	if !ok {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), dto.CreateCategoryRequest{Name: in.String("name")})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Data(resp))
}

// List godoc
// @Summary Lista las categorías con sus subcategorías
// @Tags categories
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.CategoryListItem]
// @Router /categories [get]
func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Data(resp))
}

type SubcategoriesHandler struct{ svc service.SubcategoryService }

func NewSubcategoriesHandler(svc service.SubcategoryService) *SubcategoriesHandler {
	return &SubcategoriesHandler{svc: svc}
}

// Create godoc
// @Summary Crea una subcategoría
// @Tags subcategories
// @Accept json
// @Produce json
// @Param body body docs.SubcategoryInput true "Datos de la subcategoría"
// @Success 201 {object} dto.DataResponse[dto.SubcategoryResponse]
// @Failure 400 {object} apierror.ValidationError
// @Router /subcategories [post]
func (h *SubcategoriesHandler) Create(c *gin.Context) {
	in, ok := input(c)
	if !ok {
		return
	}
	categoryID, err := in.Uint("categoryId")
	if err != nil {
		fail(c, err)
		return
	}
	req := dto.CreateSubcategoryRequest{Name: in.String("name"), CategoryID: categoryID}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Data(resp))
}

// List godoc
// @Summary Lista las subcategorías
// @Tags subcategories
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.SubcategoryResponse]
// @Router /subcategories [get]
func (h *SubcategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Data(resp))
}
