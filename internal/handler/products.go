package handler

import (
	"net/http"

	"catalogo/internal/dto"
	"catalogo/internal/service"

	"github.com/gin-gonic/gin"
)

const msgProductDeleted = "Producto eliminado"

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List godoc
// @Summary Lista los productos ordenados por precio ascendente
// @Tags products
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.ProductResponse]
// @Failure 500 {object} apierror.APIError
// @Router /products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Data(resp))
}

// GetByID godoc
// @Summary Obtiene un producto por su ID
// @Tags products
// @Produce json
// @Param id path int true "ID del producto"
// @Success 200 {object} dto.DataResponse[dto.ProductResponse]
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Router /products/{id} [get]
func (h *ProductsHandler) GetByID(c *gin.Context) {
	in, ok := input(c)
	if !ok {
		return
	}
	id, err := productID(in)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Data(resp))
}

// Create godoc
// @Summary Crea un producto
// @Tags products
// @Accept json
// @Produce json
// @Param body body docs.ProductInput true "Datos del producto"
// @Success 201 {object} dto.DataResponse[dto.ProductResponse]
// @Failure 400 {object} apierror.ValidationError
// @Router /products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	in, ok := input(c)
	if !ok {
		return
	}
	req, err := createProductRequest(in)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Data(resp))
}

// Update godoc
// @Summary Actualiza un producto
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "ID del producto"
// @Param body body docs.ProductInput true "Datos del producto"
// @Success 200 {object} dto.DataResponse[dto.ProductResponse]
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Router /products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	in, ok := input(c)
	if !ok {
		return
	}
	id, err := productID(in)
	if err != nil {
		fail(c, err)
		return
	}
	req, err := updateProductRequest(in)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Data(resp))
}

// ToggleAvailability godoc
// @Summary Invierte la disponibilidad de un producto
// @Tags products
// @Produce json
// @Param id path int true "ID del producto"
// @Success 200 {object} dto.DataResponse[dto.ProductResponse]
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Router /products/{id} [patch]
func (h *ProductsHandler) ToggleAvailability(c *gin.Context) {
	in, ok := input(c)
	if !ok {
		return
	}
	id, err := productID(in)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := h.svc.ToggleAvailability(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Data(resp))
}

// Delete godoc
// @Summary Elimina un producto
// @Tags products
// @Produce json
// @Param id path int true "ID del producto"
// @Success 200 {object} dto.DataResponse[string]
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Router /products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
	in, ok := input(c)
	if !ok {
		return
	}
	id, err := productID(in)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Data(msgProductDeleted))
}
