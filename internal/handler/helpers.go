package handler

import (
	"errors"
	"net/http"

	"catalogo/internal/apierror"
	"catalogo/internal/dto"
	"catalogo/internal/middleware"
	"catalogo/internal/model"
	"catalogo/internal/service"
	"catalogo/internal/validation"

	"github.com/gin-gonic/gin"
)

// input returns the request Input prepared by middleware.Validate. It returns
// false when the response has already been written.
func input(c *gin.Context) (validation.Input, bool) {
	return middleware.GetInput(c)
}

// fail writes the response for a service error. Known business errors map to
// 4xx; anything else is handed to middleware.ErrorHandler, which logs it and
// answers 500 without leaking details.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, apierror.New(apierror.MsgProductNotFound))
	case errors.Is(err, service.ErrPriceOutOfRange):
		c.JSON(http.StatusBadRequest, apierror.NewMessage(apierror.MsgPriceOutOfRange))
	default:
		_ = c.Error(err)
	}
}

// productID reads the :id parameter. Values that pass the integer rule but do
// not fit an id (negative, overflowing) cannot match a stored product.
func productID(in validation.Input) (uint, error) {
	id, err := in.ParamUint("id")
	if err != nil {
		return 0, service.ErrProductNotFound
	}
	return id, nil
}

func createProductRequest(in validation.Input) (dto.CreateProductRequest, error) {
	var (
		req dto.CreateProductRequest
		err error
	)
	req.Name = in.String("name")
	req.Gender = model.Gender(in.String("gender"))
	req.Description = in.StringPtr("description")
	req.ImageURL = in.StringPtr("imageUrl")
	req.ImageURLs = in.Strings("imageUrls")

	if req.Price, err = in.Decimal("price"); err != nil {
		return req, err
	}
	if in.Has("availability") {
		b, err := in.Bool("availability")
		if err != nil {
			return req, err
		}
		req.Availability = &b
	}
	if req.Quantity, err = in.Int("quantity"); err != nil {
		return req, err
	}
	if req.CategoryID, err = in.Uint("categoryId"); err != nil {
		return req, err
	}
	if req.SubcategoryID, err = in.Uint("subcategoryId"); err != nil {
		return req, err
	}
	return req, nil
}

// updateProductRequest keeps only the attributes present in the body.
func updateProductRequest(in validation.Input) (dto.UpdateProductRequest, error) {
	var req dto.UpdateProductRequest

	if in.Has("name") {
		name := in.String("name")
		req.Name = &name
	}
	if in.Has("price") {
		price, err := in.Decimal("price")
		if err != nil {
			return req, err
		}
		req.Price = &price
	}
	if in.Has("availability") {
		b, err := in.Bool("availability")
		if err != nil {
			return req, err
		}
		req.Availability = &b
	}
	if in.Has("gender") {
		g := model.Gender(in.String("gender"))
		req.Gender = &g
	}
	if in.Has("description") {
		req.SetDescription = true
		req.Description = in.StringPtr("description")
	}
	if in.Has("quantity") {
		q, err := in.Int("quantity")
		if err != nil {
			return req, err
		}
		req.Quantity = &q
	}
	if in.Has("imageUrl") {
		req.SetImageURL = true
		req.ImageURL = in.StringPtr("imageUrl")
	}
	if in.Has("imageUrls") {
		urls := in.Strings("imageUrls")
		if urls == nil {
			urls = []string{}
		}
		req.ImageURLs = &urls
	}
	if in.Has("categoryId") {
		id, err := in.Uint("categoryId")
		if err != nil {
			return req, err
		}
		req.CategoryID = &id
	}
	if in.Has("subcategoryId") {
		id, err := in.Uint("subcategoryId")
		if err != nil {
			return req, err
		}
		req.SubcategoryID = &id
	}
	return req, nil
}
