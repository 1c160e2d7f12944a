package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/internal/service"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

// CreateProductController registers the product routes. Reads are public
// (the storefront consumes them); every mutation sits behind the JWT
// middleware plus the admin check.
func CreateProductController(e *echo.Group, service service.ProductService, protect echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/products/category/:categoryId", c.GetProductsByCategory)
	e.POST("/products", c.AddProduct, protect, adminOnly)
	e.PUT("/products/:id", c.UpdateProduct, protect, adminOnly)
	e.POST("/products/:id/duplicate", c.DuplicateProduct, protect, adminOnly)
	e.DELETE("/products/:id", c.DeleteProduct, protect, adminOnly)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	resp, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	id := e.Param("id")
	resp, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductsByCategory(e echo.Context) error {
	categoryID := e.Param("categoryId")
	resp, err := c.service.GetProductsByCategory(e.Request().Context(), categoryID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	payload.ID = id
	resp, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) DuplicateProduct(e echo.Context) error {
	id := e.Param("id")
	resp, err := c.service.DuplicateProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted", nil)
}
