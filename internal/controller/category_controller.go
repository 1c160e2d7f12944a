package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/internal/service"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService, protect echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	c := CategoryController{
		service: service,
	}
	e.GET("/categories", c.GetCategories)
	e.POST("/categories", c.AddCategory, protect, adminOnly)
	e.PUT("/categories/:id", c.UpdateCategory, protect, adminOnly)
	e.DELETE("/categories/:id", c.DeleteCategory, protect, adminOnly)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
	}

	resp, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	id := e.Param("id")
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
	}

	payload.ID = id
	resp, err := c.service.UpdateCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteCategory(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Category deleted", nil)
}
