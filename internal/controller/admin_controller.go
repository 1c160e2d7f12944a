package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/response"
)

// adminTools is the fixed capability list of the admin console.
var adminTools = []dto.AdminTool{
	{
		ID:          "products",
		Label:       "Products",
		Description: "Manage the guitar parts catalog",
		Path:        "/admin/products",
	},
}

type AdminController struct{}

func CreateAdminController(e *echo.Group, protect echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	c := AdminController{}
	e.GET("/admin/tools", c.GetTools, protect, adminOnly)
}

func (c *AdminController) GetTools(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", adminTools)
}
