package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/internal/service"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/response"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.UserService
}

func CreateAuthController(e *echo.Group, service service.UserService, protect echo.MiddlewareFunc) {
	c := AuthController{
		service: service,
	}
	e.POST("/auth/register", c.Register)
	e.POST("/auth/login", c.Login)
	e.GET("/auth/profile", c.GetProfile, protect)
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	err = c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *AuthController) GetProfile(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	resp, err := c.service.GetProfile(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
