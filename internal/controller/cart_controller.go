package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/internal/service"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/response"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const cartSessionCookie = "cart_session"

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Group, service service.CartService) {
	c := CartController{
		service: service,
	}
	e.GET("/cart", c.GetCart)
	e.POST("/cart/items", c.AddItem)
	e.PUT("/cart/items/:lineId", c.UpdateItemQuantity)
	e.DELETE("/cart/items/:lineId", c.RemoveItem)
	e.DELETE("/cart", c.ClearCart)
	e.POST("/cart/checkout", c.Checkout)
}

// sessionID reads the shopper's session cookie, minting one on the first
// cart request. The cookie value keys the cart store; nothing about the
// cart itself travels in the cookie.
func (c *CartController) sessionID(e echo.Context) string {
	cookie, err := e.Cookie(cartSessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := ulid.Make().String()
	e.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})

	return id
}

func (c *CartController) GetCart(e echo.Context) error {
	resp, err := c.service.GetCart(e.Request().Context(), c.sessionID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) AddItem(e echo.Context) error {
	payload := dto.AddCartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddItem").Msg("")
	}

	resp, err := c.service.AddItem(e.Request().Context(), c.sessionID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) UpdateItemQuantity(e echo.Context) error {
	lineID := e.Param("lineId")
	payload := dto.UpdateCartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateItemQuantity").Msg("")
	}

	resp, err := c.service.UpdateItemQuantity(e.Request().Context(), c.sessionID(e), lineID, payload.Quantity)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) RemoveItem(e echo.Context) error {
	lineID := e.Param("lineId")
	resp, err := c.service.RemoveItem(e.Request().Context(), c.sessionID(e), lineID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) ClearCart(e echo.Context) error {
	resp, err := c.service.ClearCart(e.Request().Context(), c.sessionID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) Checkout(e echo.Context) error {
	resp, err := c.service.Checkout(e.Request().Context(), c.sessionID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
