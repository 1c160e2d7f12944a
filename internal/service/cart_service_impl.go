package service

import (
	"context"

	"github.com/mondragon/guitar-shop/storefront-service/internal/cart"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/internal/repository"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"github.com/oklog/ulid/v2"
)

type CartServiceImpl struct {
	productRepo repository.ProductRepository
	store       cart.Store
}

func CreateCartService(productRepo repository.ProductRepository, store cart.Store) CartService {
	return &CartServiceImpl{productRepo: productRepo, store: store}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, sessionID string) (resp dto.CartResponse, err error) {
	shopperCart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return
	}

	return buildCartResponse(shopperCart), nil
}

// AddItem snapshots the product's display fields at add time; later price
// edits in the catalog do not touch lines already in the cart.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID string, data dto.AddCartItemRequest) (resp dto.CartResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, data.ProductID)
	if err != nil {
		return
	}

	shopperCart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return
	}

	shopperCart.Add(product, data.SelectedOptions, data.Quantity)

	if err = s.store.Save(ctx, sessionID, shopperCart); err != nil {
		return
	}

	return buildCartResponse(shopperCart), nil
}

func (s *CartServiceImpl) UpdateItemQuantity(ctx context.Context, sessionID string, lineID string, quantity int64) (resp dto.CartResponse, err error) {
	shopperCart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return
	}

	// sub-one quantities are a rejected no-op, not an error
	if shopperCart.UpdateQuantity(lineID, quantity) {
		if err = s.store.Save(ctx, sessionID, shopperCart); err != nil {
			return
		}
	}

	return buildCartResponse(shopperCart), nil
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, sessionID string, lineID string) (resp dto.CartResponse, err error) {
	shopperCart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return
	}

	shopperCart.Remove(lineID)

	if err = s.store.Save(ctx, sessionID, shopperCart); err != nil {
		return
	}

	return buildCartResponse(shopperCart), nil
}

func (s *CartServiceImpl) ClearCart(ctx context.Context, sessionID string) (resp dto.CartResponse, err error) {
	shopperCart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return
	}

	shopperCart.Clear()

	if err = s.store.Save(ctx, sessionID, shopperCart); err != nil {
		return
	}

	return buildCartResponse(shopperCart), nil
}

// Checkout is a stub: it turns a non-empty cart into an order summary and
// clears the cart. No payment is taken.
func (s *CartServiceImpl) Checkout(ctx context.Context, sessionID string) (resp dto.CheckoutResponse, err error) {
	shopperCart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return
	}

	if len(shopperCart.Lines) == 0 {
		return resp, errs.ErrEmptyCart
	}

	summary := buildCartResponse(shopperCart)
	resp = dto.CheckoutResponse{
		OrderNumber: ulid.Make().String(),
		Items:       summary.Items,
		Total:       summary.Total,
	}

	shopperCart.Clear()
	if err = s.store.Save(ctx, sessionID, shopperCart); err != nil {
		return
	}

	return resp, nil
}

func buildCartResponse(shopperCart *cart.Cart) dto.CartResponse {
	resp := dto.CartResponse{
		Items: make([]dto.CartItemResponse, 0, len(shopperCart.Lines)),
		Total: shopperCart.Total(),
	}

	for _, line := range shopperCart.Lines {
		resp.Items = append(resp.Items, dto.CartItemResponse{
			CartLineID:      line.ID,
			ProductID:       line.ProductID,
			Name:            line.Name,
			Price:           line.Price,
			Images:          line.Images,
			SelectedOptions: line.SelectedOptions,
			Quantity:        line.Quantity,
			Subtotal:        line.Subtotal(),
		})
	}

	return resp
}
