package service

import (
	"context"

	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error)
	GetProductsByCategory(ctx context.Context, categoryID string) (resp []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error)
	DuplicateProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type CategoryService interface {
	AddCategory(ctx context.Context, data dto.CategoryRequest) (resp dto.CategoryResponse, err error)
	GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error)
	UpdateCategory(ctx context.Context, data dto.CategoryRequest) (resp dto.CategoryResponse, err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (err error)
	Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error)
	GetProfile(ctx context.Context, userID string) (resp dto.UserResponse, err error)
	EnsureAdmin(ctx context.Context, name string, email string, password string) (err error)
}

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (resp dto.CartResponse, err error)
	AddItem(ctx context.Context, sessionID string, data dto.AddCartItemRequest) (resp dto.CartResponse, err error)
	UpdateItemQuantity(ctx context.Context, sessionID string, lineID string, quantity int64) (resp dto.CartResponse, err error)
	RemoveItem(ctx context.Context, sessionID string, lineID string) (resp dto.CartResponse, err error)
	ClearCart(ctx context.Context, sessionID string) (resp dto.CartResponse, err error)
	Checkout(ctx context.Context, sessionID string) (resp dto.CheckoutResponse, err error)
}
