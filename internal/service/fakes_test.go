package service

import (
	"context"

	"github.com/mondragon/guitar-shop/storefront-service/internal/domain"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo repositories so the service rules can
// be exercised without a database.

type fakeProductRepository struct {
	products map[string]domain.Product
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[string]domain.Product)}
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	r.products[data.ID.Hex()] = data
	return data.ID, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	data := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		data = append(data, product)
	}
	return data, nil
}

func (r *fakeProductRepository) GetProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	data := []domain.Product{}
	for _, product := range r.products {
		if product.CategoryID != nil && product.CategoryID.Hex() == categoryID {
			data = append(data, product)
		}
	}
	return data, nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return product, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	existing, ok := r.products[data.ID.Hex()]
	if !ok {
		return errs.ErrNotFound
	}
	data.CreatedAt = existing.CreatedAt
	r.products[data.ID.Hex()] = data
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeCategoryRepository struct {
	categories map[string]domain.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[string]domain.Category)}
}

func (r *fakeCategoryRepository) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	r.categories[data.ID.Hex()] = data
	return data.ID, nil
}

func (r *fakeCategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	data := make([]domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		data = append(data, category)
	}
	return data, nil
}

func (r *fakeCategoryRepository) GetCategoryByID(ctx context.Context, id string) (domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return domain.Category{}, errs.ErrNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepository) UpdateCategory(ctx context.Context, data domain.Category) error {
	existing, ok := r.categories[data.ID.Hex()]
	if !ok {
		return errs.ErrNotFound
	}
	data.CreatedAt = existing.CreatedAt
	r.categories[data.ID.Hex()] = data
	return nil
}

func (r *fakeCategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

type fakeUserRepository struct {
	users map[string]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]domain.User)}
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	r.users[data.ID.Hex()] = data
	return data.ID, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	return user, nil
}
