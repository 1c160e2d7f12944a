package service

import (
	"context"
	"time"

	"github.com/mondragon/guitar-shop/storefront-service/internal/domain"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/internal/repository"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func CreateProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, categoryRepo: categoryRepo}
}

// validateProduct checks the option-shape rules at write time: required
// fields, non-negative price and stock, non-empty option labels unique
// within the product, and a known option type. Duplicate choices are
// allowed. Nothing is validated at read time.
func validateProduct(ctx context.Context, data dto.ProductRequest) error {
	if data.Name == "" || data.Description == "" {
		log.Ctx(ctx).Warn().Str("component", "validateProduct").Msg("missing required field")
		return errs.ErrValidation
	}

	if data.Price < 0 || data.CountInStock < 0 {
		log.Ctx(ctx).Warn().Str("component", "validateProduct").Msg("negative price or stock")
		return errs.ErrValidation
	}

	seen := make(map[string]struct{}, len(data.Options))
	for _, opt := range data.Options {
		if opt.Label == "" {
			log.Ctx(ctx).Warn().Str("component", "validateProduct").Msg("empty option label")
			return errs.ErrValidation
		}

		if _, ok := seen[opt.Label]; ok {
			log.Ctx(ctx).Warn().Str("component", "validateProduct").Str("label", opt.Label).Msg("duplicate option label")
			return errs.ErrValidation
		}
		seen[opt.Label] = struct{}{}

		switch opt.Type {
		case "", domain.OptionTypeButton, domain.OptionTypeDropdown:
		default:
			log.Ctx(ctx).Warn().Str("component", "validateProduct").Str("type", opt.Type).Msg("unknown option type")
			return errs.ErrValidation
		}
	}

	return nil
}

func buildProductEntity(data dto.ProductRequest) (domain.Product, error) {
	product := domain.Product{
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Images:       data.Images,
		CountInStock: data.CountInStock,
	}

	if product.Images == nil {
		product.Images = []string{}
	}

	if data.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(data.Category)
		if err != nil {
			return product, errs.ErrValidation
		}
		product.CategoryID = &categoryID
	}

	product.Options = make([]domain.Option, 0, len(data.Options))
	for _, opt := range data.Options {
		optionType := opt.Type
		if optionType == "" {
			optionType = domain.OptionTypeButton
		}

		choices := opt.Choices
		if choices == nil {
			choices = []string{}
		}

		product.Options = append(product.Options, domain.Option{
			Label:   opt.Label,
			Type:    optionType,
			Choices: choices,
		})
	}

	return product, nil
}

func buildProductResponse(product domain.Product, category *dto.CategoryResponse) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:           product.ID.Hex(),
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Images:       product.Images,
		CountInStock: product.CountInStock,
		Category:     category,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}

	resp.Options = make([]dto.OptionResponse, 0, len(product.Options))
	for _, opt := range product.Options {
		resp.Options = append(resp.Options, dto.OptionResponse{
			Label:   opt.Label,
			Type:    opt.Type,
			Choices: opt.Choices,
		})
	}

	return resp
}

func buildCategoryResponse(category domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID.Hex(),
		Name:        category.Name,
		Image:       category.Image,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// lookupCategory resolves the product's weak category reference. A
// dangling or absent reference yields nil, never an error.
func (s *ProductServiceImpl) lookupCategory(ctx context.Context, product domain.Product) *dto.CategoryResponse {
	if product.CategoryID == nil {
		return nil
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, product.CategoryID.Hex())
	if err != nil {
		return nil
	}

	resp := buildCategoryResponse(category)
	return &resp
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if err = validateProduct(ctx, data); err != nil {
		return
	}

	product, err := buildProductEntity(data)
	if err != nil {
		return
	}

	now := time.Now().Unix()
	product.CreatedAt = now
	product.UpdatedAt = now

	productID, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = productID
	return buildProductResponse(product, s.lookupCategory(ctx, product)), nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return
	}

	return s.buildProductListResponse(ctx, products), nil
}

func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, categoryID string) (resp []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProductsByCategory(ctx, categoryID)
	if err != nil {
		return
	}

	return s.buildProductListResponse(ctx, products), nil
}

// buildProductListResponse resolves category references with one list
// read instead of a lookup per product.
func (s *ProductServiceImpl) buildProductListResponse(ctx context.Context, products []domain.Product) []dto.ProductResponse {
	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "buildProductListResponse").Msg("")
		categories = nil
	}

	categoryByID := make(map[string]dto.CategoryResponse, len(categories))
	for _, category := range categories {
		categoryByID[category.ID.Hex()] = buildCategoryResponse(category)
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		var categoryResp *dto.CategoryResponse
		if product.CategoryID != nil {
			if category, ok := categoryByID[product.CategoryID.Hex()]; ok {
				categoryResp = &category
			}
		}
		resp = append(resp, buildProductResponse(product, categoryResp))
	}

	return resp
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return buildProductResponse(product, s.lookupCategory(ctx, product)), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if err = validateProduct(ctx, data); err != nil {
		return
	}

	productID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return resp, errs.ErrNotFound
	}

	product, err := buildProductEntity(data)
	if err != nil {
		return
	}

	product.ID = productID
	product.UpdatedAt = time.Now().Unix()

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return
	}

	updated, err := s.productRepo.GetProductByID(ctx, data.ID)
	if err != nil {
		return
	}

	return buildProductResponse(updated, s.lookupCategory(ctx, updated)), nil
}

// DuplicateProduct copies every field of the source product except its
// identity and timestamps, appends " (Copy)" to the name, and inserts the
// copy as an independent record. Options are kept verbatim, whatever
// shape they are in.
func (s *ProductServiceImpl) DuplicateProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	original, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	duplicate := original.Clone()
	duplicate.ID = primitive.NilObjectID
	duplicate.Name = original.Name + " (Copy)"

	now := time.Now().Unix()
	duplicate.CreatedAt = now
	duplicate.UpdatedAt = now

	duplicateID, err := s.productRepo.AddProduct(ctx, duplicate)
	if err != nil {
		return
	}

	duplicate.ID = duplicateID
	return buildProductResponse(duplicate, s.lookupCategory(ctx, duplicate)), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.productRepo.DeleteProduct(ctx, id)
}
