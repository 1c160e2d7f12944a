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

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func CreateCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, data dto.CategoryRequest) (resp dto.CategoryResponse, err error) {
	if data.Name == "" {
		log.Ctx(ctx).Warn().Str("component", "AddCategory").Msg("missing category name")
		return resp, errs.ErrValidation
	}

	now := time.Now().Unix()
	category := domain.Category{
		Name:        data.Name,
		Image:       data.Image,
		Description: data.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	categoryID, err := s.categoryRepo.AddCategory(ctx, category)
	if err != nil {
		return
	}

	category.ID = categoryID
	return buildCategoryResponse(category), nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (resp []dto.CategoryResponse, err error) {
	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	resp = make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, buildCategoryResponse(category))
	}

	return resp, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, data dto.CategoryRequest) (resp dto.CategoryResponse, err error) {
	if data.Name == "" {
		log.Ctx(ctx).Warn().Str("component", "UpdateCategory").Msg("missing category name")
		return resp, errs.ErrValidation
	}

	categoryID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return resp, errs.ErrNotFound
	}

	category := domain.Category{
		ID:          categoryID,
		Name:        data.Name,
		Image:       data.Image,
		Description: data.Description,
		UpdatedAt:   time.Now().Unix(),
	}

	if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return
	}

	updated, err := s.categoryRepo.GetCategoryByID(ctx, data.ID)
	if err != nil {
		return
	}

	return buildCategoryResponse(updated), nil
}

// DeleteCategory removes the category only; products referencing it keep
// their now-dangling reference and readers resolve it to nothing.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	return s.categoryRepo.DeleteCategory(ctx, id)
}
