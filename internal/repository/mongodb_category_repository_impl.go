package repository

import (
	"context"

	"github.com/mondragon/guitar-shop/storefront-service/internal/domain"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("categories").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return category, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: categoryID}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return category, err
	}
	return category, nil
}

func (r *MongoDBCategoryRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "image", Value: data.Image},
		{Key: "description", Value: data.Description},
		{Key: "updatedAt", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("categories").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCategory").Msg("Failed to update category")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCategoryRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: categoryID}}

	result, err := r.db.Collection("categories").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
