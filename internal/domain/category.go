package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products for the storefront. The Product->Category
// reference is weak: deleting a category leaves referencing products in
// place and readers must tolerate the dangling id.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}
