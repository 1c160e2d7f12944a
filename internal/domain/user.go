package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	HashedPassword string             `bson:"hashedPassword"`
	ExternalID     string             `bson:"externalId"`
	IsAdmin        bool               `bson:"isAdmin"`
	CreatedAt      int64              `bson:"createdAt"`
	UpdatedAt      int64              `bson:"updatedAt"`
}
