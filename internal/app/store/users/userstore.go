// internal/app/store/users/userstore.go

// Package userstore reads the users collection for sign-in and session
// resolution.
package userstore

import (
	"context"
	"errors"

	"github.com/confhub/confhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("users")}
}

// GetByEmail looks up a user by case-folded email. Returns (nil, nil)
// when no user matches so callers can treat unknown and wrong-password
// the same way.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	folded := text.Fold(email)
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email_ci": folded}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
