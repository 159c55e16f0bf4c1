// internal/app/store/users/fetcher.go

package userstore

import (
	"context"

	"github.com/confhub/confhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Fetcher resolves session user IDs against the users collection. It
// implements auth.UserFetcher; a nil result signs the request out.
type Fetcher struct {
	Store *Store
	Log   *zap.Logger
}

// NewFetcher builds a Fetcher over the given database.
func NewFetcher(db *mongo.Database, logger *zap.Logger) *Fetcher {
	return &Fetcher{Store: New(db), Log: logger}
}

func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		f.Log.Debug("session user id not a valid object id", zap.String("user_id", userID))
		return nil
	}

	var row struct {
		ID       primitive.ObjectID `bson:"_id"`
		FullName string             `bson:"full_name"`
		Email    string             `bson:"email"`
		Role     string             `bson:"role"`
		Status   string             `bson:"status"`
	}
	opts := options.FindOne().SetProjection(bson.M{
		"full_name": 1,
		"email":     1,
		"role":      1,
		"status":    1,
	})
	if err := f.Store.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&row); err != nil {
		f.Log.Debug("session user not found", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if row.Status != "active" {
		f.Log.Debug("session user not active", zap.String("user_id", userID), zap.String("status", row.Status))
		return nil
	}

	return &auth.SessionUser{
		ID:    row.ID.Hex(),
		Name:  row.FullName,
		Email: row.Email,
		Role:  row.Role,
	}
}
