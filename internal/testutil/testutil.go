// internal/testutil/testutil.go

// Package testutil holds helpers for integration tests that run against a
// real MongoDB. Tests using it skip unless CONFHUB_TEST_MONGO_URI is set,
// so the default `go test ./...` run stays database-free.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnvMongoURI names the environment variable carrying the test MongoDB URI.
const EnvMongoURI = "CONFHUB_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB and returns a fresh database.
// The test is skipped when EnvMongoURI is unset; the database is dropped
// and the client disconnected in cleanup.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(EnvMongoURI)
	if uri == "" {
		t.Skipf("%s not set; skipping integration test", EnvMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect test mongodb: %v", err)
	}

	db := client.Database("confhub_test_" + primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}
