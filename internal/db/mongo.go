package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danandika/mhs-api/internal/config"
)

// Mongo holds the database connection for one worker. Workers never share a
// client; the database itself is the only cross-worker shared resource.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database

	collection string
}

// Connect opens a client, verifies it with a ping and logs the outcome.
func Connect(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	lgr.Info().Str("database", cfg.Mongo.Database).Msg("Database connection successfully established")

	return &Mongo{
		Client:     client,
		Database:   client.Database(cfg.Mongo.Database),
		collection: cfg.Mongo.Collection,
	}, nil
}

// Collection returns the student record collection.
func (m *Mongo) Collection() *mongo.Collection {
	return m.Database.Collection(m.collection)
}

// EnsureIndexes creates the unique compound index over the record tuple.
// The application still runs an existence check for friendly conflict
// responses; the index closes the check-then-create race.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
			{Key: "npm", Value: 1},
			{Key: "bid", Value: 1},
			{Key: "fak", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_student_tuple"),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique student index: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
