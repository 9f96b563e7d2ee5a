package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Sravanvenkat03/library/internal/config"
)

// Collection names. The store is schema-flexible; these are the four
// document sets the service operates on.
const (
	CollectionBooks           = "books"
	CollectionUsers           = "users"
	CollectionReviews         = "reviews"
	CollectionReadingProgress = "reading_progress"
)

// Mongo wraps the MongoDB client and manages its lifecycle.
// The handle is read-only after Connect and shared across requests;
// the driver's connection pool takes care of concurrent use.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.MongoConfig
}

func NewMongo(cfg *config.MongoConfig) *Mongo {
	return &Mongo{Config: cfg}
}

// Connect establishes the client connection with retry + backoff.
// Each attempt is bounded by the configured connect timeout.
func (m *Mongo) Connect(ctx context.Context) error {
	var lastErr error

	for attempt := 1; attempt <= m.Config.MaxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, m.Config.ConnectTimeout)
		client, err := mongo.Connect(attemptCtx, options.Client().ApplyURI(m.Config.URI))
		if err == nil {
			err = client.Ping(attemptCtx, readpref.Primary())
		}
		cancel()

		if err == nil {
			m.Client = client
			m.Database = client.Database(m.Config.Database)
			return nil
		}

		lastErr = err
		log.Printf("⚠️  MongoDB connection attempt %d/%d failed: %v", attempt, m.Config.MaxRetries, err)

		if attempt < m.Config.MaxRetries {
			// Exponential backoff between attempts
			delay := m.Config.RetryDelay * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connect cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", m.Config.MaxRetries, lastErr)
}

// HealthCheck pings the primary.
func (m *Mongo) HealthCheck(ctx context.Context) error {
	if m.Client == nil {
		return fmt.Errorf("mongo client not connected")
	}
	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

func (m *Mongo) Books() *mongo.Collection {
	return m.Database.Collection(CollectionBooks)
}

func (m *Mongo) Users() *mongo.Collection {
	return m.Database.Collection(CollectionUsers)
}

func (m *Mongo) Reviews() *mongo.Collection {
	return m.Database.Collection(CollectionReviews)
}

func (m *Mongo) ReadingProgress() *mongo.Collection {
	return m.Database.Collection(CollectionReadingProgress)
}
