package cache

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCache implements a MongoDB-backed cache.
// Entries live in a single collection keyed by the cache key; expiration
// is checked on read so the backend works without a TTL index, though one
// can be added out of band for automatic cleanup.
type MongoCache struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds connection settings for a MongoDB cache backend.
type MongoConfig struct {
	URI        string // connection string (e.g., "mongodb://localhost:27017")
	Database   string // database name (e.g., "fontwell")
	Collection string // collection name (e.g., "cache")
}

// mongoEntry is the stored document shape.
type mongoEntry struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

// NewMongoCache connects to MongoDB and returns a cache backed by it.
// The connection is verified with a ping before returning.
func NewMongoCache(ctx context.Context, cfg MongoConfig) (Cache, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoCache{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a value from MongoDB.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := c.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_, _ = c.coll.DeleteOne(ctx, bson.M{"_id": key})
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value in MongoDB, replacing any existing entry for key.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := mongoEntry{Key: key, Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	opts := options.Replace().SetUpsert(true)
	_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": key}, entry, opts)
	return err
}

// Delete removes a value from MongoDB.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	_, err := c.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Close disconnects from MongoDB.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

// Ensure MongoCache implements Cache.
var _ Cache = (*MongoCache)(nil)
