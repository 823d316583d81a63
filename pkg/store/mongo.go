package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/robertoranon/gltf-transform/pkg/errors"
	"github.com/robertoranon/gltf-transform/pkg/io"
	"time"
)

// MongoStore is a MongoDB-backed snapshot store for shared deployments.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig configures the MongoDB backend.
type MongoConfig struct {
	// URI is the MongoDB connection string (e.g. "mongodb://localhost:27017").
	URI string
	// Database is the database name (default "gltfx").
	Database string
	// Collection is the collection name (default "snapshots").
	Collection string
}

// NewMongoStore connects to MongoDB, verifies the connection with a ping,
// and ensures the unique name index exists.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "gltfx"
	}
	if cfg.Collection == "" {
		cfg.Collection = "snapshots"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure index: %w", err)
	}

	return &MongoStore{client: client, collection: coll}, nil
}

// Save stores a snapshot under name, replacing any previous record.
func (s *MongoStore) Save(ctx context.Context, name string, snap io.Snapshot) error {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return err
	}

	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"snapshot": snap, "updated_at": now},
		"$setOnInsert": bson.M{"name": name, "created_at": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.collection.UpdateOne(ctx, bson.M{"name": name}, update, opts); err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return nil
}

// Load retrieves the record stored under name.
func (s *MongoStore) Load(ctx context.Context, name string) (Record, error) {
	var rec Record
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return Record{}, errors.New(errors.ErrCodeSnapshotNotFound, "snapshot %q not found", name)
	}
	if err != nil {
		return Record{}, fmt.Errorf("load snapshot %q: %w", name, err)
	}
	return rec, nil
}

// List returns all stored names in lexical order.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var rec struct {
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode snapshot name: %w", err)
		}
		names = append(names, rec.Name)
	}
	return names, cursor.Err()
}

// Delete removes the record stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"name": name}); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
