package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pcg/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

// LevelRepo handles the persistence of level records.
type LevelRepo struct {
	collection *mongo.Collection
}

// NewLevelRepo creates a new LevelRepo with the given MongoDB client, database name, and collection name.
func NewLevelRepo(client *mongo.Client, dbName, collectionName string) *LevelRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &LevelRepo{
		collection: collection,
	}
}

// Save inserts or updates a level record.
// Records are immutable once created, so an existing createdAt is kept.
func (r *LevelRepo) Save(ctx context.Context, level *dmn.LevelRecord) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": level.ID}
	update := bson.M{
		"$set": bson.M{
			"seed":   level.Seed,
			"params": level.Params,
			"author": level.Author,
		},
		"$setOnInsert": bson.M{
			"createdAt": level.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a level record by its ID.
// Returns dmn.ErrLevelNotFound if the record does not exist.
func (r *LevelRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.LevelRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var level dmn.LevelRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&level); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrLevelNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &level, nil
}

// ByAuthor retrieves the records saved by author, newest first.
func (r *LevelRepo) ByAuthor(ctx context.Context, author string) ([]*dmn.LevelRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	filter := bson.M{"author": author}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	levels := []*dmn.LevelRecord{}
	if err := cursor.All(ctx, &levels); err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return levels, nil
}
