package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cras-office/agenda/internal/core/ports"
)

const collectionDocuments = "cras_documents"

// document is one stored value; the document key is the _id.
type document struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type Store struct {
	col    *mongo.Collection
	client *mongo.Client
}

var _ ports.Store = (*Store)(nil)

func NewStore(db *mongo.Database) *Store {
	return &Store{col: db.Collection(collectionDocuments), client: db.Client()}
}

// Read retrieves the value stored under key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc document
	err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("mongo find %s: %w", key, err)
	}
	return []byte(doc.Value), true, nil
}

// Write replaces the value under key, inserting it when absent.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.ReplaceOne(ctx,
		bson.M{"_id": key},
		document{Key: key, Value: string(value)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo replace %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}
