package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Storage keeps one document per key in a collection, using the key as _id.
type Storage struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewStorage(coll *mongo.Collection) *Storage {
	return &Storage{coll: coll, now: time.Now}
}

// Get returns nil, nil when no document has the key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStorageOperation, err)
	}
	return doc.Value, nil
}

// Set upserts the document for key.
func (s *Storage) Set(ctx context.Context, key string, val []byte) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "value", Value: val},
		{Key: "updated_at", Value: s.now().UTC()},
	}}}
	_, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: key}}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}

// SetIfAbsent inserts a document for key and reports false when one already
// exists. The _id unique index makes the check atomic.
func (s *Storage) SetIfAbsent(ctx context.Context, key string, val []byte) (bool, error) {
	_, err := s.coll.InsertOne(ctx, kvDocument{Key: key, Value: val, UpdatedAt: s.now().UTC()})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrStorageOperation, err)
	}
	return true, nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: key}}); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}
