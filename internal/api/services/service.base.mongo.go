// Package services contains the application services. Each service owns the
// business rules for one collection and talks to MongoDB through the generic
// MongoService.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/utility"
)

// UpdateData is a structured partial update.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"`
	Unset       map[string]interface{} `bson:"$unset,omitempty"`
}

// ToUpdateData converts an arbitrary value into an UpdateData. Plain structs
// and maps are wrapped in $set; UpdateData values pass through.
func ToUpdateData(data interface{}) (*UpdateData, error) {
	if update, ok := data.(*UpdateData); ok {
		return update, nil
	}
	if update, ok := data.(UpdateData); ok {
		return &update, nil
	}

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}
	return &UpdateData{Set: dataMap}, nil
}

// MongoService is the set of collection operations the domain services build
// on. It exists as an interface so tests can substitute an in-memory store.
type MongoService[T any] interface {
	InsertOne(ctx context.Context, data T) (T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error)
	UpdateMany(ctx context.Context, filter interface{}, data interface{}) (int64, error)
	Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// MongoServiceImpl implements MongoService on a *mongo.Collection.
type MongoServiceImpl[T any] struct {
	collection *mongo.Collection
}

// NewMongoService creates a MongoService backed by the given collection.
func NewMongoService[T any](collection *mongo.Collection) *MongoServiceImpl[T] {
	return &MongoServiceImpl[T]{collection: collection}
}

// Collection exposes the underlying collection for callers that need direct
// driver access (the export service).
func (s *MongoServiceImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne stores a new document, stamping createdAt/updatedAt, and returns
// the stored document.
func (s *MongoServiceImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Drop empty strings so sparse unique indexes skip them.
	for key, value := range dataMap {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(dataMap, key)
		}
	}

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return created, nil
}

// Find returns all documents matching the filter.
func (s *MongoServiceImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindOne returns the first document matching the filter, or ErrNotFound.
func (s *MongoServiceImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	if err := s.collection.FindOne(ctx, filter, opts).Decode(&result); err != nil {
		var zero T
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneById returns the document with the given id, or ErrNotFound.
func (s *MongoServiceImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// UpdateById applies a partial update to the document with the given id and
// returns the updated document, or ErrNotFound.
func (s *MongoServiceImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	var zero T

	update, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if update.Set == nil {
		update.Set = map[string]interface{}{}
	}
	update.Set["updatedAt"] = time.Now().UnixMilli()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated T
	if err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

// UpdateMany applies a partial update to every document matching the filter
// and returns the modified count.
func (s *MongoServiceImpl[T]) UpdateMany(ctx context.Context, filter interface{}, data interface{}) (int64, error) {
	update, err := ToUpdateData(data)
	if err != nil {
		return 0, common.ErrInvalidFormat
	}
	if update.Set == nil {
		update.Set = map[string]interface{}{}
	}
	update.Set["updatedAt"] = time.Now().UnixMilli()

	result, err := s.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// Upsert updates the document matching the filter or inserts it, returning
// the stored document.
func (s *MongoServiceImpl[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T

	update, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if update.Set == nil {
		update.Set = map[string]interface{}{}
	}
	now := time.Now().UnixMilli()
	update.Set["updatedAt"] = now
	if update.SetOnInsert == nil {
		update.SetOnInsert = map[string]interface{}{}
	}
	update.SetOnInsert["createdAt"] = now

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var stored T
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return stored, nil
}

// DeleteById removes the document with the given id. Deleting an id that does
// not exist is not an error; every delete endpoint is idempotent.
func (s *MongoServiceImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// DeleteMany removes every document matching the filter and returns the
// deleted count.
func (s *MongoServiceImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// CountDocuments counts documents matching the filter.
func (s *MongoServiceImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists reports whether any document matches the filter.
func (s *MongoServiceImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
