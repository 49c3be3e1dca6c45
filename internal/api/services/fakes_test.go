package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enzel-org/BestellDesk/internal/common"
)

// fakeStore is an in-memory MongoService for the service tests. Documents are
// held as bson maps; filters support the flat equality matches the services
// actually use (_id, aktiv, typ, lieferantId, benutzername, empty filter).
// Find options (sorting) are ignored, so tests must not depend on order.
type fakeStore[T any] struct {
	mu   sync.Mutex
	docs []bson.M
}

func newFakeStore[T any]() *fakeStore[T] {
	return &fakeStore[T]{}
}

func newTestID() primitive.ObjectID {
	return primitive.NewObjectID()
}

func toDoc(v interface{}) bson.M {
	raw, err := bson.Marshal(v)
	if err != nil {
		panic(err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		panic(err)
	}
	return m
}

func fromDoc[T any](m bson.M) T {
	raw, err := bson.Marshal(m)
	if err != nil {
		panic(err)
	}
	var v T
	if err := bson.Unmarshal(raw, &v); err != nil {
		panic(err)
	}
	return v
}

func matches(doc bson.M, filter interface{}) bool {
	f := toDoc(filter)
	for key, want := range f {
		got, ok := doc[key]
		if !ok {
			return false
		}
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}

func (s *fakeStore[T]) InsertOne(ctx context.Context, data T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := toDoc(data)
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	now := time.Now().UnixMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	s.docs = append(s.docs, doc)
	return fromDoc[T](doc), nil
}

func (s *fakeStore[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []T
	for _, doc := range s.docs {
		if matches(doc, filter) {
			results = append(results, fromDoc[T](doc))
		}
	}
	return results, nil
}

func (s *fakeStore[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if matches(doc, filter) {
			return fromDoc[T](doc), nil
		}
	}
	var zero T
	return zero, common.ErrNotFound
}

func (s *fakeStore[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

func applySet(doc bson.M, data interface{}) error {
	update, err := ToUpdateData(data)
	if err != nil {
		return err
	}
	for key, value := range update.Set {
		doc[key] = value
	}
	for key := range update.Unset {
		delete(doc, key)
	}
	doc["updatedAt"] = time.Now().UnixMilli()
	return nil
}

func (s *fakeStore[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	for _, doc := range s.docs {
		if matches(doc, bson.M{"_id": id}) {
			if err := applySet(doc, data); err != nil {
				return zero, err
			}
			return fromDoc[T](doc), nil
		}
	}
	return zero, common.ErrNotFound
}

func (s *fakeStore[T]) UpdateMany(ctx context.Context, filter interface{}, data interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var modified int64
	for _, doc := range s.docs {
		if matches(doc, filter) {
			if err := applySet(doc, data); err != nil {
				return modified, err
			}
			modified++
		}
	}
	return modified, nil
}

func (s *fakeStore[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	for _, doc := range s.docs {
		if matches(doc, filter) {
			if err := applySet(doc, data); err != nil {
				return zero, err
			}
			return fromDoc[T](doc), nil
		}
	}

	doc := toDoc(filter)
	doc["_id"] = primitive.NewObjectID()
	doc["createdAt"] = time.Now().UnixMilli()
	if err := applySet(doc, data); err != nil {
		return zero, err
	}
	s.docs = append(s.docs, doc)
	return fromDoc[T](doc), nil
}

func (s *fakeStore[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if matches(doc, bson.M{"_id": id}) {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeStore[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []bson.M
	var deleted int64
	for _, doc := range s.docs {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	s.docs = kept
	return deleted, nil
}

func (s *fakeStore[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, doc := range s.docs {
		if matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	return count > 0, err
}
