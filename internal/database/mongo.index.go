package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/enzel-org/BestellDesk/internal/logger"
)

// CreateIndexes builds indexes for a collection from `index` struct tags on
// the model. Supported tag values:
//
//	index:"single:1"         ascending single-field index
//	index:"single:-1"        descending single-field index
//	index:"single:1,unique"  unique single-field index
//
// The indexed field name is taken from the bson tag.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var indexModels []mongo.IndexModel

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		indexTag := field.Tag.Get("index")
		if indexTag == "" {
			continue
		}

		bsonName := bsonFieldName(field)
		if bsonName == "" || bsonName == "-" {
			continue
		}

		order := 1
		unique := false
		for _, part := range strings.Split(indexTag, ",") {
			switch {
			case part == "single:1":
				order = 1
			case part == "single:-1":
				order = -1
			case part == "unique":
				unique = true
			}
		}

		opts := options.Index()
		if unique {
			opts.SetUnique(true)
		}

		indexModels = append(indexModels, mongo.IndexModel{
			Keys:    bson.D{{Key: bsonName, Value: order}},
			Options: opts,
		})
	}

	if len(indexModels) == 0 {
		return nil
	}

	names, err := collection.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes for %s: %w", collection.Name(), err)
	}
	logger.GetAppLogger().WithField("indexes", names).Debugf("Ensured indexes for collection %s", collection.Name())
	return nil
}

// bsonFieldName extracts the field name used in MongoDB from the bson tag.
func bsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("bson")
	if tag == "" {
		return strings.ToLower(field.Name)
	}
	return strings.Split(tag, ",")[0]
}
