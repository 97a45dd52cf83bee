package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/text/language"
)

// DefaultMongoCollection is the collection name used by the CLI.
const DefaultMongoCollection = "l10n_catalogs"

// MongoFinder is the subset of *mongo.Collection used by MongoLoader.
type MongoFinder interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
}

// MongoDocument is the stored shape of one catalog.
type MongoDocument struct {
	Name    string            `bson:"name"`
	Locale  string            `bson:"locale"`
	Entries map[string]string `bson:"entries"`
}

// MongoLoader reads one document per catalog, matched on name and BCP 47 locale.
type MongoLoader struct {
	coll MongoFinder
}

// NewMongoLoader panics if coll is nil.
func NewMongoLoader(coll MongoFinder) *MongoLoader {
	if coll == nil {
		panic("catalog: mongo loader requires a collection")
	}
	return &MongoLoader{coll: coll}
}

// Load implements the Loader interface
func (l *MongoLoader) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	filter := bson.D{
		{Key: "name", Value: name},
		{Key: "locale", Value: locale.String()},
	}

	var doc MongoDocument
	if err := l.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	return New(name, locale, doc.Entries), nil
}
