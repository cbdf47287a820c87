package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saasbase/saasbase/backend/internal/schema"
	"github.com/saasbase/saasbase/backend/pkg/metrics"
)

// Mongo implements Store over a single injected *mongo.Database handle. The
// handle is shared by all callers; the driver manages its own pooling.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo wraps an established client and database. The caller owns the
// client lifecycle (Disconnect on shutdown).
func NewMongo(client *mongo.Client, db *mongo.Database) *Mongo {
	return &Mongo{client: client, db: db}
}

func (m *Mongo) CreateDocument(ctx context.Context, collection string, doc map[string]interface{}) (string, error) {
	validated, err := schema.Validate(schema.Kind(collection), doc)
	if err != nil {
		return "", err
	}
	res, err := m.db.Collection(collection).InsertOne(ctx, bson.M(validated))
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}
	metrics.DocumentsCreated.WithLabelValues(collection).Inc()
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (m *Mongo) GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]map[string]interface{}, error) {
	if filter == nil {
		filter = map[string]interface{}{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.db.Collection(collection).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []map[string]interface{}{}
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, map[string]interface{}(d))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	metrics.DocumentsRead.WithLabelValues(collection).Add(float64(len(out)))
	return out, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *Mongo) Name() string {
	return m.db.Name()
}
