package database

import (
	"context"
	"fmt"
	"time"

	"acs/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// MongoStore implements Store using MongoDB.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies the connection. The
// returned store holds the single client reused for all requests.
func NewMongoStore(uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", utils.ErrStorage, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", utils.ErrStorage, err)
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// newContext creates a context with the per-operation timeout.
func newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func (s *MongoStore) CreateDocument(ctx context.Context, collection string, entity interface{}) (string, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, entity)
	if err != nil {
		return "", fmt.Errorf("%w: insert into %s: %v", utils.ErrStorage, collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find in %s: %v", utils.ErrStorage, collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode from %s: %v", utils.ErrStorage, collection, err)
	}
	return docs, nil
}

func (s *MongoStore) GetDocumentByID(ctx context.Context, collection string, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidID, id)
	}

	ctx, cancel := newContext(ctx)
	defer cancel()

	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find %s/%s: %v", utils.ErrStorage, collection, id, err)
	}
	return doc, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *MongoStore) DatabaseName() string {
	return s.db.Name()
}

func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
