package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names, one per entity type.
const (
	ServiceCollection = "service"
	BookingCollection = "booking"
)

// Store is the document store gateway. It owns the single process-wide
// connection and hides the driver from the handlers; implementations
// must be safe for concurrent use.
type Store interface {
	// CreateDocument inserts the entity into the named collection and
	// returns the store-assigned identifier as a string.
	CreateDocument(ctx context.Context, collection string, entity interface{}) (string, error)
	// GetDocuments returns every document matching the filter. An empty
	// filter returns the whole collection.
	GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	// GetDocumentByID fetches one document by its identifier. Returns
	// utils.ErrInvalidID for malformed identifiers and utils.ErrNotFound
	// when no document exists.
	GetDocumentByID(ctx context.Context, collection string, id string) (bson.M, error)
	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
	// CollectionNames lists the collections present in the database.
	CollectionNames(ctx context.Context) ([]string, error)
	// DatabaseName reports the name of the backing database.
	DatabaseName() string
	// Disconnect releases the underlying connection.
	Disconnect(ctx context.Context) error
}
