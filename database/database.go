package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CarsCollection     string = "cars"
	BookingsCollection string = "bookings"
)

// Store owns the cars and bookings collections. A Store built by Connect
// also owns the client and must be closed.
type Store struct {
	client   *mongo.Client
	cars     *mongo.Collection
	bookings *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		cars:     db.Collection(CarsCollection),
		bookings: db.Collection(BookingsCollection),
	}
}

func Connect(ctx context.Context, connString string, dbName string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(connString).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	store := NewStore(client.Database(dbName))
	store.client = client
	return store, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
