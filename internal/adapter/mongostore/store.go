// Package mongostore implements domain.DocumentStore on MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"pathpilot/internal/config"
	"pathpilot/internal/database"
	"pathpilot/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is a MongoDB-backed document store with one lazily opened client.
type Store struct {
	dbName string
	client func(ctx context.Context) (*mongo.Client, error)
	conn   *database.Connector[*mongo.Client]
}

// New creates a Store. No connection is made until the first operation;
// an empty URI makes every operation fail with StoreUnavailable.
func New(cfg config.MongoDBConfig, connectTimeout time.Duration) *Store {
	s := &Store{dbName: cfg.Database}
	if cfg.URI == "" {
		s.client = func(context.Context) (*mongo.Client, error) {
			return nil, domain.NewStoreUnavailableError("MongoDB connection string is not configured", nil)
		}
		return s
	}

	s.conn = database.NewConnector("mongodb", connectTimeout, func(ctx context.Context) (*mongo.Client, error) {
		return connect(ctx, cfg.URI, connectTimeout)
	})
	s.client = s.conn.Get
	return s
}

func newWithClient(client *mongo.Client, dbName string) *Store {
	return &Store{
		dbName: dbName,
		client: func(context.Context) (*mongo.Client, error) { return client, nil },
	}
}

func connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	// Connect does not dial; Ping forces server selection within ctx.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func (s *Store) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(s.dbName).Collection(name), nil
}

// Insert stores doc and returns the generated id as a hex string.
func (s *Store) Insert(ctx context.Context, collection string, doc domain.Document) (string, error) {
	coll, err := s.collection(ctx, collection)
	if err != nil {
		return "", err
	}

	res, err := coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", domain.NewStoreOperationError("insert", err)
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

// Find returns documents matching filter. A nil filter matches everything.
func (s *Store) Find(ctx context.Context, collection string, filter domain.Document, opts domain.FindOptions) ([]domain.Document, error) {
	coll, err := s.collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find()
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if len(opts.Sort) > 0 {
		sort := bson.D{}
		for _, f := range opts.Sort {
			dir := 1
			if f.Descending {
				dir = -1
			}
			sort = append(sort, bson.E{Key: f.Field, Value: dir})
		}
		findOpts.SetSort(sort)
	}

	query := bson.M{}
	if filter != nil {
		query = bson.M(filter)
	}

	cursor, err := coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, domain.NewStoreOperationError("find", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, domain.NewStoreOperationError("find", err)
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, domain.Document(m))
	}
	return docs, nil
}

// Close disconnects the client if one was opened.
func (s *Store) Close(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	client, ok := s.conn.Current()
	if !ok {
		return nil
	}
	return client.Disconnect(ctx)
}

var _ domain.DocumentStore = (*Store)(nil)
