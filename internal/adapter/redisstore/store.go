// Package redisstore implements domain.DocumentStore on Redis.
//
// Each collection is a hash of id -> JSON document plus a sorted set that
// records insertion order, scored by a per-collection counter. Filters are
// top-level equality matches evaluated in process.
package redisstore

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"pathpilot/internal/config"
	"pathpilot/internal/database"
	"pathpilot/internal/domain"
	"pathpilot/internal/util"

	"github.com/redis/go-redis/v9"
)

// IDField is the document key holding the generated id.
const IDField = "_id"

// Store is a Redis-backed document store.
type Store struct {
	client func(ctx context.Context) (*redis.Client, error)
	conn   *database.Connector[*redis.Client]
	newID  func() string
}

// New creates a Store that connects on first use.
func New(cfg config.RedisConfig, connectTimeout time.Duration) *Store {
	s := &Store{newID: util.NewULID}
	if cfg.Address == "" {
		s.client = func(context.Context) (*redis.Client, error) {
			return nil, domain.NewStoreUnavailableError("Redis address is not configured", nil)
		}
		return s
	}
	s.conn = database.NewConnector("redis", connectTimeout, func(ctx context.Context) (*redis.Client, error) {
		return NewClient(ctx, cfg)
	})
	s.client = s.conn.Get
	return s
}

// NewWithClient wraps an already connected client.
func NewWithClient(client *redis.Client) *Store {
	return &Store{
		client: func(context.Context) (*redis.Client, error) { return client, nil },
		newID:  util.NewULID,
	}
}

// Insert stores doc under a new ULID and returns it.
func (s *Store) Insert(ctx context.Context, collection string, doc domain.Document) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	id := s.newID()
	stored := make(domain.Document, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored[IDField] = id

	payload, err := json.Marshal(stored)
	if err != nil {
		return "", domain.NewStoreOperationError("insert", err)
	}

	seq, err := client.Incr(ctx, seqKey(collection)).Result()
	if err != nil {
		return "", domain.NewStoreOperationError("insert", err)
	}
	if err := client.HSet(ctx, docsKey(collection), id, string(payload)).Err(); err != nil {
		return "", domain.NewStoreOperationError("insert", err)
	}
	if err := client.ZAdd(ctx, indexKey(collection), redis.Z{Score: float64(seq), Member: id}).Err(); err != nil {
		return "", domain.NewStoreOperationError("insert", err)
	}
	return id, nil
}

// Find returns documents in insertion order, narrowed by filter and then
// ordered and limited per opts.
func (s *Store) Find(ctx context.Context, collection string, filter domain.Document, opts domain.FindOptions) ([]domain.Document, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := client.ZRange(ctx, indexKey(collection), 0, -1).Result()
	if err != nil {
		return nil, domain.NewStoreOperationError("find", err)
	}
	docs := make([]domain.Document, 0, len(ids))
	if len(ids) == 0 {
		return docs, nil
	}

	values, err := client.HMGet(ctx, docsKey(collection), ids...).Result()
	if err != nil {
		return nil, domain.NewStoreOperationError("find", err)
	}

	want, err := normalize(filter)
	if err != nil {
		return nil, domain.NewStoreOperationError("find", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // index entry without a document
		}
		var doc domain.Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, domain.NewStoreOperationError("find", fmt.Errorf("corrupt document: %w", err))
		}
		if matches(doc, want) {
			docs = append(docs, doc)
		}
	}

	if len(opts.Sort) > 0 {
		sort.SliceStable(docs, func(i, j int) bool {
			for _, f := range opts.Sort {
				c := compareValues(docs[i][f.Field], docs[j][f.Field])
				if c == 0 {
					continue
				}
				if f.Descending {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	if opts.Limit > 0 && int64(len(docs)) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}

// Close closes the client if one was opened.
func (s *Store) Close(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	client, ok := s.conn.Current()
	if !ok {
		return nil
	}
	return client.Close()
}

// normalize round-trips the filter through JSON so its values compare
// equal to decoded documents.
func normalize(filter domain.Document) (domain.Document, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(filter)
	if err != nil {
		return nil, err
	}
	var out domain.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func matches(doc, filter domain.Document) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

// compareValues orders decoded JSON scalars. Strings that parse as RFC 3339
// timestamps compare chronologically. Missing values sort first.
func compareValues(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			at, errA := time.Parse(time.RFC3339Nano, av)
			bt, errB := time.Parse(time.RFC3339Nano, bv)
			if errA == nil && errB == nil {
				return at.Compare(bt)
			}
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

var _ domain.DocumentStore = (*Store)(nil)
