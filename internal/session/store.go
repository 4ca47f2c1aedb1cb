package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is the per-visit state: the identified customer, if any.
// The cart lives next to it under its own key. Nothing here is
// persisted to the relational store.
type Session struct {
	CustomerID   int64
	CustomerName string
	Phone        string
}

// Identified reports whether the visit has resolved a customer.
func (s *Session) Identified() bool {
	return s != nil && s.CustomerID != 0
}

// Store holds per-visit sessions and carts keyed by an opaque token.
type Store interface {
	// Get returns the session for token, or nil when none exists.
	Get(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, token string, s *Session) error

	// CartAdd appends one unit of productID to the visit's cart.
	CartAdd(ctx context.Context, token string, productID int64) error
	// CartRemove drops one occurrence of productID; removing an id
	// not in the cart is a no-op.
	CartRemove(ctx context.Context, token string, productID int64) error
	CartItems(ctx context.Context, token string) ([]int64, error)
	CartClear(ctx context.Context, token string) error
}

type redisStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRedisStore builds the Redis-backed session store. Sessions and
// carts share the same TTL, refreshed on every write.
func NewRedisStore(rdb redis.UniversalClient, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func cartKey(token string) string {
	return "cart:" + token
}

func (s *redisStore) Get(ctx context.Context, token string) (*Session, error) {
	fields, err := s.rdb.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	customerID, err := strconv.ParseInt(fields["customer_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", token, err)
	}
	return &Session{
		CustomerID:   customerID,
		CustomerName: fields["customer_name"],
		Phone:        fields["phone"],
	}, nil
}

func (s *redisStore) Save(ctx context.Context, token string, sess *Session) error {
	key := sessionKey(token)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key,
		"customer_id", strconv.FormatInt(sess.CustomerID, 10),
		"customer_name", sess.CustomerName,
		"phone", sess.Phone,
	)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisStore) CartAdd(ctx context.Context, token string, productID int64) error {
	key := cartKey(token)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, strconv.FormatInt(productID, 10))
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisStore) CartRemove(ctx context.Context, token string, productID int64) error {
	return s.rdb.LRem(ctx, cartKey(token), 1, strconv.FormatInt(productID, 10)).Err()
}

func (s *redisStore) CartItems(ctx context.Context, token string) ([]int64, error) {
	values, err := s.rdb.LRange(ctx, cartKey(token), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	items := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart %s: %w", token, err)
		}
		items = append(items, id)
	}
	return items, nil
}

func (s *redisStore) CartClear(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, cartKey(token)).Err()
}
