package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"emerald-ads/internal/config/configs"
	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// maxTxAttempts bounds optimistic retries when a session key changes between
// WATCH and EXEC.
const maxTxAttempts = 5

// SessionStore keeps one JSON document per user under KeyPrefix+userID.
type SessionStore struct {
	c      *redis.Client
	prefix string
	ttl    time.Duration
}

var _ port.SessionStore = (*SessionStore)(nil)

// NewClient builds the redis client for cfg.
func NewClient(cfg configs.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewSessionStore(c *redis.Client, cfg configs.Redis) *SessionStore {
	return &SessionStore{c: c, prefix: cfg.KeyPrefix, ttl: cfg.SessionTTL}
}

func (s *SessionStore) key(userID int64) string {
	return s.prefix + strconv.FormatInt(userID, 10)
}

func (s *SessionStore) Get(ctx context.Context, userID int64) (*domain.UserSession, error) {
	return s.get(ctx, s.c, userID)
}

func (s *SessionStore) get(ctx context.Context, c redis.Cmdable, userID int64) (*domain.UserSession, error) {
	raw, err := c.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess domain.UserSession
	if err = json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %d: %w", userID, err)
	}
	return &sess, nil
}

func (s *SessionStore) Put(ctx context.Context, sess domain.UserSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, s.key(sess.ID), raw, s.ttl).Err()
}

// UpdateBalance rewrites the balance inside a WATCH transaction so a
// concurrent Put is never overwritten with stale fields. The key's TTL is
// kept.
func (s *SessionStore) UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*domain.UserSession, error) {
	key := s.key(userID)
	var updated *domain.UserSession
	txf := func(tx *redis.Tx) error {
		sess, err := s.get(ctx, tx, userID)
		if err != nil {
			return err
		}
		sess.AccountBalance = balance
		raw, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, redis.KeepTTL)
			return nil
		})
		if err == nil {
			updated = sess
		}
		return err
	}

	for i := 0; i < maxTxAttempts; i++ {
		err := s.c.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("update balance for user %d: %w", userID, redis.TxFailedErr)
}
