// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kusaridev/oauth-webclient/pkg/auth"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "webclient:session"

// RedisStore keeps sessions in Redis so several server processes can share
// them. Every key carries the session TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisStoreFromURL connects to url and verifies the connection.
func NewRedisStoreFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisStore(client, ttl), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func pendingKey(sessionID string) string {
	return fmt.Sprintf("%s:%s:pending", keyPrefix, sessionID)
}

func credentialKey(sessionID string) string {
	return fmt.Sprintf("%s:%s:credential", keyPrefix, sessionID)
}

func (s *RedisStore) put(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, s.ttl).Err()
}

func (s *RedisStore) PutPending(ctx context.Context, sessionID string, p auth.Pending) error {
	return s.put(ctx, pendingKey(sessionID), p)
}

func (s *RedisStore) TakePending(ctx context.Context, sessionID string) (*auth.Pending, error) {
	val, err := s.client.GetDel(ctx, pendingKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p auth.Pending
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending authorization: %w: %w", auth.ErrUnreadable, err)
	}
	return &p, nil
}

func (s *RedisStore) PutCredential(ctx context.Context, sessionID string, cred auth.Credential) error {
	return s.put(ctx, credentialKey(sessionID), cred)
}

func (s *RedisStore) Credential(ctx context.Context, sessionID string) (*auth.Credential, error) {
	val, err := s.client.Get(ctx, credentialKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var cred auth.Credential
	if err := json.Unmarshal([]byte(val), &cred); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credential: %w: %w", auth.ErrUnreadable, err)
	}
	return &cred, nil
}

func (s *RedisStore) DeleteCredential(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, credentialKey(sessionID)).Err()
}
