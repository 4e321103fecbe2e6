package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// SessionRedisRepository stores session snapshots in Redis
type SessionRedisRepository struct {
	client *redis.Client
	exp    time.Duration // idle lifetime of a session
}

// NewSessionRedisRepository creates a new repository instance with the given TTL
func NewSessionRedisRepository(client *redis.Client, expiration time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("topup_session:%s", id)
}

// Save writes the snapshot and refreshes its TTL
func (r *SessionRedisRepository) Save(ctx context.Context, s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	key := sessionKey(s.ID)
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("session saved",
		"key", key,
		"screen", s.Screen,
		"error", err,
	)

	return err
}

// Get loads a snapshot. It returns nil, nil when the session is unknown or expired
func (r *SessionRedisRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	key := sessionKey(id)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log.Errorw("failed to load session", "key", key, "error", err)
		return nil, err
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Log.Errorw("failed to decode session", "key", key, "error", err)
		return nil, err
	}
	return &s, nil
}

// Delete removes a snapshot
func (r *SessionRedisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
