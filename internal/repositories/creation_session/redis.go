package creationsession

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/pkg/clock"
	redisclient "github.com/Sanji-devv/Mineria-dc-bot/internal/redis"
)

const (
	// Key pattern: creation_session:{owner_id}
	sessionKeyPrefix = "creation_session:"

	errSessionNil    = "session cannot be nil"
	errOwnerIDEmpty  = "owner ID cannot be empty"
	errSessionExpiry = "session expiry must be in the future"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for creation sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Put stores a session, replacing any existing session for the owner.
// The Redis TTL is derived from the session's ExpiresAt.
func (r *redisRepository) Put(ctx context.Context, session *Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}

	now := r.clock.Now()
	if !session.ExpiresAt.After(now) {
		return errors.InvalidArgument(errSessionExpiry)
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(session.OwnerID)
	if err := r.client.Set(ctx, key, sessionJSON, session.ExpiresAt.Sub(now)).Err(); err != nil {
		return errors.Wrapf(err, "failed to store session in Redis")
	}

	return nil
}

// Get retrieves the live session for an owner
func (r *redisRepository) Get(ctx context.Context, ownerID string) (*Session, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := r.buildKey(ownerID)
	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no active creation session")
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis enforces the TTL too; this covers a clock injected ahead
	// of the store.
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("creation session has expired")
	}

	return &session, nil
}

// Delete removes the session for an owner
func (r *redisRepository) Delete(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}

	if err := r.client.Del(ctx, r.buildKey(ownerID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete session from Redis")
	}
	return nil
}

func (r *redisRepository) buildKey(ownerID string) string {
	return sessionKeyPrefix + ownerID
}
