package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"members_roulette/internal/common"
	"members_roulette/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores login sessions and OAuth identities keyed by an
// opaque token. Expiry is enforced by the store's TTL.
type SessionRepository interface {
	SaveSession(ctx context.Context, session *model.Session, ttl time.Duration) error
	FindSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error

	SaveIdentity(ctx context.Context, identity *model.Identity, ttl time.Duration) error
	FindIdentity(ctx context.Context, token string) (*model.Identity, error)
	DeleteIdentity(ctx context.Context, token string) error
}

type redisSessionRepository struct {
	rdb *redis.Client
}

func NewRedisSessionRepository(rdb *redis.Client) SessionRepository {
	return &redisSessionRepository{rdb: rdb}
}

func sessionKey(token string) string  { return "session:" + token }
func identityKey(token string) string { return "identity:" + token }

func (r *redisSessionRepository) SaveSession(ctx context.Context, session *model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redisSessionRepository.SaveSession: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKey(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.SaveSession: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) FindSession(ctx context.Context, token string) (*model.Session, error) {
	payload, err := r.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("redisSessionRepository.FindSession: %w", err)
	}
	session := &model.Session{Token: token}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redisSessionRepository.FindSession: %w", err)
	}
	return session, nil
}

func (r *redisSessionRepository) DeleteSession(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.DeleteSession: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) SaveIdentity(ctx context.Context, identity *model.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("redisSessionRepository.SaveIdentity: %w", err)
	}
	if err := r.rdb.Set(ctx, identityKey(identity.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.SaveIdentity: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) FindIdentity(ctx context.Context, token string) (*model.Identity, error) {
	payload, err := r.rdb.Get(ctx, identityKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("redisSessionRepository.FindIdentity: %w", err)
	}
	identity := &model.Identity{Token: token}
	if err := json.Unmarshal(payload, identity); err != nil {
		return nil, fmt.Errorf("redisSessionRepository.FindIdentity: %w", err)
	}
	return identity, nil
}

func (r *redisSessionRepository) DeleteIdentity(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, identityKey(token)).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.DeleteIdentity: %w", err)
	}
	return nil
}
