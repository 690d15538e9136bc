package auth

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	SaveSession(ctx context.Context, token string, session Session) error
	// GetSession returns nil without error when the token is unknown.
	GetSession(ctx context.Context, token string) (*Session, error)
}

type repository struct {
	rdb *redis.Client
}

// NewRepository stores sessions in Redis. Sessions carry no TTL.
func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb: rdb}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (r *repository) SaveSession(ctx context.Context, token string, session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKey(token), string(payload), 0).Err()
}

func (r *repository) GetSession(ctx context.Context, token string) (*Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, err
	}
	return &session, nil
}
