package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cfm-kit/complaint-service/internal/domain"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when a token does not resolve to a live
// session (unknown, expired or destroyed).
var ErrSessionNotFound = errors.New("session not found")

// Session is the transient, denormalized copy of the authenticated user held
// in the session store for the duration of a login.
type Session struct {
	UserID   int64       `json:"id"`
	Role     domain.Role `json:"role"`
	Username string      `json:"username"`
}

// SessionStore keeps sessions in Redis keyed by an opaque token, with a
// sliding expiry window.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore builds a store with the given lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create persists a new session for the user and returns its token.
func (s *SessionStore) Create(ctx context.Context, user *domain.User) (string, error) {
	payload, err := json.Marshal(Session{
		UserID:   user.ID,
		Role:     user.Role,
		Username: user.Username,
	})
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token and slides the expiry window forward.
func (s *SessionStore) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}

	// Sliding expiry: every authenticated request renews the window.
	_ = s.client.Expire(ctx, sessionKeyPrefix+token, s.ttl).Err()

	return &session, nil
}

// Destroy invalidates the session immediately. Destroying an unknown token
// is not an error.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
