package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roomshare-server/apperr"
	"roomshare-server/db"
	"roomshare-server/models"
)

const SESSION_KEY_FORMAT_V1 = "session_v1:%s"

// SessionDAO resolves session tokens. Sessions are written by the auth
// system; this app only reads them.
type SessionDAO struct {
	client db.RedisClient
}

func NewSessionDAO(client db.RedisClient) *SessionDAO {
	return &SessionDAO{client: client}
}

// GetByToken returns the session for a token, or an UNAUTHORIZED error when
// the token is unknown or expired.
func (dao *SessionDAO) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	raw, err := dao.client.Get(ctx, fmt.Sprintf(SESSION_KEY_FORMAT_V1, token))
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, apperr.New(apperr.CodeUnauthorized, "Unauthorized")
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("unmarshal session JSON: %w", err)
	}
	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(time.Now()) {
		return nil, apperr.New(apperr.CodeUnauthorized, "Unauthorized")
	}
	return &s, nil
}

// Put stores a session until its expiry. Used by fixtures and dev seeding.
func (dao *SessionDAO) Put(ctx context.Context, s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ttl := time.Duration(0)
	if !s.ExpiresAt.IsZero() {
		ttl = time.Until(s.ExpiresAt)
	}
	if err := dao.client.Set(ctx, fmt.Sprintf(SESSION_KEY_FORMAT_V1, s.Token), string(data), ttl); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}
