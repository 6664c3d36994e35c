package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/WUNDU/backoffice/domain"
)

// Fixed key layout of the durable session store. Both keys are always
// written and cleared together; one without the other means no session.
const (
	tokenKey  = "auth_token"
	expiryKey = "auth_expiry"
)

// redisTTLGrace keeps a Redis-level expiry as a backstop strictly after the
// logical expiry, so the now == expiresAt boundary is decided by the
// validator, never by Redis.
const redisTTLGrace = time.Minute

// SessionStoreImpl implements domain.SessionStore on Redis
type SessionStoreImpl struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionStore creates the session store
func NewSessionStore(client *redis.Client) *SessionStoreImpl {
	return &SessionStoreImpl{client: client, now: time.Now}
}

// Set implements domain.SessionStore. Any prior session is overwritten
// unconditionally; there is no merge.
func (s *SessionStoreImpl) Set(ctx context.Context, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	expiresAt := s.now().Add(ttl).UnixMilli()

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey, userID, ttl+redisTTLGrace)
	pipe.Set(ctx, expiryKey, strconv.FormatInt(expiresAt, 10), ttl+redisTTLGrace)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear implements domain.SessionStore. Clearing an already-empty store is
// a no-op.
func (s *SessionStoreImpl) Clear(ctx context.Context) error {
	return s.client.Del(ctx, tokenKey, expiryKey).Err()
}

// Valid implements domain.SessionStore. A missing key, a malformed expiry
// or a passed expiry all report false; the latter two clear the store as a
// side effect. The boundary now == expiresAt is still valid.
func (s *SessionStoreImpl) Valid(ctx context.Context) (bool, error) {
	vals, err := s.client.MGet(ctx, tokenKey, expiryKey).Result()
	if err != nil {
		return false, err
	}

	token, tokenOK := vals[0].(string)
	expiryStr, expiryOK := vals[1].(string)
	if !tokenOK || !expiryOK || token == "" {
		return false, nil
	}

	expiresAt, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		// corrupted expiry fails closed
		if cerr := s.Clear(ctx); cerr != nil {
			return false, cerr
		}
		return false, nil
	}

	if s.now().UnixMilli() > expiresAt {
		if cerr := s.Clear(ctx); cerr != nil {
			return false, cerr
		}
		return false, nil
	}

	return true, nil
}

// UserID implements domain.SessionStore
func (s *SessionStoreImpl) UserID(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrSessionNotFound
		}
		return "", err
	}
	return token, nil
}
