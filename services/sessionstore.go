package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ethpandaops/getgas/cache"
	"github.com/ethpandaops/getgas/session"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps page sessions between requests.
type SessionStore struct {
	cache   *cache.TieredCache
	timeout time.Duration
}

func NewSessionStore(tieredCache *cache.TieredCache, timeout time.Duration) *SessionStore {
	return &SessionStore{
		cache:   tieredCache,
		timeout: timeout,
	}
}

func sessionCacheKey(id string) string {
	return fmt.Sprintf("session:%v", id)
}

// Create starts a new page session and stores it.
func (ss *SessionStore) Create(ctx context.Context) (*session.PageSession, error) {
	sess := session.New(uuid.NewString())
	if err := ss.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Load returns ErrSessionNotFound for ids that are malformed, unknown or expired.
func (ss *SessionStore) Load(ctx context.Context, id string) (*session.PageSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	sess := &session.PageSession{}
	err := ss.cache.Get(ctx, sessionCacheKey(id), sess)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session %v: %w", id, err)
	}
	return sess, nil
}

// Save stores the session and restarts its expiry.
func (ss *SessionStore) Save(ctx context.Context, sess *session.PageSession) error {
	if err := ss.cache.Set(ctx, sessionCacheKey(sess.Id), sess, ss.timeout); err != nil {
		return fmt.Errorf("error saving session %v: %w", sess.Id, err)
	}
	return nil
}

func (ss *SessionStore) Delete(ctx context.Context, id string) error {
	return ss.cache.Delete(ctx, sessionCacheKey(id))
}

func (ss *SessionStore) Close() error {
	return ss.cache.Close()
}
