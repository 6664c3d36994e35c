package services

import (
	"context"
	"sync"

	"github.com/WUNDU/backoffice/domain"
)

type authSubscriber struct {
	id int
	fn func(bool)
}

// AuthBroadcaster implements domain.AuthState: a single process-wide
// authentication flag with one writer API and synchronous fan-out to
// subscribers in subscription order. It holds no persistence of its own;
// the session store is the durable source it is initialized from.
type AuthBroadcaster struct {
	mu       sync.RWMutex
	value    bool
	subs     []authSubscriber
	nextID   int
	initOnce sync.Once
}

// NewAuthBroadcaster creates an unauthenticated broadcaster
func NewAuthBroadcaster() *AuthBroadcaster {
	return &AuthBroadcaster{}
}

// InitFromStore seeds the flag from the session store's validity. Runs at
// most once regardless of how many times it is called.
func (b *AuthBroadcaster) InitFromStore(ctx context.Context, store domain.SessionStore) error {
	var err error
	b.initOnce.Do(func() {
		var valid bool
		valid, err = store.Valid(ctx)
		if err != nil {
			return
		}
		b.Set(valid)
	})
	return err
}

// IsAuthenticated implements domain.AuthState
func (b *AuthBroadcaster) IsAuthenticated() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.value
}

// Set implements domain.AuthState. Subscribers are notified synchronously
// before Set returns.
func (b *AuthBroadcaster) Set(authenticated bool) {
	b.mu.Lock()
	b.value = authenticated
	subs := make([]authSubscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(authenticated)
	}
}

// Subscribe implements domain.AuthState
func (b *AuthBroadcaster) Subscribe(fn func(bool)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, authSubscriber{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}
