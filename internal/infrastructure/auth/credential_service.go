package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/WUNDU/backoffice/domain"
)

// CredentialServiceImpl implements domain.CredentialService against a
// single seeded credential record. It stands in for an external identity
// provider: exactly one pair is accepted, everything else is rejected with
// a nil user, and a network round trip is simulated before answering.
type CredentialServiceImpl struct {
	email   string
	hash    []byte
	user    domain.User
	latency time.Duration
}

// NewCredentialService seeds the provider with one credential pair. The
// secret is stored as a bcrypt hash; the plaintext is dropped.
func NewCredentialService(email, password string, user domain.User, latency time.Duration) (*CredentialServiceImpl, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed credential: %w", err)
	}
	return &CredentialServiceImpl{
		email:   email,
		hash:    hash,
		user:    user,
		latency: latency,
	}, nil
}

// Authenticate implements domain.CredentialService. A rejection is
// (nil, nil); an error return signals an unexpected fault only, such as
// context cancellation during the simulated round trip.
func (s *CredentialServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if !strings.EqualFold(email, s.email) {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return nil, nil
	}

	user := s.user
	return &user, nil
}
