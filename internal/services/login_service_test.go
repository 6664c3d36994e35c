package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WUNDU/backoffice/domain"
	"github.com/WUNDU/backoffice/internal/mocks"
)

func validForm() domain.LoginForm {
	return domain.LoginForm{Email: "test@example.com", Password: "password123"}
}

func acceptedUser() *domain.User {
	return &domain.User{ID: "123", Email: "test@example.com", Name: "Test User", Role: "user"}
}

func newLoginServiceForTest(creds *mocks.MockCredentialService, store *mocks.MockSessionStore) (*LoginServiceImpl, *AuthBroadcaster, *AuditRecorderImpl) {
	if creds == nil {
		creds = mocks.NewMockCredentialService()
	}
	if store == nil {
		store = mocks.NewMockSessionStore()
	}
	auth := NewAuthBroadcaster()
	audit := NewAuditRecorder(16)
	return NewLoginService(creds, store, auth, audit, domain.DefaultSessionTTL), auth, audit
}

func TestLoginServiceImpl_SuccessfulLogin(t *testing.T) {
	creds := mocks.NewMockCredentialService()
	store := mocks.NewMockSessionStore()

	var storedUserID string
	var storedTTL time.Duration
	store.SetFunc = func(ctx context.Context, userID string, ttl time.Duration) error {
		storedUserID = userID
		storedTTL = ttl
		return nil
	}

	svc, auth, _ := newLoginServiceForTest(creds, store)

	// observe the machine while the credential check is in flight
	var stateDuringCheck domain.NavState
	var formDuringCheck *domain.LoginForm
	creds.AuthenticateFunc = func(ctx context.Context, email, password string) (*domain.User, error) {
		stateDuringCheck = svc.State()
		formDuringCheck = svc.InFlightForm()
		return acceptedUser(), nil
	}

	outcome := svc.Submit(context.Background(), validForm())

	if outcome.Kind != domain.OutcomeRedirect {
		t.Fatalf("expected redirect outcome, got %+v", outcome)
	}
	if outcome.RedirectTo != DashboardRoot {
		t.Errorf("expected redirect to %q, got %q", DashboardRoot, outcome.RedirectTo)
	}
	if stateDuringCheck != domain.NavSubmitting {
		t.Errorf("expected submitting state during credential check, got %q", stateDuringCheck)
	}
	if formDuringCheck == nil || formDuringCheck.Email != "test@example.com" {
		t.Errorf("expected in-flight payload to be retained, got %+v", formDuringCheck)
	}
	if svc.State() != domain.NavIdle {
		t.Errorf("expected idle state after submission, got %q", svc.State())
	}
	if !auth.IsAuthenticated() {
		t.Error("expected auth state to end true")
	}
	if storedUserID != "123" {
		t.Errorf("expected session persisted for user 123, got %q", storedUserID)
	}
	if storedTTL != domain.DefaultSessionTTL {
		t.Errorf("expected the fixed 60-minute TTL, got %v", storedTTL)
	}
}

func TestLoginServiceImpl_WrongCredentials(t *testing.T) {
	creds := mocks.NewMockCredentialService()
	store := mocks.NewMockSessionStore()

	sessionWritten := false
	store.SetFunc = func(ctx context.Context, userID string, ttl time.Duration) error {
		sessionWritten = true
		return nil
	}
	// default AuthenticateFunc rejects

	svc, auth, _ := newLoginServiceForTest(creds, store)
	outcome := svc.Submit(context.Background(), domain.LoginForm{Email: "test@example.com", Password: "wrong"})

	if outcome.Kind != domain.OutcomeRejected {
		t.Fatalf("expected rejected outcome, got %+v", outcome)
	}
	if outcome.Error != domain.MsgInvalidCredentials {
		t.Errorf("expected %q, got %q", domain.MsgInvalidCredentials, outcome.Error)
	}
	if auth.IsAuthenticated() {
		t.Error("expected auth state to end false")
	}
	if sessionWritten {
		t.Error("expected no session to be persisted")
	}
	if svc.State() != domain.NavIdle {
		t.Errorf("expected idle state after rejection, got %q", svc.State())
	}
}

func TestLoginServiceImpl_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		form domain.LoginForm
	}{
		{"missing email", domain.LoginForm{Email: "", Password: "x"}},
		{"missing password", domain.LoginForm{Email: "test@example.com", Password: ""}},
		{"missing both", domain.LoginForm{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := mocks.NewMockCredentialService()
			invoked := false
			creds.AuthenticateFunc = func(ctx context.Context, email, password string) (*domain.User, error) {
				invoked = true
				return nil, nil
			}

			svc, _, _ := newLoginServiceForTest(creds, nil)
			outcome := svc.Submit(context.Background(), tt.form)

			if outcome.Kind != domain.OutcomeInvalid {
				t.Fatalf("expected invalid outcome, got %+v", outcome)
			}
			if outcome.Error != domain.MsgFillAllFields {
				t.Errorf("expected %q, got %q", domain.MsgFillAllFields, outcome.Error)
			}
			if invoked {
				t.Error("expected the credential check to never run")
			}
		})
	}
}

func TestLoginServiceImpl_UnexpectedFailure(t *testing.T) {
	creds := mocks.NewMockCredentialService()
	creds.AuthenticateFunc = func(ctx context.Context, email, password string) (*domain.User, error) {
		return nil, errors.New("identity provider unreachable")
	}

	svc, auth, _ := newLoginServiceForTest(creds, nil)
	outcome := svc.Submit(context.Background(), validForm())

	if outcome.Kind != domain.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %+v", outcome)
	}
	if outcome.Error != domain.MsgLoginRetry {
		t.Errorf("expected the generic retry message, got %q", outcome.Error)
	}
	if outcome.Error == domain.MsgInvalidCredentials {
		t.Error("unexpected failures must not read like a credential rejection")
	}
	if auth.IsAuthenticated() {
		t.Error("expected auth state to stay false")
	}
	if svc.State() != domain.NavIdle {
		t.Errorf("expected idle state after failure, got %q", svc.State())
	}
}

func TestLoginServiceImpl_PanicIsContained(t *testing.T) {
	creds := mocks.NewMockCredentialService()
	creds.AuthenticateFunc = func(ctx context.Context, email, password string) (*domain.User, error) {
		panic("boom")
	}

	svc, _, _ := newLoginServiceForTest(creds, nil)
	outcome := svc.Submit(context.Background(), validForm())

	if outcome.Kind != domain.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %+v", outcome)
	}
	if svc.State() != domain.NavIdle {
		t.Errorf("expected the machine back at idle, got %q", svc.State())
	}
}

func TestLoginServiceImpl_SessionWriteFailure(t *testing.T) {
	creds := mocks.NewMockCredentialService()
	creds.AuthenticateFunc = func(ctx context.Context, email, password string) (*domain.User, error) {
		return acceptedUser(), nil
	}
	store := mocks.NewMockSessionStore()
	store.SetFunc = func(ctx context.Context, userID string, ttl time.Duration) error {
		return errors.New("store unavailable")
	}

	svc, auth, _ := newLoginServiceForTest(creds, store)
	outcome := svc.Submit(context.Background(), validForm())

	if outcome.Kind != domain.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %+v", outcome)
	}
	if auth.IsAuthenticated() {
		t.Error("expected auth state to stay false when the session write fails")
	}
}

func TestLoginServiceImpl_ConcurrentSubmitGuard(t *testing.T) {
	creds := mocks.NewMockCredentialService()
	release := make(chan struct{})
	started := make(chan struct{})
	creds.AuthenticateFunc = func(ctx context.Context, email, password string) (*domain.User, error) {
		close(started)
		<-release
		return acceptedUser(), nil
	}

	svc, _, _ := newLoginServiceForTest(creds, nil)

	done := make(chan domain.LoginOutcome, 1)
	go func() { done <- svc.Submit(context.Background(), validForm()) }()
	<-started

	second := svc.Submit(context.Background(), validForm())
	if second.Kind != domain.OutcomeFailed {
		t.Errorf("expected a second in-flight submission to be refused, got %+v", second)
	}

	close(release)
	first := <-done
	if first.Kind != domain.OutcomeRedirect {
		t.Errorf("expected the first submission to succeed, got %+v", first)
	}
}

func TestLoginServiceImpl_Logout(t *testing.T) {
	store := mocks.NewMockSessionStore()
	cleared := false
	store.ClearFunc = func(ctx context.Context) error {
		cleared = true
		return nil
	}

	svc, auth, _ := newLoginServiceForTest(nil, store)
	auth.Set(true)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cleared {
		t.Error("expected the session store to be cleared")
	}
	if auth.IsAuthenticated() {
		t.Error("expected auth state to end false")
	}
}
