package services

import (
	"context"
	"sync"
	"time"

	"github.com/WUNDU/backoffice/domain"
)

// DashboardRoot is where a successful login lands
const DashboardRoot = "/dashboard"

// LoginServiceImpl implements domain.LoginController: the submission state
// machine around the asynchronous credential check. The machine is
// re-entrant per submission — idle, submitting, back to idle on every path.
type LoginServiceImpl struct {
	mu         sync.Mutex
	nav        domain.NavState
	inFlight   *domain.LoginForm
	creds      domain.CredentialService
	sessions   domain.SessionStore
	auth       domain.AuthState
	audit      domain.AuditRecorder
	sessionTTL time.Duration
}

// NewLoginService creates the login controller
func NewLoginService(
	creds domain.CredentialService,
	sessions domain.SessionStore,
	auth domain.AuthState,
	audit domain.AuditRecorder,
	sessionTTL time.Duration,
) *LoginServiceImpl {
	if sessionTTL <= 0 {
		sessionTTL = domain.DefaultSessionTTL
	}
	return &LoginServiceImpl{
		nav:        domain.NavIdle,
		creds:      creds,
		sessions:   sessions,
		auth:       auth,
		audit:      audit,
		sessionTTL: sessionTTL,
	}
}

// State implements domain.LoginController
func (s *LoginServiceImpl) State() domain.NavState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

// InFlightForm implements domain.LoginController
func (s *LoginServiceImpl) InFlightForm() *domain.LoginForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight == nil {
		return nil
	}
	form := *s.inFlight
	return &form
}

// Submit implements domain.LoginController. Every ending — success,
// rejection, validation failure, unexpected fault, even a panic from a
// collaborator — converges into a LoginOutcome; nothing escapes.
func (s *LoginServiceImpl) Submit(ctx context.Context, form domain.LoginForm) (outcome domain.LoginOutcome) {
	if !s.begin(form) {
		// a submission is already in flight; the submit control should be
		// disabled for the duration, so answer like any unexpected fault
		s.audit.Record(domain.NewAuditEvent(domain.UserLoginFailureEvent).
			WithUser("", form.Email).
			WithError(domain.ErrSubmissionInFlight))
		return domain.LoginOutcome{Kind: domain.OutcomeFailed, Error: domain.MsgLoginRetry}
	}
	defer s.finish()

	defer func() {
		if r := recover(); r != nil {
			s.audit.Record(domain.NewAuditEvent(domain.UserLoginFailureEvent).
				WithUser("", form.Email).
				WithMessage(domain.MsgLoginRetry))
			outcome = domain.LoginOutcome{Kind: domain.OutcomeFailed, Error: domain.MsgLoginRetry}
		}
	}()

	if form.Email == "" || form.Password == "" {
		// short-circuit before the credential check runs
		s.audit.Record(domain.NewAuditEvent(domain.UserLoginFailureEvent).
			WithUser("", form.Email).
			WithError(domain.ErrMissingFields))
		return domain.LoginOutcome{Kind: domain.OutcomeInvalid, Error: domain.MsgFillAllFields}
	}

	user, err := s.creds.Authenticate(ctx, form.Email, form.Password)
	if err != nil {
		s.audit.Record(domain.NewAuditEvent(domain.UserLoginFailureEvent).
			WithUser("", form.Email).
			WithError(err))
		return domain.LoginOutcome{Kind: domain.OutcomeFailed, Error: domain.MsgLoginRetry}
	}

	if user == nil {
		// defensive: auth should already be false after a rejection
		s.auth.Set(false)
		s.audit.Record(domain.NewAuditEvent(domain.UserLoginFailureEvent).
			WithUser("", form.Email).
			WithError(domain.ErrInvalidCredentials))
		return domain.LoginOutcome{Kind: domain.OutcomeRejected, Error: domain.MsgInvalidCredentials}
	}

	// remember-me is captured in the payload but does not change the TTL
	if err := s.sessions.Set(ctx, user.ID, s.sessionTTL); err != nil {
		s.audit.Record(domain.NewAuditEvent(domain.UserLoginFailureEvent).
			WithUser(user.ID, user.Email).
			WithError(err))
		return domain.LoginOutcome{Kind: domain.OutcomeFailed, Error: domain.MsgLoginRetry}
	}

	s.auth.Set(true)
	s.audit.Record(domain.NewAuditEvent(domain.UserLoginEvent).
		WithUser(user.ID, user.Email))

	return domain.LoginOutcome{
		Kind:       domain.OutcomeRedirect,
		RedirectTo: DashboardRoot,
		User:       user,
	}
}

// Logout implements domain.LoginController
func (s *LoginServiceImpl) Logout(ctx context.Context) error {
	userID, _ := s.sessions.UserID(ctx)
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.auth.Set(false)
	s.audit.Record(domain.NewAuditEvent(domain.UserLogoutEvent).WithUser(userID, ""))
	return nil
}

// begin transitions idle -> submitting and retains the payload; reports
// false when a submission is already in flight
func (s *LoginServiceImpl) begin(form domain.LoginForm) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nav == domain.NavSubmitting {
		return false
	}
	s.nav = domain.NavSubmitting
	s.inFlight = &form
	return true
}

// finish returns the machine to idle regardless of how the submission ended
func (s *LoginServiceImpl) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = domain.NavIdle
	s.inFlight = nil
}
