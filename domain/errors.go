package domain

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("email and password are required")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrUserNotFound       = errors.New("user not found")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)

// Ticket errors
var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
)

// User-facing login messages. The field classifier in result.go keys off
// their wording, so they are fixed here rather than in the view layer.
const (
	MsgFillAllFields      = "Por favor, preencha todos os campos"
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgLoginRetry         = "Erro ao fazer login. Tente novamente."
)
