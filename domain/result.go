package domain

import "strings"

// OutcomeKind converges the three endings of an asynchronous submission
// (success, expected rejection, unexpected failure) plus the pre-flight
// validation short-circuit into one tagged result.
type OutcomeKind string

const (
	// OutcomeRedirect is a successful login; RedirectTo carries the target.
	OutcomeRedirect OutcomeKind = "redirect"
	// OutcomeInvalid is a validation failure detected before the credential
	// check runs.
	OutcomeInvalid OutcomeKind = "invalid"
	// OutcomeRejected is an authentication rejection (wrong credentials).
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomeFailed is an unexpected failure during submission.
	OutcomeFailed OutcomeKind = "failed"
)

// LoginOutcome is the single result value of a form submission. Nothing on
// the submission path propagates as a panic or unhandled error; every
// ending is converted into one of these.
type LoginOutcome struct {
	Kind       OutcomeKind
	RedirectTo string
	Error      string
	User       *User
}

// FieldErrors marks which login fields a message applies to, for the view
// layer to highlight. Global always carries the original message.
type FieldErrors struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Global   string `json:"global"`
}

// ClassifyAuthError maps an error message to field markings: a message
// mentioning "email" or "credenciais" marks both fields, one mentioning
// "senha" marks only the password, anything else stays global-only.
func ClassifyAuthError(msg string) FieldErrors {
	fe := FieldErrors{Global: msg}
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "email") || strings.Contains(lower, "credenciais"):
		fe.Email = "Email ou senha inválidos."
		fe.Password = "Email ou senha inválidos."
	case strings.Contains(lower, "senha"):
		fe.Password = "Senha inválida."
	}
	return fe
}
