package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents an operator of the back-office
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginForm represents the captured login form payload
type LoginForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// Session represents the persisted session pair: an opaque token (the user
// id) and its expiry in milliseconds since epoch. A session whose expiry has
// passed is never treated as valid. Sessions are never renewed in place;
// renewal means writing a new pair.
type Session struct {
	UserID    string
	ExpiresAt int64
	CreatedAt time.Time
}

// DefaultSessionTTL is applied when no explicit expiry is requested.
// remember-me is captured in the form payload but does not change it.
const DefaultSessionTTL = 60 * time.Minute

// NavState tracks whether a form submission is in flight
type NavState string

const (
	NavIdle       NavState = "idle"
	NavSubmitting NavState = "submitting"
	// NavLoading exists in the state space but the login flow never enters it.
	NavLoading NavState = "loading"
)

// TransactionType classifies a financial movement
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction represents a financial movement in the back-office datasets.
// Amounts are signed: expenses and outgoing transfers are negative.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
}

// ReceiptStatus mirrors the back-office receipt lifecycle
type ReceiptStatus string

const (
	ReceiptPending   ReceiptStatus = "Pendente"
	ReceiptCompleted ReceiptStatus = "Concluído"
	ReceiptCancelled ReceiptStatus = "Cancelado"
)

// Receipt is an income transaction enriched with collection details
type Receipt struct {
	Transaction
	Source        string        `json:"source"`
	PaymentMethod string        `json:"payment_method"`
	Status        ReceiptStatus `json:"status"`
}

// Bill represents an upcoming obligation
type Bill struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	IsPaid      bool            `json:"is_paid"`
	IsRecurring bool            `json:"is_recurring"`
}

// Budget tracks spend against a category allocation
type Budget struct {
	ID       uuid.UUID       `json:"id"`
	Category string          `json:"category"`
	Budgeted decimal.Decimal `json:"budgeted"`
	Current  decimal.Decimal `json:"current"`
}

// MonthlyPoint is one month of the financial performance series
type MonthlyPoint struct {
	Month   string          `json:"month"`
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyNet extends a monthly point with the derived net value
type MonthlyNet struct {
	MonthlyPoint
	Net decimal.Decimal `json:"net"`
}

// ReportSummary aggregates the datasets for the reports page
type ReportSummary struct {
	TotalIncome      decimal.Decimal            `json:"total_income"`
	TotalExpenses    decimal.Decimal            `json:"total_expenses"`
	NetBalance       decimal.Decimal            `json:"net_balance"`
	TransactionCount int                        `json:"transaction_count"`
	CategoryTotals   map[string]decimal.Decimal `json:"category_totals"`
	Monthly          []MonthlyNet               `json:"monthly"`
}

// TicketStatus is the support ticket lifecycle
type TicketStatus string

const (
	TicketOpen    TicketStatus = "open"
	TicketPending TicketStatus = "pending"
	TicketClosed  TicketStatus = "closed"
)

// ValidTicketStatus reports whether s is one of the known lifecycle states
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketOpen, TicketPending, TicketClosed:
		return true
	}
	return false
}

// TicketPriority orders support tickets for triage
type TicketPriority string

const (
	TicketLow    TicketPriority = "low"
	TicketMedium TicketPriority = "medium"
	TicketHigh   TicketPriority = "high"
)

// Ticket represents a support request handled through the back-office
type Ticket struct {
	ID         string         `json:"id"`
	Subject    string         `json:"subject"`
	Requester  string         `json:"requester"`
	Status     TicketStatus   `json:"status"`
	Priority   TicketPriority `json:"priority"`
	CreatedAt  time.Time      `json:"created_at"`
	LastUpdate time.Time      `json:"last_update"`
}

// TicketFilter narrows ticket listings. Zero values match everything.
type TicketFilter struct {
	Status TicketStatus
	Search string
}

// TransactionFilter narrows transaction listings. Zero values match everything.
type TransactionFilter struct {
	Type     TransactionType
	Category string
	Search   string
}
