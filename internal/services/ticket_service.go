package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/WUNDU/backoffice/domain"
)

// TicketServiceImpl implements domain.TicketService over an in-memory
// ticket set. Status updates mutate the set and stamp the ticket.
type TicketServiceImpl struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
	now     func() time.Time
}

// NewTicketService seeds the service with the given tickets
func NewTicketService(tickets []domain.Ticket) *TicketServiceImpl {
	return &TicketServiceImpl{tickets: tickets, now: time.Now}
}

// List implements domain.TicketService. The search term matches subject,
// requester and id, case-insensitively.
func (s *TicketServiceImpl) List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, tk := range s.tickets {
		if filter.Status != "" && tk.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(tk.Subject), search) &&
			!strings.Contains(strings.ToLower(tk.Requester), search) &&
			!strings.Contains(strings.ToLower(tk.ID), search) {
			continue
		}
		out = append(out, tk)
	}
	return out, nil
}

// UpdateStatus implements domain.TicketService
func (s *TicketServiceImpl) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !domain.ValidTicketStatus(status) {
		return nil, domain.ErrInvalidTicketStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Status = status
			s.tickets[i].LastUpdate = s.now()
			tk := s.tickets[i]
			return &tk, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}
