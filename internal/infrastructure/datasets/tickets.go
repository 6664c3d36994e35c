package datasets

import (
	"time"

	"github.com/WUNDU/backoffice/domain"
)

func stamp(year int, month time.Month, d, hour, min int) time.Time {
	return time.Date(year, month, d, hour, min, 0, 0, time.UTC)
}

var tickets = []domain.Ticket{
	{
		ID:         "TKT001",
		Subject:    "Problema ao aceder relatórios financeiros",
		Requester:  "joao.s@example.com",
		Status:     domain.TicketOpen,
		Priority:   domain.TicketHigh,
		CreatedAt:  stamp(2025, time.May, 20, 14, 30),
		LastUpdate: stamp(2025, time.May, 22, 9, 0),
	},
	{
		ID:         "TKT002",
		Subject:    "Erro na importação de dados de transação",
		Requester:  "maria.s@example.com",
		Status:     domain.TicketOpen,
		Priority:   domain.TicketHigh,
		CreatedAt:  stamp(2025, time.May, 21, 10, 0),
		LastUpdate: stamp(2025, time.May, 21, 16, 0),
	},
	{
		ID:         "TKT003",
		Subject:    "Dúvida sobre permissões de usuário",
		Requester:  "pedro.c@example.com",
		Status:     domain.TicketClosed,
		Priority:   domain.TicketMedium,
		CreatedAt:  stamp(2025, time.May, 18, 11, 45),
		LastUpdate: stamp(2025, time.May, 19, 10, 0),
	},
	{
		ID:         "TKT004",
		Subject:    "Solicitação de nova funcionalidade de relatório",
		Requester:  "ana.p@example.com",
		Status:     domain.TicketOpen,
		Priority:   domain.TicketLow,
		CreatedAt:  stamp(2025, time.May, 22, 8, 10),
		LastUpdate: stamp(2025, time.May, 22, 8, 10),
	},
	{
		ID:         "TKT005",
		Subject:    "Problema de acesso ao dashboard móvel",
		Requester:  "carlos.l@example.com",
		Status:     domain.TicketPending,
		Priority:   domain.TicketMedium,
		CreatedAt:  stamp(2025, time.May, 19, 17, 0),
		LastUpdate: stamp(2025, time.May, 20, 14, 0),
	},
	{
		ID:         "TKT006",
		Subject:    "Erro na geração de recibos",
		Requester:  "joana.m@example.com",
		Status:     domain.TicketOpen,
		Priority:   domain.TicketHigh,
		CreatedAt:  stamp(2025, time.May, 22, 11, 20),
		LastUpdate: stamp(2025, time.May, 22, 11, 20),
	},
	{
		ID:         "TKT007",
		Subject:    "Relatório de bug: filtro de data não funciona",
		Requester:  "rui.g@example.com",
		Status:     domain.TicketClosed,
		Priority:   domain.TicketHigh,
		CreatedAt:  stamp(2025, time.May, 15, 9, 0),
		LastUpdate: stamp(2025, time.May, 17, 15, 30),
	},
}

// Tickets returns the seed support ticket set
func Tickets() []domain.Ticket {
	out := make([]domain.Ticket, len(tickets))
	copy(out, tickets)
	return out
}
