// Package datasets holds the static back-office datasets. They stand in
// for the financial systems the dashboard reports on and are consumed
// read-only; only the ticket set is mutated, through the ticket service.
package datasets

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WUNDU/backoffice/domain"
)

// cents builds a monetary amount from centavos
func cents(v int64) decimal.Decimal { return decimal.New(v, -2) }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var monthlySeries = []domain.MonthlyPoint{
	{Month: "Jan", Balance: cents(400000), Income: cents(320000), Expense: cents(260000)},
	{Month: "Fev", Balance: cents(350000), Income: cents(340000), Expense: cents(290000)},
	{Month: "Mar", Balance: cents(420000), Income: cents(310000), Expense: cents(230000)},
	{Month: "Abr", Balance: cents(510000), Income: cents(350000), Expense: cents(250000)},
	{Month: "Mai", Balance: cents(480000), Income: cents(380000), Expense: cents(280000)},
	{Month: "Jun", Balance: cents(550000), Income: cents(420000), Expense: cents(310000)},
	{Month: "Jul", Balance: cents(620000), Income: cents(410000), Expense: cents(295000)},
}

var recentTransactions = []domain.Transaction{
	{
		ID:          uuid.New(),
		Description: "Pagamento fornecedor ABC",
		Category:    "Suprimentos",
		Amount:      cents(-235670),
		Date:        day(2025, time.May, 18),
		Type:        domain.TransactionExpense,
	},
	{
		ID:          uuid.New(),
		Description: "Receita de vendas",
		Category:    "Vendas",
		Amount:      cents(3500000),
		Date:        day(2025, time.May, 12),
		Type:        domain.TransactionIncome,
	},
	{
		ID:          uuid.New(),
		Description: "Serviços TI",
		Category:    "Tecnologia",
		Amount:      cents(-39900),
		Date:        day(2025, time.May, 10),
		Type:        domain.TransactionExpense,
	},
	{
		ID:          uuid.New(),
		Description: "Transferência para reserva",
		Category:    "Transferência",
		Amount:      cents(-500000),
		Date:        day(2025, time.May, 10),
		Type:        domain.TransactionTransfer,
	},
	{
		ID:          uuid.New(),
		Description: "Pagamento cliente XYZ",
		Category:    "Vendas",
		Amount:      cents(950000),
		Date:        day(2025, time.May, 8),
		Type:        domain.TransactionIncome,
	},
}

var receipts = []domain.Receipt{
	{
		Transaction: domain.Transaction{
			ID:          uuid.New(),
			Description: "Receita de vendas",
			Category:    "Vendas",
			Amount:      cents(3500000),
			Date:        day(2025, time.May, 12),
			Type:        domain.TransactionIncome,
		},
		Source:        "Vendas",
		PaymentMethod: "Transferência Bancária",
		Status:        domain.ReceiptCompleted,
	},
	{
		Transaction: domain.Transaction{
			ID:          uuid.New(),
			Description: "Pagamento cliente XYZ",
			Category:    "Vendas",
			Amount:      cents(950000),
			Date:        day(2025, time.May, 8),
			Type:        domain.TransactionIncome,
		},
		Source:        "Vendas",
		PaymentMethod: "Cartão",
		Status:        domain.ReceiptCompleted,
	},
	{
		Transaction: domain.Transaction{
			ID:          uuid.New(),
			Description: "Consultoria financeira",
			Category:    "Serviços",
			Amount:      cents(420000),
			Date:        day(2025, time.May, 5),
			Type:        domain.TransactionIncome,
		},
		Source:        "Freelance",
		PaymentMethod: "Transferência Bancária",
		Status:        domain.ReceiptPending,
	},
	{
		Transaction: domain.Transaction{
			ID:          uuid.New(),
			Description: "Rendimento de aplicação",
			Category:    "Investimentos",
			Amount:      cents(87500),
			Date:        day(2025, time.May, 2),
			Type:        domain.TransactionIncome,
		},
		Source:        "Investimento",
		PaymentMethod: "Transferência Bancária",
		Status:        domain.ReceiptCompleted,
	},
}

var upcomingBills = []domain.Bill{
	{
		ID:          uuid.New(),
		Description: "Aluguel escritório",
		Amount:      cents(1200000),
		DueDate:     day(2025, time.May, 25),
		IsPaid:      false,
		IsRecurring: true,
	},
	{
		ID:          uuid.New(),
		Description: "Internet corporativa",
		Amount:      cents(99900),
		DueDate:     day(2025, time.May, 27),
		IsPaid:      false,
		IsRecurring: true,
	},
	{
		ID:          uuid.New(),
		Description: "Energia elétrica",
		Amount:      cents(187450),
		DueDate:     day(2025, time.May, 30),
		IsPaid:      false,
		IsRecurring: true,
	},
}

var budgetProgress = []domain.Budget{
	{ID: uuid.New(), Category: "Marketing", Budgeted: cents(800000), Current: cents(450000)},
	{ID: uuid.New(), Category: "Infraestrutura", Budgeted: cents(400000), Current: cents(352000)},
	{ID: uuid.New(), Category: "Desenvolvimento", Budgeted: cents(300000), Current: cents(150000)},
}

// MonthlySeries returns the annual financial performance series
func MonthlySeries() []domain.MonthlyPoint {
	out := make([]domain.MonthlyPoint, len(monthlySeries))
	copy(out, monthlySeries)
	return out
}

// RecentTransactions returns the recent transaction set
func RecentTransactions() []domain.Transaction {
	out := make([]domain.Transaction, len(recentTransactions))
	copy(out, recentTransactions)
	return out
}

// Receipts returns the income receipts set
func Receipts() []domain.Receipt {
	out := make([]domain.Receipt, len(receipts))
	copy(out, receipts)
	return out
}

// UpcomingBills returns the upcoming obligations
func UpcomingBills() []domain.Bill {
	out := make([]domain.Bill, len(upcomingBills))
	copy(out, upcomingBills)
	return out
}

// BudgetProgress returns the category budget allocations
func BudgetProgress() []domain.Budget {
	out := make([]domain.Budget, len(budgetProgress))
	copy(out, budgetProgress)
	return out
}
