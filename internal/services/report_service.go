package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/WUNDU/backoffice/domain"
)

// ReportServiceImpl aggregates the read-only financial datasets for the
// dashboard and reports pages
type ReportServiceImpl struct {
	transactions []domain.Transaction
	receipts     []domain.Receipt
	bills        []domain.Bill
	budgets      []domain.Budget
	monthly      []domain.MonthlyPoint
}

// NewReportService creates the report service over the given datasets
func NewReportService(
	transactions []domain.Transaction,
	receipts []domain.Receipt,
	bills []domain.Bill,
	budgets []domain.Budget,
	monthly []domain.MonthlyPoint,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		transactions: transactions,
		receipts:     receipts,
		bills:        bills,
		budgets:      budgets,
		monthly:      monthly,
	}
}

// Transactions lists transactions matching the filter
func (s *ReportServiceImpl) Transactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(tx.Category, filter.Category) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// Receipts lists the income receipts
func (s *ReportServiceImpl) Receipts(ctx context.Context) ([]domain.Receipt, error) {
	out := make([]domain.Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out, nil
}

// Expenses lists the expense transactions
func (s *ReportServiceImpl) Expenses(ctx context.Context) ([]domain.Transaction, error) {
	return s.Transactions(ctx, domain.TransactionFilter{Type: domain.TransactionExpense})
}

// Bills lists the upcoming obligations
func (s *ReportServiceImpl) Bills(ctx context.Context) ([]domain.Bill, error) {
	out := make([]domain.Bill, len(s.bills))
	copy(out, s.bills)
	return out, nil
}

// Budgets lists the category allocations
func (s *ReportServiceImpl) Budgets(ctx context.Context) ([]domain.Budget, error) {
	out := make([]domain.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out, nil
}

// Summary aggregates the datasets: per-category totals over the
// transaction set and the monthly series with derived net values
func (s *ReportServiceImpl) Summary(ctx context.Context) (*domain.ReportSummary, error) {
	categories := make(map[string]decimal.Decimal)
	for _, tx := range s.transactions {
		categories[tx.Category] = categories[tx.Category].Add(tx.Amount)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	monthly := make([]domain.MonthlyNet, 0, len(s.monthly))
	for _, m := range s.monthly {
		totalIncome = totalIncome.Add(m.Income)
		totalExpenses = totalExpenses.Add(m.Expense)
		monthly = append(monthly, domain.MonthlyNet{
			MonthlyPoint: m,
			Net:          m.Income.Sub(m.Expense),
		})
	}

	return &domain.ReportSummary{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		NetBalance:       totalIncome.Sub(totalExpenses),
		TransactionCount: len(s.transactions),
		CategoryTotals:   categories,
		Monthly:          monthly,
	}, nil
}
