package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WUNDU/backoffice/domain"
)

// FinanceHandlers serves the dashboard's read-only financial surfaces
type FinanceHandlers struct {
	reports domain.ReportService
}

// NewFinanceHandlers creates new finance handlers
func NewFinanceHandlers(reports domain.ReportService) *FinanceHandlers {
	return &FinanceHandlers{reports: reports}
}

// Overview serves the dashboard landing payload: summary cards plus the
// short lists the landing page renders.
func (h *FinanceHandlers) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.reports.Summary(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	transactions, err := h.reports.Transactions(ctx, domain.TransactionFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}
	bills, err := h.reports.Bills(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bills"})
		return
	}
	budgets, err := h.reports.Budgets(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load budgets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"summary":             summary,
			"recent_transactions": transactions,
			"upcoming_bills":      bills,
			"budget_progress":     budgets,
		},
	})
}

// Transactions lists financial movements, optionally filtered by the
// type, category and q query parameters.
func (h *FinanceHandlers) Transactions(c *gin.Context) {
	filter := domain.TransactionFilter{
		Type:     domain.TransactionType(c.Query("type")),
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	switch filter.Type {
	case "", domain.TransactionIncome, domain.TransactionExpense, domain.TransactionTransfer:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown transaction type"})
		return
	}

	transactions, err := h.reports.Transactions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": transactions})
}

// Receipts lists income entries with their collection details
func (h *FinanceHandlers) Receipts(c *gin.Context) {
	receipts, err := h.reports.Receipts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load receipts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": receipts})
}

// Expenses lists outgoing movements only
func (h *FinanceHandlers) Expenses(c *gin.Context) {
	expenses, err := h.reports.Expenses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

// ReportSummary serves the aggregated totals for the reports page
func (h *FinanceHandlers) ReportSummary(c *gin.Context) {
	summary, err := h.reports.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// Bills lists upcoming obligations
func (h *FinanceHandlers) Bills(c *gin.Context) {
	bills, err := h.reports.Bills(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bills"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bills})
}

// Budgets lists spend against category allocations
func (h *FinanceHandlers) Budgets(c *gin.Context) {
	budgets, err := h.reports.Budgets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load budgets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": budgets})
}
