package analytics

import (
	"github.com/odyssey-erp/billdesk/internal/expenses"
)

type ExpenseSummary struct {
	Count             int                        `json:"count"`
	Total             float64                    `json:"total"`
	ReimbursableTotal float64                    `json:"reimbursable_total"`
	ByCategory        []expenses.CategorySummary `json:"by_category"`
}

func SummarizeExpenses(rows []expenses.Expense) ExpenseSummary {
	summary := ExpenseSummary{Count: len(rows)}
	for _, e := range rows {
		summary.Total += e.Amount
		if e.IsReimbursable {
			summary.ReimbursableTotal += e.Amount
		}
	}
	summary.ByCategory = expenses.SortedCategoryTotals(expenses.TotalsByCategory(rows))
	return summary
}
