package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fingen-dev/fingen/internal/model"
	"github.com/fingen-dev/fingen/internal/taxonomy"
)

// Summary holds row counts and totals for a ledger.
type Summary struct {
	Records      int
	Expenses     int
	Income       int
	Salary       int
	ExpenseTotal decimal.Decimal
	IncomeTotal  decimal.Decimal
	First        time.Time
	Last         time.Time
}

// Summarize tallies records.
func Summarize(records []model.Record) Summary {
	s := Summary{Records: len(records)}
	for i, rec := range records {
		if rec.IsExpense {
			s.Expenses++
			s.ExpenseTotal = s.ExpenseTotal.Add(rec.Amount)
		} else {
			s.Income++
			s.IncomeTotal = s.IncomeTotal.Add(rec.Amount)
			if rec.Category == taxonomy.SalaryCategory {
				s.Salary++
			}
		}
		if i == 0 || rec.Date.Before(s.First) {
			s.First = rec.Date
		}
		if i == 0 || rec.Date.After(s.Last) {
			s.Last = rec.Date
		}
	}
	return s
}
