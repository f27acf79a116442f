package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one synthesized transaction, a row in transactions.csv.
type Record struct {
	ID            string
	Amount        decimal.Decimal // always >= 0, two decimal places
	Date          time.Time       // UTC midnight
	Category      string
	Description   string
	IsExpense     bool
	PaymentMethod string
}

// Kind returns "expense" or "income".
func (r Record) Kind() string {
	if r.IsExpense {
		return "expense"
	}
	return "income"
}
