package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fingen-dev/fingen/internal/model"
)

func minimal() model.Taxonomy {
	return model.Taxonomy{
		ExpenseCategories: []model.CategoryWeight{{Name: "Dining", Weight: 1.0}},
		IncomeCategories:  []string{SalaryCategory},
	}
}

func TestValidate_Minimal(t *testing.T) {
	require.NoError(t, Validate(minimal()))
}

func TestValidate_WeightSum(t *testing.T) {
	tax := minimal()
	tax.ExpenseCategories = []model.CategoryWeight{
		{Name: "Dining", Weight: 0.5},
		{Name: "Transport", Weight: 0.4},
	}

	err := Validate(tax)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWeightSum)
	assert.Contains(t, err.Error(), "0.900000")
}

func TestValidate_WeightTolerance(t *testing.T) {
	tax := minimal()
	tax.ExpenseCategories = []model.CategoryWeight{
		{Name: "A", Weight: 0.1},
		{Name: "B", Weight: 0.2},
		{Name: "C", Weight: 0.7},
	}
	assert.NoError(t, Validate(tax))
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Taxonomy)
		want   string
	}{
		{"no expense", func(tx *model.Taxonomy) { tx.ExpenseCategories = nil }, "no expense categories"},
		{"no income", func(tx *model.Taxonomy) { tx.IncomeCategories = nil }, "no income categories"},
		{"missing salary", func(tx *model.Taxonomy) { tx.IncomeCategories = []string{"Bonus"} }, `must include "Salary"`},
		{"empty name", func(tx *model.Taxonomy) {
			tx.ExpenseCategories = append(tx.ExpenseCategories, model.CategoryWeight{Weight: 0})
		}, "has no name"},
		{"negative weight", func(tx *model.Taxonomy) {
			tx.ExpenseCategories = []model.CategoryWeight{{Name: "A", Weight: 1.5}, {Name: "B", Weight: -0.5}}
		}, "invalid weight"},
		{"duplicate across kinds", func(tx *model.Taxonomy) {
			tx.IncomeCategories = append(tx.IncomeCategories, "Dining")
		}, `"Dining" listed twice`},
		{"big-ticket unknown", func(tx *model.Taxonomy) { tx.BigTicketCategories = []string{"Yachts"} }, "big-ticket"},
		{"big-ticket income", func(tx *model.Taxonomy) { tx.BigTicketCategories = []string{SalaryCategory} }, "big-ticket"},
		{"subcategory typo", func(tx *model.Taxonomy) {
			tx.Subcategories = map[string][]string{"Dinning": {"Lunch"}}
		}, `unknown category "Dinning"`},
		{"payment typo", func(tx *model.Taxonomy) {
			tx.PaymentMethods = map[string][]string{"Salry": {"Cash"}}
		}, `unknown category "Salry"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := minimal()
			tt.mutate(&tax)
			err := Validate(tax)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_EmptyPoolsAllowed(t *testing.T) {
	tax := minimal()
	tax.Subcategories = map[string][]string{"Dining": {}}
	tax.PaymentMethods = map[string][]string{SalaryCategory: nil}
	assert.NoError(t, Validate(tax))
}
