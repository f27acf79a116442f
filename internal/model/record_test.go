package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordKind(t *testing.T) {
	assert.Equal(t, "expense", Record{IsExpense: true}.Kind())
	assert.Equal(t, "income", Record{IsExpense: false}.Kind())
}

func TestTaxonomyIsZero(t *testing.T) {
	assert.True(t, Taxonomy{}.IsZero())
	assert.False(t, Taxonomy{IncomeCategories: []string{"Salary"}}.IsZero())
	assert.False(t, Taxonomy{ExpenseCategories: []CategoryWeight{{Name: "Dining", Weight: 1}}}.IsZero())
}
