package model

// CategoryWeight pairs an expense category with its selection weight.
type CategoryWeight struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// Taxonomy describes the categories a ledger may contain and how each is sampled.
//
// ExpenseCategories is ordered so that a seeded run always walks the table the
// same way. Subcategories and PaymentMethods may omit categories; lookups fall
// back to the category name and "Cash" respectively.
type Taxonomy struct {
	ExpenseCategories   []CategoryWeight    `yaml:"expense_categories"`
	IncomeCategories    []string            `yaml:"income_categories"`
	BigTicketCategories []string            `yaml:"big_ticket_categories,omitempty"`
	Subcategories       map[string][]string `yaml:"subcategories,omitempty"`
	PaymentMethods      map[string][]string `yaml:"payment_methods,omitempty"`
}

// IsZero reports whether no categories are configured at all.
func (t Taxonomy) IsZero() bool {
	return len(t.ExpenseCategories) == 0 && len(t.IncomeCategories) == 0
}
