package taxonomy

import "github.com/fingen-dev/fingen/internal/model"

const (
	// SalaryCategory is the income category that salary days are forced into.
	SalaryCategory = "Salary"
	// SalaryDescription labels salary-day records.
	SalaryDescription = "Monthly Salary"
	// SalaryPaymentMethod is the payment method of salary-day records.
	SalaryPaymentMethod = "Bank Transfer"
	// DefaultPaymentMethod is used when a category has no payment-method pool.
	DefaultPaymentMethod = "Cash"
)

// Service provides in-memory lookup over a taxonomy.
type Service struct {
	tax       model.Taxonomy
	expense   map[string]bool
	income    map[string]bool
	bigTicket map[string]bool
}

// NewService creates a Service from a taxonomy. It does not validate; call
// Validate first when the taxonomy comes from user input.
func NewService(tax model.Taxonomy) *Service {
	s := &Service{
		tax:       tax,
		expense:   make(map[string]bool, len(tax.ExpenseCategories)),
		income:    make(map[string]bool, len(tax.IncomeCategories)),
		bigTicket: make(map[string]bool, len(tax.BigTicketCategories)),
	}
	for _, cw := range tax.ExpenseCategories {
		s.expense[cw.Name] = true
	}
	for _, name := range tax.IncomeCategories {
		s.income[name] = true
	}
	for _, name := range tax.BigTicketCategories {
		s.bigTicket[name] = true
	}
	return s
}

// Taxonomy returns the underlying taxonomy.
func (s *Service) Taxonomy() model.Taxonomy {
	return s.tax
}

// ExpenseCategories returns the weighted expense table in configured order.
func (s *Service) ExpenseCategories() []model.CategoryWeight {
	return s.tax.ExpenseCategories
}

// IncomeCategories returns the income categories in configured order.
func (s *Service) IncomeCategories() []string {
	return s.tax.IncomeCategories
}

// Exists reports whether name is an expense or income category.
func (s *Service) Exists(name string) bool {
	return s.expense[name] || s.income[name]
}

// IsExpense reports whether name is an expense category.
func (s *Service) IsExpense(name string) bool {
	return s.expense[name]
}

// IsIncome reports whether name is an income category.
func (s *Service) IsIncome(name string) bool {
	return s.income[name]
}

// IsBigTicket reports whether large amounts in category name get inflated.
func (s *Service) IsBigTicket(name string) bool {
	return s.bigTicket[name]
}

// Subcategories returns the sub-category pool for a category. The result is
// never empty: a category without a pool yields itself.
func (s *Service) Subcategories(category string) []string {
	if pool := s.tax.Subcategories[category]; len(pool) > 0 {
		return pool
	}
	return []string{category}
}

// PaymentMethods returns the payment-method pool for a category, or
// DefaultPaymentMethod alone when none is configured.
func (s *Service) PaymentMethods(category string) []string {
	if pool := s.tax.PaymentMethods[category]; len(pool) > 0 {
		return pool
	}
	return []string{DefaultPaymentMethod}
}
