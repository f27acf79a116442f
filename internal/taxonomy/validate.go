package taxonomy

import (
	"errors"
	"fmt"
	"math"

	"github.com/fingen-dev/fingen/internal/model"
)

// weightTolerance absorbs float rounding in hand-written weight tables.
const weightTolerance = 1e-6

// ErrWeightSum is returned when expense weights do not add up to 1.
var ErrWeightSum = errors.New("expense category weights must sum to 1")

// Validate checks that a taxonomy can drive generation. All problems are
// reported together.
func Validate(tax model.Taxonomy) error {
	var errs []error

	if len(tax.ExpenseCategories) == 0 {
		errs = append(errs, errors.New("no expense categories"))
	}
	if len(tax.IncomeCategories) == 0 {
		errs = append(errs, errors.New("no income categories"))
	}

	seen := make(map[string]string)
	sum := 0.0
	for i, cw := range tax.ExpenseCategories {
		if cw.Name == "" {
			errs = append(errs, fmt.Errorf("expense category %d has no name", i))
			continue
		}
		if prev, dup := seen[cw.Name]; dup {
			errs = append(errs, fmt.Errorf("category %q listed twice (%s, expense)", cw.Name, prev))
		}
		seen[cw.Name] = "expense"
		if cw.Weight < 0 || math.IsNaN(cw.Weight) || math.IsInf(cw.Weight, 0) {
			errs = append(errs, fmt.Errorf("category %q has invalid weight %v", cw.Name, cw.Weight))
			continue
		}
		sum += cw.Weight
	}
	if len(tax.ExpenseCategories) > 0 && math.Abs(sum-1) > weightTolerance {
		errs = append(errs, fmt.Errorf("%w: got %.6f", ErrWeightSum, sum))
	}

	hasSalary := false
	for i, name := range tax.IncomeCategories {
		if name == "" {
			errs = append(errs, fmt.Errorf("income category %d has no name", i))
			continue
		}
		if prev, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("category %q listed twice (%s, income)", name, prev))
		}
		seen[name] = "income"
		if name == SalaryCategory {
			hasSalary = true
		}
	}
	if len(tax.IncomeCategories) > 0 && !hasSalary {
		errs = append(errs, fmt.Errorf("income categories must include %q", SalaryCategory))
	}

	for _, name := range tax.BigTicketCategories {
		if seen[name] != "expense" {
			errs = append(errs, fmt.Errorf("big-ticket category %q is not an expense category", name))
		}
	}
	for name := range tax.Subcategories {
		if _, ok := seen[name]; !ok {
			errs = append(errs, fmt.Errorf("subcategories given for unknown category %q", name))
		}
	}
	for name := range tax.PaymentMethods {
		if _, ok := seen[name]; !ok {
			errs = append(errs, fmt.Errorf("payment methods given for unknown category %q", name))
		}
	}

	return errors.Join(errs...)
}
