package ledger

import (
	"fmt"
	"time"

	"github.com/fingen-dev/fingen/internal/id"
	"github.com/fingen-dev/fingen/internal/model"
	"github.com/fingen-dev/fingen/internal/taxonomy"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Row         int // 1-based file row; the header is row 1
	RecordID    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [row %d %s]: %s", e.Invariant, e.Row, e.RecordID, e.Description)
}

// CategoryChecker tests category membership in a taxonomy.
type CategoryChecker interface {
	Exists(name string) bool
	IsExpense(name string) bool
}

// ValidateRecords enforces 6 invariants on a generated ledger. A zero start
// or end leaves that side of the window unchecked.
func ValidateRecords(records []model.Record, cats CategoryChecker, start, end time.Time) []ValidationError {
	var errs []ValidationError
	if !start.IsZero() {
		start = model.DateOf(start)
	}
	if !end.IsZero() {
		end = model.DateOf(end)
	}

	seen := make(map[string]int, len(records))
	for i, rec := range records {
		row := i + 2
		fail := func(inv int, format string, args ...any) {
			errs = append(errs, ValidationError{
				Invariant:   inv,
				Row:         row,
				RecordID:    rec.ID,
				Description: fmt.Sprintf(format, args...),
			})
		}

		// Invariant 1: Category belongs to the taxonomy.
		known := cats.Exists(rec.Category)
		if !known {
			fail(1, "unknown category %q", rec.Category)
		}

		// Invariant 2: Expense flag matches the category's kind.
		if known && cats.IsExpense(rec.Category) != rec.IsExpense {
			fail(2, "%s record in %s category %q", rec.Kind(), kindOf(cats.IsExpense(rec.Category)), rec.Category)
		}

		// Invariant 3: Non-negative amount with at most 2 decimal places.
		if rec.Amount.IsNegative() {
			fail(3, "negative amount %s", rec.Amount)
		}
		if !rec.Amount.Equal(rec.Amount.Truncate(2)) {
			fail(3, "amount %s has more than 2 decimal places", rec.Amount)
		}

		// Invariant 4: Date within the generation window.
		d := model.DateOf(rec.Date)
		if (!start.IsZero() && d.Before(start)) || (!end.IsZero() && d.After(end)) {
			fail(4, "date %s outside %s..%s", d.Format(dateFormat), start.Format(dateFormat), end.Format(dateFormat))
		}

		// Invariant 5: Salary days are salary income.
		if d.Day() == model.SalaryDay && (rec.IsExpense || rec.Category != taxonomy.SalaryCategory) {
			fail(5, "salary day %s holds %s record %q", d.Format(dateFormat), rec.Kind(), rec.Category)
		}

		// Invariant 6: Well-formed, unique IDs.
		if !id.Valid(rec.ID) {
			fail(6, "invalid id %q", rec.ID)
		} else if prev, dup := seen[rec.ID]; dup {
			fail(6, "duplicate id, first seen at row %d", prev)
		} else {
			seen[rec.ID] = row
		}
	}
	return errs
}

func kindOf(isExpense bool) string {
	if isExpense {
		return "expense"
	}
	return "income"
}
