// Package synth fabricates transaction records from a taxonomy.
//
// A Generator owns a single seeded random stream. Every draw, including
// record IDs, comes from that stream, so one seed always yields the same ledger.
package synth

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fingen-dev/fingen/internal/id"
	"github.com/fingen-dev/fingen/internal/model"
	"github.com/fingen-dev/fingen/internal/taxonomy"
)

const (
	incomeProbability  = 0.05
	bigTicketThreshold = 500.0
)

var (
	// ErrInvalidCount is returned for a non-positive record count.
	ErrInvalidCount = errors.New("record count must be positive")
	// ErrInvalidWindow is returned when the end date precedes the start date.
	ErrInvalidWindow = errors.New("end date is before start date")
)

// Option configures a Generator.
type Option func(*Generator)

// WithProgress registers fn to be called once per generated record.
func WithProgress(fn func()) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// Generator produces records for one run.
type Generator struct {
	tax *taxonomy.Service
	rng *rand.Rand
	ids *id.Generator

	expense *Weighted[string]
	inflate *Weighted[float64]

	salary      distuv.Normal
	bonus       distuv.Normal
	investment  distuv.Gamma
	otherIncome distuv.Gamma
	expenseBase distuv.Gamma

	progress func()
}

// New creates a Generator for tax seeded with seed.
func New(tax *taxonomy.Service, seed uint64, opts ...Option) (*Generator, error) {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)

	cats := tax.ExpenseCategories()
	names := make([]string, len(cats))
	weights := make([]float64, len(cats))
	for i, cw := range cats {
		names[i] = cw.Name
		weights[i] = cw.Weight
	}
	expense, err := NewWeighted(names, weights, src)
	if err != nil {
		return nil, fmt.Errorf("expense categories: %w", err)
	}
	if len(tax.IncomeCategories()) == 0 {
		return nil, errors.New("no income categories")
	}

	inflate, err := NewWeighted([]float64{1, 2, 4}, []float64{0.7, 0.2, 0.1}, src)
	if err != nil {
		return nil, fmt.Errorf("big-ticket multiplier: %w", err)
	}

	g := &Generator{
		tax:         tax,
		rng:         rand.New(src),
		ids:         id.NewGenerator(src),
		expense:     expense,
		inflate:     inflate,
		salary:      distuv.Normal{Mu: 8000, Sigma: 1500, Src: src},
		bonus:       distuv.Normal{Mu: 5000, Sigma: 3000, Src: src},
		investment:  distuv.Gamma{Alpha: 1.5, Beta: 1.0 / 100, Src: src},
		otherIncome: distuv.Gamma{Alpha: 1, Beta: 1.0 / 50, Src: src},
		expenseBase: distuv.Gamma{Alpha: 2, Beta: 1.0 / 50, Src: src},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns exactly n records dated across [start, end], with salary
// days already overridden.
func (g *Generator) Generate(start, end time.Time, n int) ([]model.Record, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if model.DateOf(end).Before(model.DateOf(start)) {
		return nil, fmt.Errorf("%w: %s < %s", ErrInvalidWindow, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	records := make([]model.Record, 0, n)
	for _, date := range EvenlySpacedDates(start, end, n) {
		rec, err := g.sample(date)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		if g.progress != nil {
			g.progress()
		}
	}

	g.OverrideSalaryDays(records, SalaryDates(start, end))
	return records, nil
}

// OverrideSalaryDays turns every record dated on one of salaryDates into a
// salary income record with a freshly drawn amount, whatever it was before.
// It returns the number of records rewritten.
func (g *Generator) OverrideSalaryDays(records []model.Record, salaryDates []time.Time) int {
	days := make(map[time.Time]struct{}, len(salaryDates))
	for _, d := range salaryDates {
		days[model.DateOf(d)] = struct{}{}
	}

	n := 0
	for i := range records {
		if _, ok := days[model.DateOf(records[i].Date)]; !ok {
			continue
		}
		records[i].IsExpense = false
		records[i].Category = taxonomy.SalaryCategory
		records[i].Description = taxonomy.SalaryDescription
		records[i].PaymentMethod = taxonomy.SalaryPaymentMethod
		records[i].Amount = round2(g.salary.Rand())
		n++
	}
	return n
}

func (g *Generator) sample(date time.Time) (model.Record, error) {
	var (
		category  string
		amount    float64
		isExpense bool
	)

	if g.rng.Float64() < incomeProbability {
		incomes := g.tax.IncomeCategories()
		category = incomes[g.rng.IntN(len(incomes))]
		amount = g.incomeAmount(category)
	} else {
		isExpense = true
		category = g.expense.Pick()
		amount = math.Abs(g.expenseBase.Rand())
		if amount > bigTicketThreshold && g.tax.IsBigTicket(category) {
			amount *= g.inflate.Pick()
		}
	}

	description := g.pick(g.tax.Subcategories(category))
	payment := g.pick(g.tax.PaymentMethods(category))

	recordID, err := g.ids.Next()
	if err != nil {
		return model.Record{}, err
	}

	return model.Record{
		ID:            recordID,
		Amount:        round2(amount),
		Date:          model.DateOf(date),
		Category:      category,
		Description:   description,
		IsExpense:     isExpense,
		PaymentMethod: payment,
	}, nil
}

func (g *Generator) incomeAmount(category string) float64 {
	switch category {
	case taxonomy.SalaryCategory:
		return math.Abs(g.salary.Rand())
	case "Bonus":
		return math.Abs(g.bonus.Rand())
	case "Investment Income":
		return math.Abs(g.investment.Rand())
	default:
		return math.Abs(g.otherIncome.Rand())
	}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}

func round2(x float64) decimal.Decimal {
	return decimal.NewFromFloat(math.Abs(x)).Round(2)
}
