package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fingen-dev/fingen/internal/model"
	"github.com/fingen-dev/fingen/internal/taxonomy"
)

const (
	// DefaultSeed makes a fresh project reproducible out of the box.
	DefaultSeed uint64 = 42
	// DefaultNumRecords averages a little over two transactions a day.
	DefaultNumRecords = 800
	// DefaultOutput is where generate writes when nothing else is configured.
	DefaultOutput = "data/transactions.csv"
	// DefaultWindowDays is the window length used when a date is omitted.
	DefaultWindowDays = 365

	dateFormat = "2006-01-02"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the top-level fingen.yaml configuration.
type Config struct {
	Seed       *uint64        `yaml:"seed,omitempty"` // nil = draw a random seed
	NumRecords int            `yaml:"num_records" validate:"gt=0"`
	StartDate  string         `yaml:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string         `yaml:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Output     string         `yaml:"output" validate:"required"`
	Taxonomy   model.Taxonomy `yaml:"taxonomy,omitempty"`
}

// Load reads a fingen.yaml file from disk. An omitted num_records, taxonomy
// or output falls back to the defaults; an explicit num_records of 0 is kept
// so Validate can reject it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Config{NumRecords: DefaultNumRecords}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Taxonomy.IsZero() {
		cfg.Taxonomy = taxonomy.Default()
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the window pinned to the DefaultWindowDays
// ending on now's date.
func Default(now time.Time) *Config {
	seed := DefaultSeed
	end := today(now)
	return &Config{
		Seed:       &seed,
		NumRecords: DefaultNumRecords,
		StartDate:  end.AddDate(0, 0, -DefaultWindowDays).Format(dateFormat),
		EndDate:    end.Format(dateFormat),
		Output:     DefaultOutput,
		Taxonomy:   taxonomy.Default(),
	}
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error

	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			errs = append(errs, fieldError(fe))
		}
	}

	if len(errs) == 0 {
		if _, _, err := c.Window(time.Now()); err != nil {
			errs = append(errs, err)
		}
	}

	if err := taxonomy.Validate(c.Taxonomy); err != nil {
		errs = append(errs, fmt.Errorf("taxonomy: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// WindowPinned reports whether the config fixes at least one window date.
// An unpinned window moves with the current date.
func (c *Config) WindowPinned() bool {
	return c.StartDate != "" || c.EndDate != ""
}

// Window resolves the generation window. Omitted dates are filled in from
// the other end, or from now, using DefaultWindowDays.
func (c *Config) Window(now time.Time) (start, end time.Time, err error) {
	switch {
	case c.StartDate == "" && c.EndDate == "":
		end = today(now)
		start = end.AddDate(0, 0, -DefaultWindowDays)
	case c.StartDate == "":
		if end, err = parseDate("end_date", c.EndDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = end.AddDate(0, 0, -DefaultWindowDays)
	case c.EndDate == "":
		if start, err = parseDate("start_date", c.StartDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = start.AddDate(0, 0, DefaultWindowDays)
	default:
		if start, err = parseDate("start_date", c.StartDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
		if end, err = parseDate("end_date", c.EndDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s is before start_date %s", end.Format(dateFormat), start.Format(dateFormat))
	}
	return start, end, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	return t, nil
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "gt":
		return fmt.Errorf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "datetime":
		return fmt.Errorf("%s must be a date like %s, got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s failed %q validation", fe.Field(), fe.Tag())
	}
}
