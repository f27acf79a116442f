package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fingen-dev/fingen/internal/model"
	"github.com/fingen-dev/fingen/internal/taxonomy"
)

var now = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestRoundTrip(t *testing.T) {
	cfg := Default(now)

	path := filepath.Join(t.TempDir(), "fingen.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, got.Seed)
	assert.Equal(t, *cfg.Seed, *got.Seed)
	assert.Equal(t, cfg.NumRecords, got.NumRecords)
	assert.Equal(t, cfg.StartDate, got.StartDate)
	assert.Equal(t, cfg.EndDate, got.EndDate)
	assert.Equal(t, cfg.Output, got.Output)
	assert.Equal(t, cfg.Taxonomy, got.Taxonomy)
}

func TestDefaults(t *testing.T) {
	cfg := Default(now)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, 800, cfg.NumRecords)
	assert.Equal(t, "2025-10-19", cfg.StartDate)
	assert.Equal(t, "2026-10-19", cfg.EndDate)
	assert.Equal(t, "data/transactions.csv", cfg.Output)
	assert.Equal(t, taxonomy.Default(), cfg.Taxonomy)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMinimal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_records: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, 10, cfg.NumRecords)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, taxonomy.Default(), cfg.Taxonomy)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaultsNumRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(1), *cfg.Seed)
	assert.Equal(t, DefaultNumRecords, cfg.NumRecords)
	assert.NoError(t, cfg.Validate())
}

func TestLoadExplicitZeroRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_records: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.NumRecords)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_records must be greater than 0")
}

func TestLoadCustomTaxonomy(t *testing.T) {
	yml := `seed: 7
num_records: 10
start_date: "2025-01-01"
end_date: "2025-12-31"
output: out.csv
taxonomy:
  expense_categories:
    - name: Groceries
      weight: 1.0
  income_categories: [Salary]
`
	path := filepath.Join(t.TempDir(), "fingen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Equal(t, []model.CategoryWeight{{Name: "Groceries", Weight: 1.0}}, cfg.Taxonomy.ExpenseCategories)
	assert.Equal(t, []string{"Salary"}, cfg.Taxonomy.IncomeCategories)
	assert.Empty(t, cfg.Taxonomy.Subcategories)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_records: [oops\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingen.yaml")
	require.NoError(t, Save(path, Default(now)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "seed: 42")
	assert.Contains(t, contents, "num_records: 800")
	assert.Contains(t, contents, "output: data/transactions.csv")
	assert.Contains(t, contents, "expense_categories:")
	assert.Contains(t, contents, "big_ticket_categories:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero records", func(c *Config) { c.NumRecords = 0 }, "num_records must be greater than 0"},
		{"negative records", func(c *Config) { c.NumRecords = -3 }, "num_records must be greater than 0"},
		{"no output", func(c *Config) { c.Output = "" }, "output is required"},
		{"bad start", func(c *Config) { c.StartDate = "01/02/2025" }, "start_date must be a date"},
		{"reversed window", func(c *Config) {
			c.StartDate = "2025-12-31"
			c.EndDate = "2025-01-01"
		}, "is before start_date"},
		{"weights", func(c *Config) { c.Taxonomy.ExpenseCategories[0].Weight = 0.5 }, "must sum to 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(now)
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWindowPinned(t *testing.T) {
	assert.True(t, Default(now).WindowPinned())
	assert.True(t, (&Config{StartDate: "2025-01-01"}).WindowPinned())
	assert.True(t, (&Config{EndDate: "2025-12-31"}).WindowPinned())
	assert.False(t, (&Config{}).WindowPinned())
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{"both", "2025-01-01", "2025-12-31", date(2025, 1, 1), date(2025, 12, 31)},
		{"neither", "", "", date(2025, 10, 19), date(2026, 10, 19)},
		{"start only", "2025-01-01", "", date(2025, 1, 1), date(2026, 1, 1)},
		{"end only", "", "2025-12-31", date(2024, 12, 31), date(2025, 12, 31)},
		{"single day", "2025-06-10", "2025-06-10", date(2025, 6, 10), date(2025, 6, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{StartDate: tt.start, EndDate: tt.end}
			start, end, err := cfg.Window(now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestWindow_Errors(t *testing.T) {
	_, _, err := (&Config{StartDate: "2025-02-30"}).Window(now)
	assert.ErrorContains(t, err, "parsing start_date")

	_, _, err = (&Config{StartDate: "2025-03-01", EndDate: "2025-02-01"}).Window(now)
	assert.ErrorContains(t, err, "before start_date")
}
