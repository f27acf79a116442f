package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fingen-dev/fingen/internal/config"
	"github.com/fingen-dev/fingen/internal/ledger"
	"github.com/fingen-dev/fingen/internal/logging"
	"github.com/fingen-dev/fingen/internal/synth"
	"github.com/fingen-dev/fingen/internal/taxonomy"
)

type generateOptions struct {
	configPath string
	output     string
	seed       *uint64
	records    *int
	progress   bool
}

func newGenerateCommand() *cobra.Command {
	var opts generateOptions
	var seed uint64
	var records int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic transaction ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				opts.seed = &seed
			}
			if cmd.Flags().Changed("records") {
				opts.records = &records
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to fingen.yaml (built-in defaults when empty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output CSV path (overrides config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (overrides config)")
	cmd.Flags().IntVar(&records, "records", 0, "number of records (overrides config)")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "show a progress bar on stderr")

	return cmd
}

func runGenerate(ctx context.Context, stdout, stderr io.Writer, opts generateOptions) error {
	log := logging.FromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.seed != nil {
		cfg.Seed = opts.seed
	}
	if opts.records != nil {
		cfg.NumRecords = *opts.records
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	start, end, err := cfg.Window(time.Now())
	if err != nil {
		return err
	}

	var seed uint64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = rand.Uint64()
		log.Info().Uint64("seed", seed).Msg("no seed configured, drew a random one")
	}

	var genOpts []synth.Option
	if opts.progress {
		bar := newProgressBar(stderr, cfg.NumRecords, "generating records")
		genOpts = append(genOpts, synth.WithProgress(func() {
			if err := bar.Add(1); err != nil {
				log.Warn().Err(err).Msg("failed to update progress bar")
			}
		}))
	}

	gen, err := synth.New(taxonomy.NewService(cfg.Taxonomy), seed, genOpts...)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	log.Debug().
		Uint64("seed", seed).
		Int("records", cfg.NumRecords).
		Str("start", start.Format(time.DateOnly)).
		Str("end", end.Format(time.DateOnly)).
		Msg("generating")

	records, err := gen.Generate(start, end, cfg.NumRecords)
	if err != nil {
		return fmt.Errorf("generating records: %w", err)
	}

	if err := ledger.Save(cfg.Output, records); err != nil {
		return err
	}

	sum := ledger.Summarize(records)
	log.Info().
		Uint64("seed", seed).
		Int("records", sum.Records).
		Int("expenses", sum.Expenses).
		Int("income", sum.Income).
		Int("salary", sum.Salary).
		Str("expense_total", sum.ExpenseTotal.StringFixed(2)).
		Str("income_total", sum.IncomeTotal.StringFixed(2)).
		Str("output", cfg.Output).
		Msg("ledger generated")

	fmt.Fprintf(stdout, "Generated %d records to %s\n", len(records), cfg.Output)
	return nil
}

// loadConfig reads path, or returns the defaults when path is empty. A
// relative output in a config file is taken relative to that file.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(time.Now()), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(filepath.Dir(path), cfg.Output)
	}
	return cfg, nil
}
