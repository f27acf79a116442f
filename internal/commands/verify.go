package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/fingen-dev/fingen/internal/ledger"
	"github.com/fingen-dev/fingen/internal/logging"
	"github.com/fingen-dev/fingen/internal/taxonomy"
)

func newVerifyCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "verify <csv>",
		Short: "Check a generated ledger against its taxonomy and window",
		Long: `Check a generated ledger against its taxonomy and window.

Dates are checked against the window only when --config pins start_date or
end_date. A config without either takes its window from the current date,
which would not match a ledger generated on an earlier day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.Context(), cmd.OutOrStdout(), args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to fingen.yaml; without it the default taxonomy is used and dates are not checked")

	return cmd
}

func runVerify(ctx context.Context, out io.Writer, csvPath, configPath string) error {
	log := logging.FromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var start, end time.Time
	switch {
	case configPath == "":
	case cfg.WindowPinned():
		if start, end, err = cfg.Window(time.Now()); err != nil {
			return err
		}
	default:
		log.Warn().Str("config", configPath).Msg("config does not pin start_date or end_date, dates not checked")
	}

	records, err := ledger.Load(csvPath)
	if err != nil {
		return err
	}

	verrs := ledger.ValidateRecords(records, taxonomy.NewService(cfg.Taxonomy), start, end)
	for _, ve := range verrs {
		fmt.Fprintln(out, ve.Error())
	}

	sum := ledger.Summarize(records)
	log.Debug().
		Int("records", sum.Records).
		Int("violations", len(verrs)).
		Str("path", csvPath).
		Msg("verified ledger")

	if len(verrs) > 0 {
		return fmt.Errorf("%d invariant violations in %s", len(verrs), csvPath)
	}
	fmt.Fprintf(out, "OK: %d records in %s\n", sum.Records, csvPath)
	return nil
}
