package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fingen-dev/fingen/internal/config"
	"github.com/fingen-dev/fingen/internal/logging"
)

// configFile is the name init writes and generate looks for by default.
const configFile = "fingen.yaml"

func newInitCommand() *cobra.Command {
	var force bool
	var seed uint64
	var records int

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter fingen.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg := config.Default(time.Now())
			*cfg.Seed = seed
			cfg.NumRecords = records

			log := logging.FromContext(cmd.Context())
			log.Debug().Str("dir", absDir).Bool("force", force).Msg("initializing")
			return runInit(cmd.OutOrStdout(), absDir, cfg, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing fingen.yaml")
	cmd.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "random seed written to the config")
	cmd.Flags().IntVar(&records, "records", config.DefaultNumRecords, "number of records written to the config")

	return cmd
}

func runInit(out io.Writer, dir string, cfg *config.Config, force bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, configFile)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s (%d records, %s to %s)\n", path, cfg.NumRecords, cfg.StartDate, cfg.EndDate)
	return nil
}
