package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fingen-dev/fingen/internal/model"
)

// Save writes records to path, creating the parent directory if needed.
func Save(path string, records []model.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger file: %w", err)
	}
	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing ledger %s: %w", path, err)
	}
	return nil
}

// Load reads all records from the CSV file at path.
func Load(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return records, nil
}
