package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

const (
	storeDir  = "ledgers"
	storeFile = "ledgers.csv"
)

// Store reads and writes month ledgers under <root>/ledgers/.
type Store struct {
	root string
}

// NewStore creates a Store rooted at a workspace directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return filepath.Join(s.root, storeDir, storeFile)
}

// Load returns the stored ledgers, or nil if nothing has been saved yet.
func (s *Store) Load() ([]model.MonthLedger, error) {
	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledgers %s: %w", s.Path(), err)
	}
	defer f.Close()

	ledgers, err := ReadLedgers(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledgers %s: %w", s.Path(), err)
	}
	return ledgers, nil
}

// Save validates ledgers and replaces the stored file.
func (s *Store) Save(ledgers []model.MonthLedger) error {
	if verrs := Validate(ledgers); len(verrs) > 0 {
		return fmt.Errorf("validation failed: %w", errors.Join(validationErrs(verrs)...))
	}

	dir := filepath.Join(s.root, storeDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledgers dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, storeFile+".*")
	if err != nil {
		return fmt.Errorf("creating ledgers file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteLedgers(tmp, ledgers); err != nil {
		tmp.Close()
		return fmt.Errorf("writing ledgers: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing ledgers file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replacing ledgers file: %w", err)
	}
	return nil
}

func validationErrs(verrs []ValidationError) []error {
	errs := make([]error, len(verrs))
	for i, ve := range verrs {
		errs[i] = ve
	}
	return errs
}
