package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/storage"
	"github.com/jasperwreed/story-memory/internal/tabsync"
)

// Validator provides methods for validating CLI inputs
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUser checks that a user was given by flag, config or environment
func (v *Validator) ValidateUser(seq int64) error {
	if seq <= 0 {
		return fmt.Errorf("--user flag is required unless user.seq is configured")
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD argument
func (v *Validator) ValidateDate(date string) error {
	if _, err := daterange.Parse(date); err != nil {
		return fmt.Errorf("invalid date %q, expected %s", date, daterange.Layout)
	}
	return nil
}

// ValidateTab checks a weekly tab name
func (v *Validator) ValidateTab(tab string) error {
	for _, name := range tabsync.WeeklyTabs {
		if name == tab {
			return nil
		}
	}
	return fmt.Errorf("unknown tab %q, expected one of %v", tab, tabsync.WeeklyTabs)
}

// ValidateFile checks if a file path is valid and exists
func (v *Validator) ValidateFile(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	if stat.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	return nil
}

// ResolvePath resolves a path to an absolute path
func (v *Validator) ResolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "." {
		return os.Getwd()
	}

	if filepath.IsAbs(path) {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return filepath.Join(cwd, path), nil
}

// GetDefaultDatabasePath returns the default database path
func (v *Validator) GetDefaultDatabasePath() (string, error) {
	return storage.DefaultPath()
}
