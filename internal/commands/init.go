package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruminaider/panseq-form/internal/config"
)

// ErrFormExists is returned by Init when the target file already exists and
// overwriting was not requested.
var ErrFormExists = errors.New("form definition already exists")

// Init writes the default form definition to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, ErrFormExists)
	}
	data, err := config.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("marshaling form definition: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing form definition: %w", err)
	}
	return nil
}

// LoadForm reads the form definition at path. A missing file yields the
// default definition so the form works before init has been run.
func LoadForm(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
