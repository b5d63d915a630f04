package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/macropower/flick/pkg/paging"
)

// restoreState loads a saved position triple from a YAML file and applies it
// to the controller. The triple is re-validated on restore, so a stale file
// whose page count no longer matches leaves the controller untouched.
func restoreState(c *paging.Controller, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	var s paging.State

	err = yaml.Unmarshal(b, &s)
	if err != nil {
		return fmt.Errorf("unmarshal state: %w", err)
	}

	err = c.Restore(s)
	if err != nil {
		return fmt.Errorf("restore state: %w", err)
	}

	return nil
}

// saveState writes the controller's current position triple to a YAML file,
// creating parent directories as needed.
func saveState(c *paging.Controller, path string) error {
	b, err := yaml.Marshal(c.Save())
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	err = os.WriteFile(path, b, 0o644)
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	return nil
}
