package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile runs write against a temporary file next to path and renames it
// into place only when write and close both succeed. On failure path is left
// untouched and the temporary file is removed.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("export.WriteFile: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return fmt.Errorf("export.WriteFile: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export.WriteFile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("export.WriteFile: %w", err)
	}
	return nil
}
