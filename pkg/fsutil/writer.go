package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// dirPermUserGroupRX is the permission applied to directories created for
// generated files.
const dirPermUserGroupRX fs.FileMode = 0o755

// TryWriteFile writes content to a file path, handling force/overwrite logic.
//
// Parameters:
//   - content: The content to write to the file
//   - output: The output file path
//   - force: If true, overwrites existing files; if false, skips existing files
//   - perm: The file mode applied when the file is created
//
// Returns:
//   - bool: true if the file was written, false if an existing file was kept
//   - error: ErrEmptyOutputPath if output is empty, or a write error
func TryWriteFile(content string, output string, force bool, perm fs.FileMode) (bool, error) {
	if output == "" {
		return false, ErrEmptyOutputPath
	}

	output = filepath.Clean(output)

	// Keep existing files untouched unless the caller forces an overwrite.
	if !force {
		_, err := os.Stat(output)
		if err == nil {
			return false, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("failed to check file %s: %w", output, err)
		}
	}

	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, []byte(content), perm)
	if err != nil {
		return false, fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return true, nil
}
