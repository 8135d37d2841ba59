package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SanitizeOutputPath returns path as a cleaned absolute path. It fails for
// an empty path and for a path that is currently a symlink; paths that do
// not exist yet are accepted.
func SanitizeOutputPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("pathutil: empty output path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write through symlink %s", abs)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}
	return abs, nil
}
