package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FreezeNow/swagger-to-axios/internal/fileutil"
	"github.com/FreezeNow/swagger-to-axios/internal/pathutil"
)

// WriteFiles writes all generated files under outputDir, one directory per
// folder. Directories are created as needed. Each file is written to a
// temporary file and renamed into place, so a failed run never leaves a
// truncated file behind.
func (r *Result) WriteFiles(outputDir string) error {
	root, err := pathutil.SanitizeOutputPath(outputDir)
	if err != nil {
		return fmt.Errorf("generator: output directory: %w", err)
	}
	for i := range r.Files {
		if err := r.Files[i].WriteFile(filepath.Join(root, filepath.FromSlash(r.Files[i].Path()))); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	dest, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return fmt.Errorf("generator: failed to create %s: %w", dest, err)
	}
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(f.Content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("generator: failed to write %s: %w", dest, err)
	}
	if err := tmp.Chmod(fileutil.ReadableByAll); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("generator: failed to write %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("generator: failed to write %s: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("generator: failed to write %s: %w", dest, err)
	}
	return nil
}
