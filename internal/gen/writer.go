package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory and returns
// the number of files actually written. Files whose content on disk already
// matches are left untouched so their modification times stay stable.
func WriteFiles(files []GeneratedFile, outputDir string) (int, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	written := 0

	for _, file := range files {
		if file.Filename == "" || filepath.IsAbs(file.Filename) || filepath.Base(file.Filename) != file.Filename {
			return written, fmt.Errorf("invalid output filename %q", file.Filename)
		}

		outputPath := filepath.Join(outputDir, file.Filename)

		existing, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(existing, file.Content) {
			continue
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		written++
	}

	return written, nil
}
