// Package output writes serialized EAC-CPF documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is one rendered document and the name it is written under.
type File struct {
	Filename string
	Content  []byte
}

// WriteFiles writes all files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []File, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		if err := WriteFile(file, outputDir); err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes a single file into an existing output directory. The
// file name must not contain path separators.
func WriteFile(file File, outputDir string) error {
	if file.Filename == "" || filepath.Base(file.Filename) != file.Filename {
		return fmt.Errorf("invalid output file name %q", file.Filename)
	}

	outputPath := filepath.Join(outputDir, file.Filename)

	if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return nil
}
