package input

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractArchives unpacks every zip archive found in the input directory in
// place, so submissions can arrive either as loose JSON files or as one
// bundled archive. Non-archive files are left alone. Entries that would
// escape the input directory abort the extraction.
func (l *Loader) ExtractArchives() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		reader, err := zip.OpenReader(path)
		if err != nil {
			if errors.Is(err, zip.ErrFormat) {
				continue
			}
			return fmt.Errorf("open %s: %w", path, err)
		}

		l.logger.Info("extracting archive", "path", path, "entries", len(reader.File))
		extractErr := l.extractZip(&reader.Reader)
		if closeErr := reader.Close(); extractErr == nil {
			extractErr = closeErr
		}
		if extractErr != nil {
			return fmt.Errorf("extract %s: %w", path, extractErr)
		}
	}
	return nil
}

func (l *Loader) extractZip(reader *zip.Reader) error {
	for _, file := range reader.File {
		target := filepath.Join(l.dir, filepath.Clean(file.Name))
		rel, err := filepath.Rel(l.dir, target)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("archive entry escapes input dir: %q", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("mkdir %s: %w", target, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", filepath.Dir(target), err)
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}

	_, copyErr := io.Copy(dst, src)
	if closeErr := dst.Close(); copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		return fmt.Errorf("write %s: %w", target, copyErr)
	}
	return nil
}
