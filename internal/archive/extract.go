package archive

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sri-geospace/repoasset/internal/domain"
	"github.com/sri-geospace/repoasset/internal/utils"
)

// Extractor writes filtered archive entries beneath a destination
// directory, preserving the relative structure of the rewritten paths.
// Existing files at the same path are overwritten without confirmation.
// There is no partial-failure recovery: the first failed write aborts the
// extraction and entries already written stay on disk.
type Extractor struct {
	destDir string
	logger  *utils.Logger
}

// ExtractorOptions contains options for creating an Extractor
type ExtractorOptions struct {
	DestDir string
	Logger  *utils.Logger
}

// NewExtractor creates an extractor rooted at opts.DestDir (the current
// directory if empty).
func NewExtractor(opts ExtractorOptions) *Extractor {
	destDir := opts.DestDir
	if destDir == "" {
		destDir = "."
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Extractor{
		destDir: destDir,
		logger:  logger,
	}
}

// Extract consumes the filtered entries of r in archive order and writes
// them to disk. It returns the number of entries written.
func (e *Extractor) Extract(r *Reader, f *Filter) (int, error) {
	written := 0

	for {
		entry, err := f.Next(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}

		if err := e.writeEntry(entry); err != nil {
			return written, err
		}
		written++
	}

	e.logger.Debug().Int("entries", written).Str("pattern", f.Pattern()).Msg("Extraction complete")

	return written, nil
}

// writeEntry writes one entry beneath the destination directory.
func (e *Extractor) writeEntry(entry *Entry) error {
	targetPath := filepath.Join(e.destDir, filepath.FromSlash(entry.Path))

	// Reject entries that would escape the destination.
	rel, err := filepath.Rel(e.destDir, targetPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return domain.NewExtractError(entry.Path, os.ErrPermission)
	}

	if entry.IsDir() {
		if err := os.MkdirAll(targetPath, 0755); err != nil {
			return domain.NewExtractError(entry.Path, err)
		}
		return nil
	}

	if !entry.IsRegular() {
		// Links and special files do not occur in GitHub branch archives
		// of the supported assets.
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return domain.NewExtractError(entry.Path, err)
	}

	file, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(entry.Header.Mode))
	if err != nil {
		return domain.NewExtractError(entry.Path, err)
	}

	if _, err := io.Copy(file, entry.Body); err != nil {
		file.Close()
		return domain.NewExtractError(entry.Path, err)
	}

	return file.Close()
}
