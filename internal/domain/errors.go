package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnknownAsset indicates an asset name outside the supported set
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrNotArchive indicates the response body is not a gzip/tar stream
	ErrNotArchive = errors.New("not a gzip tar archive")

	// ErrTooFewComponents indicates an entry path too short to strip
	ErrTooFewComponents = errors.New("path has too few components to strip")
)

// FetchError represents an error during the archive download
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ExtractError represents a failure writing an archive entry to disk
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract error for %s: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewExtractError creates a new ExtractError
func NewExtractError(path string, err error) *ExtractError {
	return &ExtractError{Path: path, Err: err}
}
