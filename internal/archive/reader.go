package archive

import (
	"archive/tar"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/sri-geospace/repoasset/internal/domain"
)

// Entry is one member of the archive. Body is only valid until the next
// call to Next on the owning Reader.
type Entry struct {
	Path   string
	Header *tar.Header
	Body   io.Reader
}

// IsDir reports whether the entry is a directory member.
func (e *Entry) IsDir() bool {
	return e.Header.Typeflag == tar.TypeDir
}

// IsRegular reports whether the entry is a regular file.
func (e *Entry) IsRegular() bool {
	return e.Header.Typeflag == tar.TypeReg
}

// Reader reads entries from a gzip-compressed tar stream in archive order.
// The stream is read exactly once; restarting requires a new Reader.
type Reader struct {
	gz *gzip.Reader
	tr *tar.Reader
}

// NewReader opens a gzip-compressed tar stream.
func NewReader(r io.Reader) (*Reader, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotArchive, err)
	}

	return &Reader{
		gz: gz,
		tr: tar.NewReader(gz),
	}, nil
}

// Next advances to the next archive entry. It returns io.EOF when the
// archive is exhausted.
func (r *Reader) Next() (*Entry, error) {
	header, err := r.tr.Next()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotArchive, err)
	}

	return &Entry{
		Path:   header.Name,
		Header: header,
		Body:   r.tr,
	}, nil
}

// Close releases the underlying gzip reader. It must be called on every
// exit path, success or failure.
func (r *Reader) Close() error {
	return r.gz.Close()
}
