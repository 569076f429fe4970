package archive

import (
	"fmt"
	"io"
	"strings"

	"github.com/gobwas/glob"

	"github.com/sri-geospace/repoasset/internal/domain"
)

// Filter selects archive entries whose path matches a shell glob pattern
// and rewrites each selected path by dropping its leading components.
// `*` matches any sequence including path separators, `?` a single
// character, both against the full path string.
type Filter struct {
	pattern string
	matcher glob.Glob
	strip   int
}

// NewFilter compiles a glob pattern. strip is the number of leading path
// components removed from each matching entry.
func NewFilter(pattern string, strip int) (*Filter, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	return &Filter{
		pattern: pattern,
		matcher: matcher,
		strip:   strip,
	}, nil
}

// Pattern returns the glob pattern the filter was compiled from.
func (f *Filter) Pattern() string {
	return f.pattern
}

// Match reports whether an archive path matches the pattern.
func (f *Filter) Match(path string) bool {
	return f.matcher.Match(path)
}

// Rewrite drops the filter's strip count of leading components from path.
// A path with no components left after stripping is a fatal input error,
// not a skip: the caller aborts the whole extraction.
func (f *Filter) Rewrite(path string) (string, error) {
	return StripComponents(path, f.strip)
}

// Next returns the next matching entry from r with its path rewritten,
// or io.EOF when the archive is exhausted.
func (f *Filter) Next(r *Reader) (*Entry, error) {
	for {
		entry, err := r.Next()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		if !f.Match(entry.Path) {
			continue
		}

		rewritten, err := f.Rewrite(entry.Path)
		if err != nil {
			return nil, err
		}
		entry.Path = rewritten

		return entry, nil
	}
}

// StripComponents removes the first n slash-separated components from an
// archive path. The trailing slash of a directory entry is dropped; the
// tar header, not the path, marks directories. Paths with n or fewer
// components cannot be rewritten.
func StripComponents(path string, n int) (string, error) {
	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
	if len(parts) <= n {
		return "", fmt.Errorf("%w: %q (strip %d)", domain.ErrTooFewComponents, path, n)
	}
	return strings.Join(parts[n:], "/"), nil
}
