package archive

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sri-geospace/repoasset/internal/domain"
)

func TestFilterMatch(t *testing.T) {
	t.Parallel()

	filter, err := NewFilter("*/tutorials/*", 1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		path  string
		match bool
	}{
		{name: "file under asset", path: "repo-main/tutorials/a.txt", match: true},
		{name: "nested file under asset", path: "repo-main/tutorials/sub/b.txt", match: true},
		{name: "directory under asset", path: "repo-main/tutorials/sub/", match: true},
		{name: "other asset", path: "repo-main/docs/c.txt", match: false},
		// The trailing * matches the empty remainder after the slash.
		{name: "asset directory entry", path: "repo-main/tutorials/", match: true},
		{name: "asset directory without slash", path: "repo-main/tutorials", match: false},
		{name: "root entry", path: "repo-main/", match: false},
		{name: "asset name as prefix only", path: "tutorials/a.txt", match: false},
		{name: "asset name at top level", path: "tutorials", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, filter.Match(tt.path))
		})
	}
}

func TestFilterMatchQuestionMark(t *testing.T) {
	t.Parallel()

	filter, err := NewFilter("repo-mai?/docs/*", 1)
	require.NoError(t, err)

	assert.True(t, filter.Match("repo-main/docs/c.txt"))
	assert.False(t, filter.Match("repo-ma/docs/c.txt"))
}

func TestNewFilterInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewFilter("[", 1)
	assert.Error(t, err)
}

func TestStripComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		strip   int
		want    string
		wantErr bool
	}{
		{name: "single strip", path: "repo-main/tutorials/a.txt", strip: 1, want: "tutorials/a.txt"},
		{name: "nested path", path: "repo-main/tutorials/sub/b.txt", strip: 1, want: "tutorials/sub/b.txt"},
		{name: "directory entry", path: "repo-main/tutorials/sub/", strip: 1, want: "tutorials/sub"},
		{name: "strip two", path: "a/b/c", strip: 2, want: "c"},
		{name: "zero strip", path: "a/b", strip: 0, want: "a/b"},
		{name: "exactly strip components", path: "repo-main", strip: 1, wantErr: true},
		{name: "root directory entry", path: "repo-main/", strip: 1, wantErr: true},
		{name: "fewer than strip", path: "a", strip: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripComponents(tt.path, tt.strip)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrTooFewComponents)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterNext(t *testing.T) {
	t.Parallel()

	data := buildArchive(t, []archiveEntry{
		{name: "repo-main/", dir: true},
		{name: "repo-main/README.md", body: "readme"},
		{name: "repo-main/tutorials/", dir: true},
		{name: "repo-main/tutorials/a.txt", body: "alpha"},
		{name: "repo-main/docs/c.txt", body: "charlie"},
		{name: "repo-main/tutorials/sub/b.txt", body: "bravo"},
	})

	reader, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	filter, err := NewFilter("*/tutorials/*", 1)
	require.NoError(t, err)

	// Matching entries come back in archive order with the leading
	// segment stripped.
	var paths []string
	for {
		entry, err := filter.Next(reader)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		paths = append(paths, entry.Path)
	}

	assert.Equal(t, []string{"tutorials", "tutorials/a.txt", "tutorials/sub/b.txt"}, paths)
}

func TestFilterNextEmptyArchive(t *testing.T) {
	t.Parallel()

	data := buildArchive(t, []archiveEntry{
		{name: "repo-main/", dir: true},
		{name: "repo-main/README.md", body: "readme"},
	})

	reader, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	filter, err := NewFilter("*/tutorials/*", 1)
	require.NoError(t, err)

	_, err = filter.Next(reader)
	assert.Equal(t, io.EOF, err)
}
