package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection refused")

	t.Run("with status code", func(t *testing.T) {
		err := NewFetchError("https://example.com/a.tar.gz", 503, inner)
		assert.Contains(t, err.Error(), "status 503")
		assert.Contains(t, err.Error(), "https://example.com/a.tar.gz")
		assert.ErrorIs(t, err, inner)
	})

	t.Run("without status code", func(t *testing.T) {
		err := NewFetchError("https://example.com/a.tar.gz", 0, inner)
		assert.NotContains(t, err.Error(), "status")
		assert.ErrorIs(t, err, inner)
	})

	t.Run("matches via errors.As", func(t *testing.T) {
		var fetchErr *FetchError
		wrapped := NewFetchError("https://example.com", 404, errors.New("HTTP 404"))
		assert.ErrorAs(t, wrapped, &fetchErr)
		assert.Equal(t, 404, fetchErr.StatusCode)
	})
}

func TestExtractError(t *testing.T) {
	t.Parallel()

	inner := errors.New("permission denied")
	err := NewExtractError("tutorials/a.txt", inner)

	assert.Contains(t, err.Error(), "tutorials/a.txt")
	assert.ErrorIs(t, err, inner)
}
