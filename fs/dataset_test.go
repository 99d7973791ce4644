package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frederickpi/pagedate"
	"github.com/frederickpi/pagedate/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataset(t *testing.T) {
	t.Parallel()

	t.Run("decodes a JSON array", func(t *testing.T) {
		t.Parallel()

		input := `[
			{"question": "when was go released?", "content_results": [
				{"url": "https://example.com/go", "text": "<html></html>", "success": true}
			]},
			{"question": "second", "content_results": []}
		]`

		entries, err := fs.DecodeDataset(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "when was go released?", entries[0].Question)
		require.Len(t, entries[0].Pages, 1)
		assert.Equal(t, "https://example.com/go", entries[0].Pages[0].URL)
		assert.True(t, entries[0].Pages[0].Success)
	})

	t.Run("decodes newline-delimited JSON", func(t *testing.T) {
		t.Parallel()

		input := `{"question": "first", "content_results": [{"url": "https://a.example", "text": "x", "success": true}]}
{"question": "second", "content_results": [{"url": "https://b.example", "text": "", "success": false, "error": "timeout"}]}
`

		entries, err := fs.DecodeDataset(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "second", entries[1].Question)
		assert.Equal(t, "timeout", entries[1].Pages[0].Error)
		assert.False(t, entries[1].Pages[0].Success)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := fs.DecodeDataset(strings.NewReader("  \n"))

		require.Error(t, err)
		assert.Equal(t, pagedate.EINVALID, pagedate.ErrorCode(err))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := fs.DecodeDataset(strings.NewReader(`{"question": "ok"}` + "\n" + `{"question":`))

		require.Error(t, err)
		assert.Equal(t, pagedate.EINVALID, pagedate.ErrorCode(err))
	})
}

func TestReadDataset(t *testing.T) {
	t.Parallel()

	t.Run("reads a dataset file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "dataset.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"question": "q", "content_results": []}]`), 0644))

		entries, err := fs.ReadDataset(path)

		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadDataset(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		assert.Equal(t, pagedate.ENOTFOUND, pagedate.ErrorCode(err))
	})
}
