package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bookshelf/internal/entity"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "book_data.json")
}

func TestBookFile_LoadMissingFile(t *testing.T) {
	f := NewBookFile(tempFile(t))

	books, err := f.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookFile_LoadCorruptFile(t *testing.T) {
	path := tempFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	f := NewBookFile(path)

	books, err := f.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookFile_LoadFiltersMalformedEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []entity.Book
	}{
		{
			name:    "missing author and unknown keys dropped",
			content: `[{"title":"A"}, {"foo":"bar"}, {"title":"B","author":"C"}]`,
			want:    []entity.Book{{Title: "B", Author: "C"}},
		},
		{
			name:    "non-object entries dropped",
			content: `[42, "x", {"title":"B","author":"C"}]`,
			want:    []entity.Book{{Title: "B", Author: "C"}},
		},
		{
			name:    "order preserved",
			content: `[{"title":"B","author":"C"}, {"title":"A","author":"Z","read":true}]`,
			want:    []entity.Book{{Title: "B", Author: "C"}, {Title: "A", Author: "Z", Read: true}},
		},
		{
			name:    "top level not an array",
			content: `{"title":"B","author":"C"}`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tempFile(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			f := NewBookFile(path)

			books, err := f.Load(context.Background())

			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, books)
				return
			}
			assert.Equal(t, tt.want, books)
		})
	}
}

func TestBookFile_SaveLoadRoundTrip(t *testing.T) {
	path := tempFile(t)
	f := NewBookFile(path)
	ctx := context.Background()
	books := testutil.SampleBooks()

	require.NoError(t, f.Save(ctx, books))

	loaded, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, books, loaded)
}

func TestBookFile_SaveWritesIndentedArray(t *testing.T) {
	path := tempFile(t)
	f := NewBookFile(path)

	require.NoError(t, f.Save(context.Background(), []entity.Book{testutil.TestBook}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    ")

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "Dune", raw[0]["title"])
	assert.Equal(t, false, raw[0]["read"])
}

func TestBookFile_SaveNilCollectionWritesEmptyArray(t *testing.T) {
	path := tempFile(t)
	f := NewBookFile(path)

	require.NoError(t, f.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestBookFile_SaveOverwritesPreviousContent(t *testing.T) {
	path := tempFile(t)
	f := NewBookFile(path)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, testutil.SampleBooks()))
	require.NoError(t, f.Save(ctx, []entity.Book{testutil.TestBook}))

	loaded, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Book{testutil.TestBook}, loaded)
}
