package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/kjk/common/atomicfile"

	"bookshelf/internal/entity"
)

// BookFile persists the collection as one JSON document: a top-level array
// of book objects, indented so the file stays hand-editable.
type BookFile struct {
	path string
}

func NewBookFile(path string) *BookFile {
	return &BookFile{path: path}
}

// Load reads the backing file. A missing file or an unparsable document
// yields an empty collection, never an error; individual entries that fail
// the shape check are dropped by validEntries. Order is preserved.
func (f *BookFile) Load(ctx context.Context) ([]entity.Book, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("book file unreadable, starting empty", "path", f.path, "error", err)
		}
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("book file corrupt, starting empty", "path", f.path, "error", err)
		return nil, nil
	}
	return validEntries(raw), nil
}

// validEntries filters raw array elements down to well-formed book records,
// preserving order. An entry must be a JSON object carrying both the title
// and author keys; anything else is logged and dropped, not repaired.
func validEntries(raw []json.RawMessage) []entity.Book {
	books := make([]entity.Book, 0, len(raw))
	for i, msg := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(msg, &fields); err != nil {
			slog.Warn("dropping non-object book entry", "index", i, "error", err)
			continue
		}
		if _, ok := fields["title"]; !ok {
			slog.Warn("dropping book entry missing title", "index", i)
			continue
		}
		if _, ok := fields["author"]; !ok {
			slog.Warn("dropping book entry missing author", "index", i)
			continue
		}
		var b entity.Book
		if err := json.Unmarshal(msg, &b); err != nil {
			slog.Warn("dropping book entry with malformed fields", "index", i, "error", err)
			continue
		}
		books = append(books, b)
	}
	return books
}

// Save rewrites the whole backing file with the collection as it stands.
// The write goes through a temp file and rename so a failed write cannot
// leave a truncated document behind.
func (f *BookFile) Save(ctx context.Context, books []entity.Book) error {
	if books == nil {
		books = []entity.Book{}
	}
	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		return err
	}
	af, err := atomicfile.New(f.path)
	if err != nil {
		return err
	}
	defer af.RemoveIfNotClosed()
	if _, err := af.Write(data); err != nil {
		return err
	}
	return af.Close()
}
