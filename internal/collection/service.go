package collection

import (
	"context"
	"strings"
	"sync"

	"bookshelf/internal/entity"
)

// Service owns the in-memory collection and provides the operations both
// shells are built from. It is hydrated once at construction and rewrites
// the backing store in full after every successful mutation.
type Service struct {
	store Store

	mu    sync.Mutex
	books []entity.Book
}

// NewService hydrates a service from the store. Load recovers from a
// missing or corrupt backing file by itself, so an error here means the
// store is unusable.
func NewService(ctx context.Context, store Store) (*Service, error) {
	books, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Service{store: store, books: books}, nil
}

// Add appends the book and persists the collection.
func (s *Service) Add(ctx context.Context, book entity.Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append(s.books, book)
	return s.store.Save(ctx, s.books)
}

// Delete removes every record whose title matches case-insensitively and
// persists the collection. Title is treated as a lookup key, so duplicate
// titles go together. Returns how many records were removed; zero matches
// returns ErrNotFound and leaves the file untouched.
func (s *Service) Delete(ctx context.Context, title string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]entity.Book, 0, len(s.books))
	removed := 0
	for _, b := range s.books {
		if strings.EqualFold(b.Title, title) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	if removed == 0 {
		return 0, ErrNotFound
	}
	s.books = kept
	return removed, s.store.Save(ctx, s.books)
}

// Update replaces the fields of the first record whose title matches
// originalTitle case-insensitively. Blank fields in changes keep the prior
// value; Read is always taken from changes, so an unanswered read prompt
// means unread.
func (s *Service) Update(ctx context.Context, originalTitle string, changes entity.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.books {
		if !strings.EqualFold(s.books[i].Title, originalTitle) {
			continue
		}
		if changes.Title != "" {
			s.books[i].Title = changes.Title
		}
		if changes.Author != "" {
			s.books[i].Author = changes.Author
		}
		if changes.Year != "" {
			s.books[i].Year = changes.Year
		}
		if changes.Genre != "" {
			s.books[i].Genre = changes.Genre
		}
		s.books[i].Read = changes.Read
		return s.store.Save(ctx, s.books)
	}
	return ErrNotFound
}

// Get returns the first record whose title matches case-insensitively.
func (s *Service) Get(title string) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.books {
		if strings.EqualFold(b.Title, title) {
			return b, nil
		}
	}
	return entity.Book{}, ErrNotFound
}

// Search returns the records whose title or author contains term,
// case-insensitively, in collection order. An empty result is a valid
// outcome, not an error.
func (s *Service) Search(term string) []entity.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(term)
	var found []entity.Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) {
			found = append(found, b)
		}
	}
	return found
}

// List returns a copy of the full collection in insertion order.
func (s *Service) List() []entity.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Progress reports collection totals. Percentage is zero for an empty
// collection.
func (s *Service) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := Progress{Total: len(s.books)}
	for _, b := range s.books {
		if b.Read {
			p.Read++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Read) / float64(p.Total) * 100
	}
	return p
}

// Flush writes the collection out once more, for shells that save on exit.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(ctx, s.books)
}
