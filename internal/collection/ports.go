package collection

import (
	"context"

	"bookshelf/internal/entity"
)

// Store defines the contract for durable collection storage.
type Store interface {
	// Load hydrates the collection from the backing file, in file order.
	Load(ctx context.Context) ([]entity.Book, error)
	// Save rewrites the backing file with the full collection.
	Save(ctx context.Context, books []entity.Book) error
}
