package testutil

import "bookshelf/internal/entity"

// TestBook is a known-good record for tests.
var TestBook = entity.Book{
	Title:  "Dune",
	Author: "Frank Herbert",
	Year:   "1965",
	Genre:  "Science Fiction",
	Read:   false,
}

// SampleBooks returns a fresh collection fixture. One read, two unread.
func SampleBooks() []entity.Book {
	return []entity.Book{
		{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Science Fiction", Read: false},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: "1937", Genre: "Fantasy", Read: true},
		{Title: "Neuromancer", Author: "William Gibson", Year: "1984", Genre: "Science Fiction", Read: false},
	}
}
