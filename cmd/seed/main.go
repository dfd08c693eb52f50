package main

import (
	"context"
	"flag"
	"log"
	"os"

	"bookshelf/internal/entity"
	"bookshelf/internal/store"
)

var sampleBooks = []entity.Book{
	{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Science Fiction", Read: true},
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: "1937", Genre: "Fantasy", Read: true},
	{Title: "Neuromancer", Author: "William Gibson", Year: "1984", Genre: "Science Fiction", Read: false},
	{Title: "Pride and Prejudice", Author: "Jane Austen", Year: "1813", Genre: "Romance", Read: false},
	{Title: "The Name of the Rose", Author: "Umberto Eco", Year: "1980", Genre: "Mystery", Read: false},
	{Title: "A Brief History of Time", Author: "Stephen Hawking", Year: "1988", Genre: "Science", Read: true},
	{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Year: "1969", Genre: "Science Fiction", Read: false},
	{Title: "Meditations", Author: "Marcus Aurelius", Year: "180", Genre: "Philosophy", Read: false},
}

func main() {
	force := flag.Bool("force", false, "overwrite an existing collection")
	flag.Parse()

	dataPath := os.Getenv("BOOK_DATA")
	if dataPath == "" {
		dataPath = "book_data.json"
	}

	ctx := context.Background()
	bookFile := store.NewBookFile(dataPath)

	existing, err := bookFile.Load(ctx)
	if err != nil {
		log.Fatalf("cannot read %s: %v", dataPath, err)
	}
	if len(existing) > 0 && !*force {
		log.Fatalf("%s already holds %d books; pass -force to overwrite", dataPath, len(existing))
	}

	if err := bookFile.Save(ctx, sampleBooks); err != nil {
		log.Fatalf("cannot write %s: %v", dataPath, err)
	}
	log.Printf("Seeded %d books into %s", len(sampleBooks), dataPath)
}
