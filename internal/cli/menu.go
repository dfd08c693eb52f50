package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"bookshelf/internal/collection"
	"bookshelf/internal/entity"
)

// Menu is the text shell: a numbered menu loop over the collection
// operations. Input and output are injected so the loop is testable.
type Menu struct {
	svc *collection.Service
	in  *bufio.Scanner
	out io.Writer
}

func NewMenu(svc *collection.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run blocks on the menu loop until the user exits or input ends. Save
// failures are fatal and propagate; everything else is reported inline and
// the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Please choose an option (1-7): ")
		if !ok {
			return m.exit(ctx)
		}

		var err error
		switch choice {
		case "1":
			err = m.addBook(ctx)
		case "2":
			err = m.removeBook(ctx)
		case "3":
			m.searchBooks()
		case "4":
			err = m.updateBook(ctx)
		case "5":
			m.viewBooks()
		case "6":
			m.showProgress()
		case "7":
			return m.exit(ctx)
		default:
			fmt.Fprintln(m.out, styleError.Render("Invalid choice. Please try again."))
			fmt.Fprintln(m.out)
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, styleTitle.Render("Welcome to Your Book Collection Manager!"))
	fmt.Fprintln(m.out, "1. Add a new book")
	fmt.Fprintln(m.out, "2. Remove a book")
	fmt.Fprintln(m.out, "3. Search for books")
	fmt.Fprintln(m.out, "4. Update book details")
	fmt.Fprintln(m.out, "5. View all books")
	fmt.Fprintln(m.out, "6. View reading progress")
	fmt.Fprintln(m.out, "7. Exit")
}

// prompt prints the prompt and reads one trimmed line. ok is false when
// input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptYesNo(label string) bool {
	answer, _ := m.prompt(label)
	return strings.EqualFold(answer, "yes")
}

func (m *Menu) addBook(ctx context.Context) error {
	var title string
	for {
		t, ok := m.prompt("Enter the book title: ")
		if !ok {
			return nil
		}
		if t != "" {
			title = t
			break
		}
		fmt.Fprintln(m.out, styleError.Render("Title cannot be empty. Please try again."))
	}

	author, _ := m.prompt("Enter author: ")
	year, _ := m.prompt("Enter publication year: ")
	genre, _ := m.prompt("Enter genre: ")
	read := m.promptYesNo("Have you read this book? (yes/no): ")

	book := entity.Book{Title: title, Author: author, Year: year, Genre: genre, Read: read}
	if err := m.svc.Add(ctx, book); err != nil {
		return err
	}
	fmt.Fprintln(m.out, styleSuccess.Render("Book added successfully!"))
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) removeBook(ctx context.Context) error {
	title, ok := m.prompt("Enter the title of the book to remove: ")
	if !ok {
		return nil
	}
	removed, err := m.svc.Delete(ctx, title)
	if errors.Is(err, collection.ErrNotFound) {
		fmt.Fprintln(m.out, "Book not found")
		fmt.Fprintln(m.out)
		return nil
	}
	if err != nil {
		return err
	}
	if removed > 1 {
		fmt.Fprintln(m.out, styleSuccess.Render(fmt.Sprintf("Removed %d books with that title!", removed)))
	} else {
		fmt.Fprintln(m.out, styleSuccess.Render("Book removed successfully!"))
	}
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) searchBooks() {
	term, ok := m.prompt("Enter search term: ")
	if !ok {
		return
	}
	found := m.svc.Search(term)
	if len(found) == 0 {
		fmt.Fprintln(m.out, "No matching books found.")
		fmt.Fprintln(m.out)
		return
	}
	fmt.Fprintln(m.out, "Matching Books:")
	m.printBooks(found)
}

func (m *Menu) updateBook(ctx context.Context) error {
	title, ok := m.prompt("Enter the title of the book you want to edit: ")
	if !ok {
		return nil
	}
	current, err := m.svc.Get(title)
	if errors.Is(err, collection.ErrNotFound) {
		fmt.Fprintln(m.out, "Book not found!")
		fmt.Fprintln(m.out)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, styleMuted.Render("Leave blank to keep existing value."))
	changes := entity.Book{}
	changes.Title, _ = m.prompt(fmt.Sprintf("New title (%s): ", current.Title))
	changes.Author, _ = m.prompt(fmt.Sprintf("New author (%s): ", current.Author))
	changes.Year, _ = m.prompt(fmt.Sprintf("New year (%s): ", current.Year))
	changes.Genre, _ = m.prompt(fmt.Sprintf("New genre (%s): ", current.Genre))
	changes.Read = m.promptYesNo("Have you read this book? (yes/no): ")

	if err := m.svc.Update(ctx, title, changes); err != nil {
		return err
	}
	fmt.Fprintln(m.out, styleSuccess.Render("Book updated successfully!"))
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) viewBooks() {
	books := m.svc.List()
	if len(books) == 0 {
		fmt.Fprintln(m.out, "Your collection is empty.")
		fmt.Fprintln(m.out)
		return
	}
	fmt.Fprintln(m.out, "Your Book Collection:")
	m.printBooks(books)
}

func (m *Menu) showProgress() {
	p := m.svc.Progress()
	fmt.Fprintf(m.out, "Total books in collection: %d\n", p.Total)
	fmt.Fprintf(m.out, "Reading progress: %.2f%%\n", p.Percentage)
	fmt.Fprintln(m.out)
}

func (m *Menu) exit(ctx context.Context) error {
	if err := m.svc.Flush(ctx); err != nil {
		return err
	}
	fmt.Fprintln(m.out, styleSuccess.Render("Thank you for using Book Collection Manager. Goodbye!"))
	return nil
}

func (m *Menu) printBooks(books []entity.Book) {
	for i, b := range books {
		fmt.Fprintf(m.out, "%d. %s by %s (%s) - %s - %s\n",
			i+1, orNA(b.Title), orNA(b.Author), orNA(b.Year), orNA(b.Genre), readStatus(b))
	}
	fmt.Fprintln(m.out)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func readStatus(b entity.Book) string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}
