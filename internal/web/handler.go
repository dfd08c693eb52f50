package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/collection"
	"bookshelf/internal/entity"
)

// Handler serves the form UI over the collection operations.
type Handler struct {
	svc *collection.Service
}

func NewHandler(svc *collection.Service) *Handler {
	return &Handler{svc: svc}
}

// bookForm is the add-book form. The web shell requires both title and
// author; the menu shell only requires title.
type bookForm struct {
	Title  string `form:"title" validate:"required,max=300"`
	Author string `form:"author" validate:"required,max=300"`
	Year   string `form:"year" validate:"max=50"`
	Genre  string `form:"genre" validate:"max=100"`
	Read   bool   `form:"read"`
}

// updateForm carries the edit form. Blank fields keep the stored value.
type updateForm struct {
	OriginalTitle string `form:"original_title" validate:"required"`
	Title         string `form:"title" validate:"max=300"`
	Author        string `form:"author" validate:"max=300"`
	Year          string `form:"year" validate:"max=50"`
	Genre         string `form:"genre" validate:"max=100"`
	Read          bool   `form:"read"`
}

// List handles GET /books.
func (h *Handler) List(c *gin.Context) {
	c.HTML(http.StatusOK, "list.html", gin.H{
		"Books": h.svc.List(),
		"Msg":   c.Query("msg"),
		"Err":   c.Query("err"),
	})
}

// NewForm handles GET /books/new.
func (h *Handler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new.html", gin.H{
		"Form": bookForm{},
	})
}

// Create handles POST /books. Validation failures re-render the form with
// inline errors and the entered values; no partial record is ever stored.
func (h *Handler) Create(c *gin.Context) {
	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "new.html", gin.H{
			"Form":   form,
			"Errors": []FieldError{{Field: "form", Message: "malformed form submission"}},
		})
		return
	}
	form.Title = strings.TrimSpace(form.Title)
	form.Author = strings.TrimSpace(form.Author)

	if fieldErrors := validateForm(form); fieldErrors != nil {
		c.HTML(http.StatusBadRequest, "new.html", gin.H{
			"Form":   form,
			"Errors": fieldErrors,
		})
		return
	}

	book := entity.Book{
		Title:  form.Title,
		Author: form.Author,
		Year:   strings.TrimSpace(form.Year),
		Genre:  strings.TrimSpace(form.Genre),
		Read:   form.Read,
	}
	if err := h.svc.Add(c.Request.Context(), book); err != nil {
		h.fatal(c, err)
		return
	}
	redirectToList(c, "Book added successfully!", "")
}

// EditForm handles GET /books/edit?title=...
func (h *Handler) EditForm(c *gin.Context) {
	title := c.Query("title")
	book, err := h.svc.Get(title)
	if errors.Is(err, collection.ErrNotFound) {
		redirectToList(c, "", "Book not found")
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Book": book,
	})
}

// Update handles POST /books/update.
func (h *Handler) Update(c *gin.Context) {
	var form updateForm
	if err := c.ShouldBind(&form); err != nil {
		redirectToList(c, "", "malformed form submission")
		return
	}
	if fieldErrors := validateForm(form); fieldErrors != nil {
		redirectToList(c, "", fieldErrors[0].Message)
		return
	}

	changes := entity.Book{
		Title:  strings.TrimSpace(form.Title),
		Author: strings.TrimSpace(form.Author),
		Year:   strings.TrimSpace(form.Year),
		Genre:  strings.TrimSpace(form.Genre),
		Read:   form.Read,
	}
	err := h.svc.Update(c.Request.Context(), form.OriginalTitle, changes)
	if errors.Is(err, collection.ErrNotFound) {
		redirectToList(c, "", "Book not found")
		return
	}
	if err != nil {
		h.fatal(c, err)
		return
	}
	redirectToList(c, "Book updated successfully!", "")
}

// Delete handles POST /books/delete. Title is a lookup key, so every
// case-insensitive match goes.
func (h *Handler) Delete(c *gin.Context) {
	title := c.PostForm("title")
	_, err := h.svc.Delete(c.Request.Context(), title)
	if errors.Is(err, collection.ErrNotFound) {
		redirectToList(c, "", "Book not found")
		return
	}
	if err != nil {
		h.fatal(c, err)
		return
	}
	redirectToList(c, "Book deleted successfully.", "")
}

// Search handles GET /search. No q parameter means no search was performed,
// which renders differently from a search with zero matches.
func (h *Handler) Search(c *gin.Context) {
	query, searched := c.GetQuery("q")
	var results []entity.Book
	if searched {
		results = h.svc.Search(query)
	}
	c.HTML(http.StatusOK, "search.html", gin.H{
		"Searched": searched,
		"Query":    query,
		"Results":  results,
	})
}

// ProgressPage handles GET /progress.
func (h *Handler) ProgressPage(c *gin.Context) {
	c.HTML(http.StatusOK, "progress.html", gin.H{
		"Progress": h.svc.Progress(),
	})
}

// fatal reports a failed save. Persistence failures are the one error class
// the shells surface instead of absorbing.
func (h *Handler) fatal(c *gin.Context, err error) {
	slog.Error("saving collection failed",
		"error", err,
		"request_id", c.GetString(requestIDKey),
	)
	c.String(http.StatusInternalServerError, "internal error")
}

func redirectToList(c *gin.Context, msg, errMsg string) {
	target := "/books"
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	} else if errMsg != "" {
		target += "?err=" + url.QueryEscape(errMsg)
	}
	c.Redirect(http.StatusSeeOther, target)
}
