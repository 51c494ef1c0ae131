package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/book/service"
	"locallibrary-backend/internal/shared/render"
)

type BookHandler struct {
	service service.Service
	render  render.Renderer
}

func NewBookHandler(s service.Service, r render.Renderer) *BookHandler {
	return &BookHandler{service: s, render: r}
}

// List renders all books sorted by title, each with its author.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to load books")
		return
	}

	h.render.HTML(c, http.StatusOK, "book_list", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

// Detail renders one book with its author, genres and copies.
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.render.Error(c, http.StatusNotFound, "Book not found")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			h.render.Error(c, http.StatusNotFound, "Book not found")
			return
		}
		h.render.Error(c, http.StatusInternalServerError, "Failed to load book")
		return
	}

	h.render.HTML(c, http.StatusOK, "book_detail", gin.H{
		"title":          detail.Book.Title,
		"book":           detail.Book,
		"author":         detail.Author,
		"genres":         detail.Genres,
		"book_instances": detail.Instances,
	})
}

// CreateGet renders the book form with the selectable authors and genres.
func (h *BookHandler) CreateGet(c *gin.Context) {
	data, err := h.service.FormData(c.Request.Context())
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to load book form")
		return
	}

	h.render.HTML(c, http.StatusOK, "book_form", gin.H{
		"title":   "Create Book",
		"authors": data.Authors,
		"genres":  data.Genres,
	})
}

// CreatePost validates the submission. On failure the form is re-rendered
// with the reference lists reloaded, the cleaned values and all errors.
func (h *BookHandler) CreatePost(c *gin.Context) {
	values, errs := book.Form().Run(formValues(c,
		book.FieldTitle,
		book.FieldAuthor,
		book.FieldSummary,
		book.FieldISBN,
	))
	genreIDs := book.CleanGenreIDs(c.PostFormArray(book.FieldGenre))

	candidate := book.NewCandidate(values, genreIDs)

	if errs.HasErrors() {
		data, err := h.service.FormData(c.Request.Context())
		if err != nil {
			h.render.Error(c, http.StatusInternalServerError, "Failed to load book form")
			return
		}

		h.render.HTML(c, http.StatusOK, "book_form", gin.H{
			"title":   "Create Book",
			"authors": data.Authors,
			"genres":  data.Genres,
			"book":    candidate,
			"errors":  errs,
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), candidate)
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to create book")
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

func formValues(c *gin.Context, names ...string) map[string]string {
	raw := make(map[string]string, len(names))
	for _, name := range names {
		raw[name] = c.PostForm(name)
	}
	return raw
}
