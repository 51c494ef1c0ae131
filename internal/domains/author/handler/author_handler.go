package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/author/service"
	"locallibrary-backend/internal/shared/render"
)

type AuthorHandler struct {
	service service.Service
	render  render.Renderer
}

func NewAuthorHandler(s service.Service, r render.Renderer) *AuthorHandler {
	return &AuthorHandler{service: s, render: r}
}

// List renders all authors sorted by family name.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to load authors")
		return
	}

	h.render.HTML(c, http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// Detail renders one author and their books. An unknown or malformed id is a
// plain not-found, never an internal error.
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.render.Error(c, http.StatusNotFound, "Author not found")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			h.render.Error(c, http.StatusNotFound, "Author not found")
			return
		}
		h.render.Error(c, http.StatusInternalServerError, "Failed to load author")
		return
	}

	h.render.HTML(c, http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       detail.Author,
		"author_books": detail.Books,
	})
}

// CreateGet renders the empty author form.
func (h *AuthorHandler) CreateGet(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "author_form", gin.H{
		"title": "Create Author",
	})
}

// CreatePost validates the submission, persisting on success and re-rendering
// the form with the cleaned values plus all accumulated errors on failure.
func (h *AuthorHandler) CreatePost(c *gin.Context) {
	values, errs := author.Form().Run(formValues(c,
		author.FieldFirstName,
		author.FieldFamilyName,
		author.FieldDateOfBirth,
		author.FieldDateOfDeath,
	))

	candidate := author.NewCandidate(values)

	if errs.HasErrors() {
		h.render.HTML(c, http.StatusOK, "author_form", gin.H{
			"title":  "Create Author",
			"author": candidate,
			"errors": errs,
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), candidate)
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to create author")
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateGet is an acknowledged extension point.
func (h *AuthorHandler) UpdateGet(c *gin.Context) {
	render.NotImplemented(h.render, c, "Author update GET")
}

// UpdatePost is an acknowledged extension point.
func (h *AuthorHandler) UpdatePost(c *gin.Context) {
	render.NotImplemented(h.render, c, "Author update POST")
}

// DeleteGet is an acknowledged extension point.
func (h *AuthorHandler) DeleteGet(c *gin.Context) {
	render.NotImplemented(h.render, c, "Author delete GET")
}

// DeletePost is an acknowledged extension point.
func (h *AuthorHandler) DeletePost(c *gin.Context) {
	render.NotImplemented(h.render, c, "Author delete POST")
}

func formValues(c *gin.Context, names ...string) map[string]string {
	raw := make(map[string]string, len(names))
	for _, name := range names {
		raw[name] = c.PostForm(name)
	}
	return raw
}
