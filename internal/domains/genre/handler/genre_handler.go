package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/genre"
	"locallibrary-backend/internal/domains/genre/service"
	"locallibrary-backend/internal/shared/render"
)

type GenreHandler struct {
	service service.Service
	render  render.Renderer
}

func NewGenreHandler(s service.Service, r render.Renderer) *GenreHandler {
	return &GenreHandler{service: s, render: r}
}

// List renders all genres sorted by name.
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to load genres")
		return
	}

	h.render.HTML(c, http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

// Detail renders one genre and the books tagged with it.
func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.render.Error(c, http.StatusNotFound, "Genre not found")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			h.render.Error(c, http.StatusNotFound, "Genre not found")
			return
		}
		h.render.Error(c, http.StatusInternalServerError, "Failed to load genre")
		return
	}

	h.render.HTML(c, http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       detail.Genre,
		"genre_books": detail.Books,
	})
}

// CreateGet renders the empty genre form.
func (h *GenreHandler) CreateGet(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "genre_form", gin.H{
		"title": "Create Genre",
	})
}

// CreatePost validates the submission. A genre whose name is already taken is
// not duplicated; the request redirects to the existing record instead.
func (h *GenreHandler) CreatePost(c *gin.Context) {
	values, errs := genre.Form().Run(formValues(c, genre.FieldName))

	candidate := genre.NewCandidate(values)

	if errs.HasErrors() {
		h.render.HTML(c, http.StatusOK, "genre_form", gin.H{
			"title":  "Create Genre",
			"genre":  candidate,
			"errors": errs,
		})
		return
	}

	created, _, err := h.service.Create(c.Request.Context(), candidate)
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to create genre")
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
