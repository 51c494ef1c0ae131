package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/bookinstance/service"
	"locallibrary-backend/internal/shared/render"
)

const listPath = "/catalog/bookinstances"

type BookInstanceHandler struct {
	service service.Service
	render  render.Renderer
}

func NewBookInstanceHandler(s service.Service, r render.Renderer) *BookInstanceHandler {
	return &BookInstanceHandler{service: s, render: r}
}

// List renders all copies ordered by their referenced book's title.
func (h *BookInstanceHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to load book instances")
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_list", gin.H{
		"title":             "Book Instance List",
		"bookinstance_list": items,
	})
}

// Detail renders one copy with its referenced book.
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.render.Error(c, http.StatusNotFound, "Book instance not found")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookinstance.ErrInstanceNotFound) {
			h.render.Error(c, http.StatusNotFound, "Book instance not found")
			return
		}
		h.render.Error(c, http.StatusInternalServerError, "Failed to load book instance")
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_detail", gin.H{
		"title":        "Book Instance Detail",
		"bookinstance": detail.Instance,
		"book":         detail.Book,
	})
}

// CreateGet renders the copy form with the selectable books.
func (h *BookInstanceHandler) CreateGet(c *gin.Context) {
	books, err := h.service.CreateFormData(c.Request.Context())
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to load book instance form")
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
		"title":       "Create BookInstance",
		"book_list":   books,
		"status_list": bookinstance.Statuses(),
	})
}

// CreatePost validates the submission, persisting on success and
// re-rendering the form with the cleaned values plus all errors on failure.
func (h *BookInstanceHandler) CreatePost(c *gin.Context) {
	values, errs := bookinstance.Form().Run(instanceFormValues(c))

	candidate := bookinstance.NewCandidate(values)

	if errs.HasErrors() {
		books, err := h.service.CreateFormData(c.Request.Context())
		if err != nil {
			h.render.Error(c, http.StatusInternalServerError, "Failed to load book instance form")
			return
		}

		h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
			"title":         "Create BookInstance",
			"book_list":     books,
			"status_list":   bookinstance.Statuses(),
			"selected_book": candidate.BookID,
			"bookinstance":  candidate,
			"errors":        errs,
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), candidate)
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to create book instance")
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateGet renders the edit form prefilled with the copy's current values.
func (h *BookInstanceHandler) UpdateGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.render.Error(c, http.StatusNotFound, "Book instance not found")
		return
	}

	detail, books, err := h.service.UpdateFormData(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookinstance.ErrInstanceNotFound) {
			h.render.Error(c, http.StatusNotFound, "Book instance not found")
			return
		}
		h.render.Error(c, http.StatusInternalServerError, "Failed to load book instance form")
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
		"title":         "Update BookInstance",
		"book_list":     books,
		"status_list":   bookinstance.Statuses(),
		"selected_book": detail.Instance.BookID,
		"bookinstance":  detail.Instance,
	})
}

// UpdatePost validates the submission and replaces the copy, keeping its id.
// Validation failures re-render the form for the same id.
func (h *BookInstanceHandler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.render.Error(c, http.StatusNotFound, "Book instance not found")
		return
	}

	values, errs := bookinstance.Form().Run(instanceFormValues(c))

	candidate := bookinstance.NewCandidate(values)
	candidate.ID = id

	if errs.HasErrors() {
		_, books, err := h.service.UpdateFormData(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, bookinstance.ErrInstanceNotFound) {
				h.render.Error(c, http.StatusNotFound, "Book instance not found")
				return
			}
			h.render.Error(c, http.StatusInternalServerError, "Failed to load book instance form")
			return
		}

		h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
			"title":         "Update BookInstance",
			"book_list":     books,
			"status_list":   bookinstance.Statuses(),
			"selected_book": candidate.BookID,
			"bookinstance":  candidate,
			"errors":        errs,
		})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, candidate)
	if err != nil {
		if errors.Is(err, bookinstance.ErrInstanceNotFound) {
			h.render.Error(c, http.StatusNotFound, "Book instance not found")
			return
		}
		h.render.Error(c, http.StatusInternalServerError, "Failed to update book instance")
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// DeleteGet renders the delete confirmation page. A missing copy redirects
// to the list instead of erroring: there is nothing left to confirm.
func (h *BookInstanceHandler) DeleteGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookinstance.ErrInstanceNotFound) {
			c.Redirect(http.StatusFound, listPath)
			return
		}
		h.render.Error(c, http.StatusInternalServerError, "Failed to load book instance")
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_delete", gin.H{
		"title":        "Delete BookInstance",
		"bookinstance": detail.Instance,
		"book":         detail.Book,
	})
}

// DeletePost removes the copy named by the posted id and redirects to the
// list. No referential checks hold a deletion back.
func (h *BookInstanceHandler) DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.PostForm("bookinstanceid"))
	if err != nil {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil && !errors.Is(err, bookinstance.ErrInstanceNotFound) {
		h.render.Error(c, http.StatusInternalServerError, "Failed to delete book instance")
		return
	}

	c.Redirect(http.StatusFound, listPath)
}

func instanceFormValues(c *gin.Context) map[string]string {
	names := []string{
		bookinstance.FieldBook,
		bookinstance.FieldImprint,
		bookinstance.FieldStatus,
		bookinstance.FieldDueBack,
	}
	raw := make(map[string]string, len(names))
	for _, name := range names {
		raw[name] = c.PostForm(name)
	}
	return raw
}
