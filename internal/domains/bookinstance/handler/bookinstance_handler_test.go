package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/bookinstance/service"
)

type recordingRenderer struct {
	status  int
	view    string
	data    gin.H
	message string
}

func (r *recordingRenderer) HTML(c *gin.Context, status int, view string, data gin.H) {
	r.status, r.view, r.data = status, view, data
	c.Status(status)
}

func (r *recordingRenderer) Error(c *gin.Context, status int, message string) {
	r.status, r.message = status, message
	c.Status(status)
}

type fakeService struct {
	instances map[uuid.UUID]*service.Detail
	books     []book.Book

	created *bookinstance.BookInstance
	updated *bookinstance.BookInstance
	deleted []uuid.UUID
}

func (f *fakeService) List(ctx context.Context) ([]service.ListItem, error) {
	var out []service.ListItem
	for _, d := range f.instances {
		out = append(out, service.ListItem{Instance: *d.Instance, Book: d.Book})
	}
	return out, nil
}

func (f *fakeService) Detail(ctx context.Context, id uuid.UUID) (*service.Detail, error) {
	d, ok := f.instances[id]
	if !ok {
		return nil, bookinstance.ErrInstanceNotFound
	}
	return d, nil
}

func (f *fakeService) CreateFormData(ctx context.Context) ([]book.Book, error) {
	return f.books, nil
}

func (f *fakeService) Create(ctx context.Context, candidate *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	created := *candidate
	created.ID = uuid.New()
	f.created = &created
	return &created, nil
}

func (f *fakeService) UpdateFormData(ctx context.Context, id uuid.UUID) (*service.Detail, []book.Book, error) {
	d, err := f.Detail(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return d, f.books, nil
}

func (f *fakeService) Update(ctx context.Context, id uuid.UUID, candidate *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	if _, ok := f.instances[id]; !ok {
		return nil, bookinstance.ErrInstanceNotFound
	}
	updated := *candidate
	updated.ID = id
	f.updated = &updated
	return &updated, nil
}

func (f *fakeService) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func setup(svc service.Service) (*gin.Engine, *recordingRenderer) {
	gin.SetMode(gin.TestMode)

	rec := &recordingRenderer{}
	h := NewBookInstanceHandler(svc, rec)

	router := gin.New()
	router.GET("/catalog/bookinstances", h.List)
	router.GET("/catalog/bookinstance/create", h.CreateGet)
	router.POST("/catalog/bookinstance/create", h.CreatePost)
	router.GET("/catalog/bookinstance/:id", h.Detail)
	router.GET("/catalog/bookinstance/:id/update", h.UpdateGet)
	router.POST("/catalog/bookinstance/:id/update", h.UpdatePost)
	router.GET("/catalog/bookinstance/:id/delete", h.DeleteGet)
	router.POST("/catalog/bookinstance/:id/delete", h.DeletePost)

	return router, rec
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func existing(bookID string) (*fakeService, *bookinstance.BookInstance) {
	bi := &bookinstance.BookInstance{
		ID:      uuid.New(),
		BookID:  bookID,
		Imprint: "Gollancz, 2011",
		Status:  bookinstance.StatusLoaned,
	}
	svc := &fakeService{instances: map[uuid.UUID]*service.Detail{
		bi.ID: {Instance: bi},
	}}
	return svc, bi
}

func TestCreatePost_ValidSubmissionRedirects(t *testing.T) {
	svc := &fakeService{}
	router, _ := setup(svc)

	w := postForm(router, "/catalog/bookinstance/create", url.Values{
		"book":    {uuid.NewString()},
		"imprint": {"Gollancz, 2011"},
		"status":  {"Available"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, svc.created.URL(), w.Header().Get("Location"))
	assert.Equal(t, bookinstance.StatusAvailable, svc.created.Status)
}

func TestCreatePost_MissingImprintEchoesForm(t *testing.T) {
	svc := &fakeService{}
	router, rec := setup(svc)

	w := postForm(router, "/catalog/bookinstance/create", url.Values{
		"book": {uuid.NewString()},
	})

	assert.Nil(t, svc.created)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bookinstance_form", rec.view)
	assert.Contains(t, rec.data, "errors")
}

func TestUpdatePost_KeepsTheOriginalID(t *testing.T) {
	svc, bi := existing(uuid.NewString())
	router, _ := setup(svc)

	newBook := uuid.NewString()
	w := postForm(router, "/catalog/bookinstance/"+bi.ID.String()+"/update", url.Values{
		"book":     {newBook},
		"imprint":  {"Reprint, 2020"},
		"status":   {"Available"},
		"due_back": {"2024-12-24"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, bi.ID, svc.updated.ID)
	assert.Equal(t, newBook, svc.updated.BookID)
	assert.Equal(t, "Reprint, 2020", svc.updated.Imprint)
	assert.Equal(t, bi.URL(), w.Header().Get("Location"))
}

func TestUpdatePost_InvalidSubmissionEchoesForm(t *testing.T) {
	svc, bi := existing(uuid.NewString())
	svc.books = []book.Book{{ID: uuid.New(), Title: "The Name of the Wind"}}
	router, rec := setup(svc)

	w := postForm(router, "/catalog/bookinstance/"+bi.ID.String()+"/update", url.Values{
		"book": {uuid.NewString()},
	})

	assert.Nil(t, svc.updated)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bookinstance_form", rec.view)
	assert.Contains(t, rec.data, "errors")
	assert.Equal(t, svc.books, rec.data["book_list"])
}

func TestUpdatePost_InvalidSubmissionForUnknownInstanceIs404(t *testing.T) {
	svc := &fakeService{}
	router, rec := setup(svc)

	w := postForm(router, "/catalog/bookinstance/"+uuid.NewString()+"/update", url.Values{
		"book": {uuid.NewString()},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book instance not found", rec.message)
}

func TestUpdatePost_UnknownInstanceIs404(t *testing.T) {
	svc := &fakeService{}
	router, _ := setup(svc)

	w := postForm(router, "/catalog/bookinstance/"+uuid.NewString()+"/update", url.Values{
		"book":    {uuid.NewString()},
		"imprint": {"Gollancz"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteGet_RendersConfirmation(t *testing.T) {
	svc, bi := existing(uuid.NewString())
	router, rec := setup(svc)

	w := get(router, "/catalog/bookinstance/"+bi.ID.String()+"/delete")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bookinstance_delete", rec.view)
	assert.Equal(t, bi, rec.data["bookinstance"])
}

func TestDeleteGet_MissingInstanceRedirectsToList(t *testing.T) {
	router, _ := setup(&fakeService{})

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		w := get(router, "/catalog/bookinstance/"+id+"/delete")

		assert.Equal(t, http.StatusFound, w.Code, id)
		assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"), id)
	}
}

func TestDeletePost_DeletesAndRedirects(t *testing.T) {
	svc, bi := existing(uuid.NewString())
	router, _ := setup(svc)

	w := postForm(router, "/catalog/bookinstance/"+bi.ID.String()+"/delete", url.Values{
		"bookinstanceid": {bi.ID.String()},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))
	assert.Equal(t, []uuid.UUID{bi.ID}, svc.deleted)
}

func TestDetail_ShowsResolvedBook(t *testing.T) {
	b := &book.Book{ID: uuid.New(), Title: "The Name of the Wind"}
	svc, bi := existing(b.ID.String())
	svc.instances[bi.ID].Book = b
	router, rec := setup(svc)

	w := get(router, "/catalog/bookinstance/"+bi.ID.String())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bookinstance_detail", rec.view)
	assert.Equal(t, b, rec.data["book"])
}
