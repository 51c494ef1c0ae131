package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"locallibrary-backend/internal/domains/catalog/service"
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
	counts *service.Counts
	err    error
}

func (f *fakeService) Summary(ctx context.Context) (*service.Counts, error) {
	return f.counts, f.err
}

func TestIndex_RendersCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := &recordingRenderer{}
	h := NewCatalogHandler(&fakeService{counts: &service.Counts{
		Books:              12,
		Instances:          30,
		InstancesAvailable: 7,
		Authors:            5,
		Genres:             3,
	}}, rec)

	router := gin.New()
	router.GET("/catalog", h.Index)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "index", rec.view)
	assert.Equal(t, int64(12), rec.data["book_count"])
	assert.Equal(t, int64(30), rec.data["bookinstance_count"])
	assert.Equal(t, int64(7), rec.data["bookinstance_available_count"])
	assert.Equal(t, int64(5), rec.data["author_count"])
	assert.Equal(t, int64(3), rec.data["genre_count"])
}

func TestIndex_AggregationFailureIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := &recordingRenderer{}
	h := NewCatalogHandler(&fakeService{err: errors.New("connection reset")}, rec)

	router := gin.New()
	router.GET("/catalog", h.Index)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to load catalog counts", rec.message)
}
