// Package render is the boundary to the page-rendering collaborator.
// Handlers produce a named view plus a data payload; what becomes of them is
// the renderer's business, which keeps handlers testable without templates.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Renderer receives view results from handlers.
type Renderer interface {
	// HTML renders a named view with its data payload.
	HTML(c *gin.Context, status int, view string, data gin.H)

	// Error renders the generic error page. The message never carries
	// internal detail.
	Error(c *gin.Context, status int, message string)
}

// templateRenderer delegates to gin's HTML template engine.
type templateRenderer struct{}

func NewTemplateRenderer() Renderer {
	return templateRenderer{}
}

func (templateRenderer) HTML(c *gin.Context, status int, view string, data gin.H) {
	c.HTML(status, view+".html", data)
}

func (templateRenderer) Error(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"title":   "Error",
		"status":  status,
		"message": message,
	})
}

// NotImplemented marks an operation that is an acknowledged extension point.
// It fails fast instead of answering a blank success.
func NotImplemented(r Renderer, c *gin.Context, what string) {
	r.Error(c, http.StatusNotImplemented, "Not implemented: "+what)
}
