package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"locallibrary-backend/internal/shared/render"
)

// Recovery is the top-level fallback for unhandled failures: it logs the
// panic and answers with the generic error page, leaking no internal detail.
func Recovery(r render.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				r.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
				c.Abort()
			}
		}()

		c.Next()
	}
}
