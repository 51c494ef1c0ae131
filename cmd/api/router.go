package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary-backend/internal/shared/middleware"
	"locallibrary-backend/pkg/container"
)

// SetupRouter mounts the catalog pages plus the health endpoint.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(c.Renderer),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.LoadHTMLGlob("templates/*.html")

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/catalog")
	})
	router.GET("/health", healthCheckHandler(c))

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Index)

		setupBookRoutes(catalog, c)
		setupAuthorRoutes(catalog, c)
		setupGenreRoutes(catalog, c)
		setupBookInstanceRoutes(catalog, c)
	}

	return router
}

func setupBookRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/books", c.BookHandler.List)
	catalog.GET("/book/create", c.BookHandler.CreateGet)
	catalog.POST("/book/create", c.BookHandler.CreatePost)
	catalog.GET("/book/:id", c.BookHandler.Detail)
}

func setupAuthorRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/authors", c.AuthorHandler.List)
	catalog.GET("/author/create", c.AuthorHandler.CreateGet)
	catalog.POST("/author/create", c.AuthorHandler.CreatePost)
	catalog.GET("/author/:id", c.AuthorHandler.Detail)
	catalog.GET("/author/:id/update", c.AuthorHandler.UpdateGet)
	catalog.POST("/author/:id/update", c.AuthorHandler.UpdatePost)
	catalog.GET("/author/:id/delete", c.AuthorHandler.DeleteGet)
	catalog.POST("/author/:id/delete", c.AuthorHandler.DeletePost)
}

func setupGenreRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/genres", c.GenreHandler.List)
	catalog.GET("/genre/create", c.GenreHandler.CreateGet)
	catalog.POST("/genre/create", c.GenreHandler.CreatePost)
	catalog.GET("/genre/:id", c.GenreHandler.Detail)
}

func setupBookInstanceRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/bookinstances", c.InstanceHandler.List)
	catalog.GET("/bookinstance/create", c.InstanceHandler.CreateGet)
	catalog.POST("/bookinstance/create", c.InstanceHandler.CreatePost)
	catalog.GET("/bookinstance/:id", c.InstanceHandler.Detail)
	catalog.GET("/bookinstance/:id/update", c.InstanceHandler.UpdateGet)
	catalog.POST("/bookinstance/:id/update", c.InstanceHandler.UpdatePost)
	catalog.GET("/bookinstance/:id/delete", c.InstanceHandler.DeleteGet)
	catalog.POST("/bookinstance/:id/delete", c.InstanceHandler.DeletePost)
}

// healthCheckHandler reports liveness plus the state of both backing stores.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		cacheStatus := "ok"

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Cache is best-effort; report without failing the check.
			cacheStatus = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status":      http.StatusText(status),
			"environment": c.Config.App.Environment,
			"version":     c.Config.App.Version,
			"database":    dbStatus,
			"cache":       cacheStatus,
		})
	}
}
