// Package container wires the application's dependency graph. Initialization
// order matters: config, then infrastructure, then the document store, then
// repositories, services and handlers. A failure at any step aborts startup.
package container

import (
	"context"
	"fmt"
	"time"

	"locallibrary-backend/internal/config"
	"locallibrary-backend/internal/docstore"
	authorHandler "locallibrary-backend/internal/domains/author/handler"
	authorRepo "locallibrary-backend/internal/domains/author/repository"
	authorService "locallibrary-backend/internal/domains/author/service"
	bookHandler "locallibrary-backend/internal/domains/book/handler"
	bookRepo "locallibrary-backend/internal/domains/book/repository"
	bookService "locallibrary-backend/internal/domains/book/service"
	instanceHandler "locallibrary-backend/internal/domains/bookinstance/handler"
	instanceRepo "locallibrary-backend/internal/domains/bookinstance/repository"
	instanceService "locallibrary-backend/internal/domains/bookinstance/service"
	catalogHandler "locallibrary-backend/internal/domains/catalog/handler"
	catalogService "locallibrary-backend/internal/domains/catalog/service"
	genreHandler "locallibrary-backend/internal/domains/genre/handler"
	genreRepo "locallibrary-backend/internal/domains/genre/repository"
	genreService "locallibrary-backend/internal/domains/genre/service"
	infraCache "locallibrary-backend/internal/infrastructure/cache"
	"locallibrary-backend/internal/infrastructure/database"
	"locallibrary-backend/internal/shared/render"
	"locallibrary-backend/pkg/cache"
	"locallibrary-backend/pkg/logger"

	"locallibrary-backend/internal/domains/author"
	"locallibrary-backend/internal/domains/book"
	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/genre"
)

// Container is the root of the dependency graph. Every component is a
// singleton living for the process lifetime.
type Container struct {
	// Infrastructure
	Config   *config.Config
	DB       *database.PostgresDB
	Cache    cache.Cache
	Store    docstore.Store
	Renderer render.Renderer

	// Repositories
	AuthorRepo   author.Repository
	BookRepo     book.Repository
	GenreRepo    genre.Repository
	InstanceRepo bookinstance.Repository

	// Services
	AuthorService   authorService.Service
	BookService     bookService.Service
	GenreService    genreService.Service
	InstanceService instanceService.Service
	CatalogService  catalogService.Service

	// Handlers
	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	GenreHandler    *genreHandler.GenreHandler
	InstanceHandler *instanceHandler.BookInstanceHandler
	CatalogHandler  *catalogHandler.CatalogHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	if err := docstore.EnsureSchema(ctx, db.Pool); err != nil {
		return nil, fmt.Errorf("failed to ensure document schema: %w", err)
	}
	c.Store = docstore.NewPostgresStore(db.Pool)

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	// A cache outage degrades read latency, never correctness.
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("redis connection failed, continuing without warm cache", err)
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	c.Renderer = render.NewTemplateRenderer()

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewDocstoreRepository(c.Store, c.Cache)
	c.BookRepo = bookRepo.NewDocstoreRepository(c.Store)
	c.GenreRepo = genreRepo.NewDocstoreRepository(c.Store)
	c.InstanceRepo = instanceRepo.NewDocstoreRepository(c.Store, c.Cache)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo, c.GenreRepo, c.InstanceRepo)
	c.GenreService = genreService.NewService(c.GenreRepo, c.BookRepo)
	c.InstanceService = instanceService.NewService(c.InstanceRepo, c.BookRepo)
	c.CatalogService = catalogService.NewService(c.BookRepo, c.InstanceRepo, c.AuthorRepo, c.GenreRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.Renderer)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.Renderer)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService, c.Renderer)
	c.InstanceHandler = instanceHandler.NewBookInstanceHandler(c.InstanceService, c.Renderer)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService, c.Renderer)
}

// Cleanup releases infrastructure connections in reverse dependency order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis client", err)
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container cleaned up", nil)
}
