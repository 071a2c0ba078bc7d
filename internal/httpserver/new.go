package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"readshelf-share/internal/middleware"
	"readshelf-share/internal/note/repository/backend"
	"readshelf-share/internal/note/usecase"
	"readshelf-share/pkg/cache"
	"readshelf-share/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Note share domain
	backend      *backend.Client
	cache        cache.Cache
	noteConfig   usecase.Config
	middleware   middleware.Config
	productLabel string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Note share domain
	Backend      *backend.Client
	Cache        cache.Cache // Listing cache, nil disables caching
	NoteConfig   usecase.Config
	Middleware   middleware.Config
	ProductLabel string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		backend:      cfg.Backend,
		cache:        cfg.Cache,
		noteConfig:   cfg.NoteConfig,
		middleware:   cfg.Middleware,
		productLabel: cfg.ProductLabel,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.backend == nil {
		return errors.New("backend client is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
