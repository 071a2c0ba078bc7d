package httpserver

import (
	"context"

	"readshelf-share/internal/middleware"
	noteHTTP "readshelf-share/internal/note/delivery/http"
	"readshelf-share/internal/note/repository/backend"
	noteUC "readshelf-share/internal/note/usecase"
)

// setupNoteDomain wires the public share pages.
//  1. Repository:   backend client + listing cache
//  2. UseCase:      resolve, export, comments
//  3. HTTP Handler: HTML pages + JSON API
//  4. Routes:       /{category}/{slug}..., /api/v1/share/...
func (srv HTTPServer) setupNoteDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. Repository
	repo := backend.New(srv.backend, srv.cache, srv.l)

	// 2. UseCase
	cfg := srv.noteConfig
	if cfg.ProductLabel == "" {
		cfg.ProductLabel = srv.productLabel
	}
	uc := noteUC.New(srv.l, repo, cfg)

	// 3. HTTP Handler
	h := noteHTTP.New(srv.l, uc, noteHTTP.Config{
		ImageURL:     repo.ImageURL,
		ProductLabel: srv.productLabel,
		Location:     cfg.Location,
	})

	// 4. Routes
	srv.gin.SetHTMLTemplate(noteHTTP.Templates())
	noteHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Note share domain registered")
	return nil
}
