package http

import (
	"readshelf-share/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the share pages, their JSON API and the not-found fallback.
// Share pages carry the session so the comment form knows the viewer.
func RegisterRoutes(r *gin.Engine, h *handler, mw middleware.Middleware) {
	api := r.Group("/api/v1/share", mw.RateLimit())
	{
		api.GET("/path", h.GetSharePath)
		api.GET("/:category/:slug", h.ResolveNote)
	}

	pages := r.Group("", mw.RateLimit(), mw.Session())
	{
		pages.GET("/:category/:slug", h.SharePage)
		pages.GET("/:category/:slug/export", h.ExportPage)
		pages.POST("/:category/:slug/comments", h.AddComment)
		pages.POST("/:category/:slug/comments/:id/delete", h.DeleteComment)
	}

	r.NoRoute(h.NotFound)
}
