package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readshelf-share/internal/export"
	"readshelf-share/internal/middleware"
	"readshelf-share/internal/model"
	"readshelf-share/internal/note"
	"readshelf-share/pkg/response"
)

// SharePage renders a public note, or the not-found page for every kind of miss.
func (h *handler) SharePage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	out, err := h.uc.Resolve(ctx, req.toResolveInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Resolve %s: %v", req.path(), err)
		h.NotFound(c)
		return
	}

	comments, _ := h.uc.ListComments(ctx, out.Note.ID)

	var viewer *model.User
	if u, ok := middleware.GetSession(c).User(); ok {
		viewer = &u
	}

	c.HTML(http.StatusOK, "share.tmpl", h.newSharePageView(req, out, comments, viewer, c.Query("comment_error")))
}

// ExportPage serves the print-ready document of a public note.
func (h *handler) ExportPage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	out, err := h.uc.Export(ctx, note.ExportInput{
		Category:  req.Category,
		Slug:      req.Slug,
		Presenter: export.ResponsePresenter{W: c.Writer},
	})
	if err != nil {
		h.l.Debugf(ctx, "uc.Export %s: %v", req.path(), err)
		if !c.Writer.Written() {
			h.NotFound(c)
		}
		return
	}

	if out.Outcome != export.OutcomePresented {
		h.l.Infof(ctx, "ExportPage: %s ended %s", req.path(), out.Outcome)
	}
}

// AddComment posts a comment from the share page form and redirects back.
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddCommentReq(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	out, err := h.uc.Resolve(ctx, req.toResolveInput())
	if err != nil {
		h.NotFound(c)
		return
	}

	target := req.path()
	sc := middleware.GetSession(c).Scope()
	if _, err := h.uc.AddComment(ctx, sc, note.AddCommentInput{NoteID: out.Note.ID, Text: req.Text}); err != nil {
		h.l.Warnf(ctx, "uc.AddComment: %v", err)
		target += "?comment_error=" + commentErrorCode(err)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// DeleteComment deletes one of the viewer's comments and redirects back.
func (h *handler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteCommentReq(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	target := req.path()
	sc := middleware.GetSession(c).Scope()
	if err := h.uc.DeleteComment(ctx, sc, note.DeleteCommentInput{CommentID: req.CommentID}); err != nil {
		h.l.Warnf(ctx, "uc.DeleteComment: %v", err)
		target += "?comment_error=" + commentErrorCode(err)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// NotFound renders the single not-found page.
func (h *handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", notFoundView{ProductLabel: h.productLabel})
}

// ResolveNote godoc
// @Summary     Resolve a share path
// @Description Returns the public note a share path points at. Private, missing and mismatched notes are all 404.
// @Tags        Share
// @Accept      json
// @Produce     json
// @Param       category path string true "Note category (book, video, article, course, general)"
// @Param       slug     path string true "Slug ending in the 6-character id suffix"
// @Success     200 {object} resolveResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/share/{category}/{slug} [GET]
func (h *handler) ResolveNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.NotFound(c)
		return
	}

	out, err := h.uc.Resolve(ctx, req.toResolveInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResolveResp(out))
}

// GetSharePath godoc
// @Summary     Build a share path
// @Description Builds the public share path for a note from its category, title and id.
// @Tags        Share
// @Accept      json
// @Produce     json
// @Param       category query string true  "Note category"
// @Param       title    query string false "Note title"
// @Param       id       query string true  "Note id"
// @Success     200 {object} sharePathResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/share/path [GET]
func (h *handler) GetSharePath(c *gin.Context) {
	req, err := h.processSharePathReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SharePath(req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSharePathResp(out))
}
