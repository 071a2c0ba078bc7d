package http

import (
	"github.com/gin-gonic/gin"
)

// processRouteReq binds the share path segments.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSharePathReq binds and validates the share path query parameters.
func (h *handler) processSharePathReq(c *gin.Context) (sharePathReq, error) {
	var req sharePathReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAddCommentReq binds the comment form plus the share path.
func (h *handler) processAddCommentReq(c *gin.Context) (addCommentReq, error) {
	var req addCommentReq
	route, err := h.processRouteReq(c)
	if err != nil {
		return req, err
	}
	req.routeReq = route
	req.Text = c.PostForm("text")
	return req, nil
}

// processDeleteCommentReq binds the comment id plus the share path.
func (h *handler) processDeleteCommentReq(c *gin.Context) (deleteCommentReq, error) {
	var req deleteCommentReq
	route, err := h.processRouteReq(c)
	if err != nil {
		return req, err
	}
	req.routeReq = route
	req.CommentID = c.Param("id")
	return req, req.validate()
}
