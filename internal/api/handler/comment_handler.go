package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commentbox/comment-system/internal/core/ports"
)

// CommentHandler handles the widget-facing comment endpoints and the
// admin delete.
type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Submit admits a new comment.
//
// @Summary      Submit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      submitCommentRequest  true  "Comment submission"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      413   {object}  map[string]string
// @Router       /api/comments [post]
func (h *CommentHandler) Submit(c echo.Context) error {
	var req submitCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "请求无效")
	}

	err := h.commentService.Submit(c.Request().Context(), ports.SubmitCommentInput{
		SiteID:         req.SiteID,
		Username:       req.Username,
		Content:        req.Content,
		TurnstileToken: req.TurnstileToken,
		ClientIP:       c.RealIP(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "评论提交成功"})
}

// ListBySite returns a site's comments, newest first.
//
// @Summary      List comments for a site
// @Tags         comments
// @Produce      json
// @Param        site_id  path      string  true  "Site id"
// @Success      200      {array}   ports.CommentView
// @Failure      404      {object}  map[string]string
// @Router       /api/comments/{site_id} [get]
func (h *CommentHandler) ListBySite(c echo.Context) error {
	views, err := h.commentService.ListBySite(c.Request().Context(), c.Param("site_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Delete removes a single comment.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.commentService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "评论已删除"})
}
