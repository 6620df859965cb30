package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commentbox/comment-system/internal/core/domain"
)

// messageResponse is the canonical envelope for all non-payload API
// responses, success and failure alike. The message strings are the
// user-facing widget texts.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
//
// No error from any collaborator reaches the transport layer unconverted.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingParams):
		return http.StatusBadRequest, "参数缺失"
	case errors.Is(err, domain.ErrCaptchaFailed):
		return http.StatusBadRequest, "验证失败"
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized, "密码错误"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "未授权"
	case errors.Is(err, domain.ErrSiteNotFound):
		return http.StatusNotFound, "站点不存在"
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "评论不存在"
	case errors.Is(err, domain.ErrSiteExists):
		return http.StatusConflict, "站点已存在"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusRequestEntityTooLarge, "站点存储空间已满"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "服务器内部错误"
}
