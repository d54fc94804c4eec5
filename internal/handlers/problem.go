package handlers

import (
	"log/slog"
	"net/http"

	"real-estate-publications/internal/publication"

	"github.com/gin-gonic/gin"
)

// Problem is the JSON error body returned by every endpoint
type Problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

func writeProblem(c *gin.Context, status int, title, detail string) {
	c.AbortWithStatusJSON(status, Problem{Title: title, Detail: detail, Status: status})
}

// respondError maps a service error to its HTTP status and logs it at the matching level
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	attrs := []any{"method", c.Request.Method, "path", c.Request.URL.Path, "request_id", c.GetString(requestIDKey)}

	switch publication.KindOf(err) {
	case publication.KindDomainValidation:
		logger.Info("request rejected", append(attrs, "reason", err.Error())...)
		writeProblem(c, http.StatusBadRequest, "Validation", err.Error())
	case publication.KindNotFound:
		logger.Warn("resource not found", append(attrs, "reason", err.Error())...)
		writeProblem(c, http.StatusNotFound, "Not found", err.Error())
	default:
		logger.Error("unexpected error", append(attrs, "err", err)...)
		writeProblem(c, http.StatusInternalServerError, "Unexpected error", "an unexpected error occurred.")
	}
}
