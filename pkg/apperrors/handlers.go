package apperrors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error body. Every error the API returns carries a
// top-level "message"; detail beyond that is optional.
type ErrorResponse struct {
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError is the single translation point from service errors to HTTP
// responses. Unclassified errors become a generic 500; the original error
// text goes to the logs only.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		slog.Error("server error",
			"path", c.Request.URL.Path,
			"code", appErr.Code,
			"error", appErr.Error(),
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}
