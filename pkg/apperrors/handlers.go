package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape for every error the API returns.
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Message string    `json:"message"`
}

// HandleError converts any error into a JSON error response. Unknown errors
// become a generic 500: the cause is logged server-side and never reaches the
// response body.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error",
			"path", c.Request.URL.Path,
			"code", string(appErr.Code),
			"error", appErr.Error(),
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr, Message: appErr.Message})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
