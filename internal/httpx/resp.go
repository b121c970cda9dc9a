package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorBody is the error envelope returned to clients.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends a 200 response with the given body as-is.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Fail sends an error envelope with the given HTTP status.
func Fail(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// FailErr sends an error envelope from an AppError. The internal cause, if
// any, is logged and not returned to the client.
func FailErr(c *gin.Context, err *AppError) {
	if err.Err != nil {
		logrus.WithFields(logrus.Fields{
			"status": err.HTTPStatus,
			"path":   c.FullPath(),
		}).WithError(err.Err).Error(err.Message)
	}
	c.JSON(err.HTTPStatus, ErrorBody{Error: err.Message})
}

// ListMeta is the pagination block of list responses.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// OKList sends a paginated list response.
func OKList(c *gin.Context, data any, meta ListMeta) {
	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": meta,
	})
}
