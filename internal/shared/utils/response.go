package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

// ErrorBody is the error shape the admin API returns: a message plus optional
// per-field validation messages.
type ErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// DataResponse wraps data in {"data": ...}.
func DataResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{"data": data})
}

// BareResponse sends data without an envelope.
func BareResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// MessageResponse sends {"message": ...}.
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ListResponse sends a paginated page in the backend's top-level shape.
func ListResponse[T any](c *gin.Context, page pagination.Response[T]) {
	if page.Data == nil {
		page.Data = []T{}
	}
	c.JSON(http.StatusOK, page)
}

// ErrorResponse sends an error body with the given status.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ValidationErrorResponse sends 422 with per-field messages.
func ValidationErrorResponse(c *gin.Context, message string, fields map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorBody{Message: message, Errors: fields})
}

// ErrorResponseWithError maps err onto the error body. Non-API errors become 500
// without exposing their text.
func ErrorResponseWithError(c *gin.Context, err error) {
	if apiErr := errors.GetAPIError(err); apiErr != nil {
		c.JSON(apiErr.StatusCode, ErrorBody{Message: apiErr.Message, Errors: apiErr.ValidationErrors})
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Server Error")
}
