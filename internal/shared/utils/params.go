package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/query"
)

// ParseIDParam reads a positive integer route parameter.
// entityName is used in the not-found message (e.g., "ticket").
func ParseIDParam(c *gin.Context, paramName, entityName string) (int, error) {
	id, err := strconv.Atoi(c.Param(paramName))
	if err != nil || id < 1 {
		return 0, errors.NewAPIError(http.StatusNotFound, "No query results for model ["+entityName+"].", nil)
	}
	return id, nil
}

// ParsePage reads ?page=, defaulting to the first page.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query(query.PageKey))
	if err != nil {
		return query.DefaultPage
	}
	return query.NormalizePage(page)
}

// QueryIntPtr returns nil when the parameter is absent or not an integer.
func QueryIntPtr(c *gin.Context, key string) *int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return nil
	}
	return &v
}

// QueryBoolPtr accepts true/false and 1/0.
func QueryBoolPtr(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
