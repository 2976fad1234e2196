package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"adboard/internal/core/apperror"
)

// bindJSON decodes the request body into req. Unparseable bodies are
// reported as malformed input, not as validation failures.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperror.NewMalformed("request body is not valid JSON").WithCause(err)
	}
	return nil
}

// idParam parses the :id path segment. A non-numeric id can never match
// a stored record, so it is reported as not found.
func idParam(c *gin.Context, entity string) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFound(entity, raw)
	}
	return id, nil
}

// pageQuery parses the ?page= query parameter. Absent or unparseable
// values resolve to the first page.
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// abortWithError records the error for the rendering middleware and
// stops the handler chain.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
