// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestPaginationParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, defaultPageSize, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestPaginationParamsClamped(t *testing.T) {
	params := paramsForQuery(t, "page=0&limit=9999&order=sideways")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, defaultPageSize, params.Limit)
	assert.Equal(t, "desc", params.Order)

	params = paramsForQuery(t, "page=3&limit=12&order=asc")
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 12, params.Limit)
	assert.Equal(t, "asc", params.Order)
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]string{"a", "b"}, 50, PaginationParams{Page: 2, Limit: 24})

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(50), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}
