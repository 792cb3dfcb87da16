// internal/handlers/cart_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/okaimono/shotengai-backend/internal/models"
	"github.com/okaimono/shotengai-backend/internal/services"
	"github.com/okaimono/shotengai-backend/internal/session"
)

type stubResolver struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubResolver) ProductByID(id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, services.ErrProductNotFound
}

type CartTestSuite struct {
	suite.Suite
	router  *gin.Engine
	product *models.Product
}

func (suite *CartTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.product = &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "刺身盛り合わせ",
		Price:     980,
	}
	resolver := &stubResolver{products: map[uuid.UUID]*models.Product{
		suite.product.ID: suite.product,
	}}

	cartService := services.NewCartService(session.NewMemoryStore(), resolver, nil)
	cartHandler := NewCartHandler(cartService)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("visitor_id", "test-visitor")
		c.Next()
	})

	cart := suite.router.Group("/cart")
	{
		cart.GET("", cartHandler.ViewCart)
		cart.POST("/items/:key", cartHandler.AddItem)
		cart.DELETE("/items/:key", cartHandler.RemoveItem)
	}
}

func (suite *CartTestSuite) do(method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CartTestSuite) TestAddViewRemoveFlow() {
	key := suite.product.ID.String()

	w := suite.do("POST", "/cart/items/"+key)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("POST", "/cart/items/"+key)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("GET", "/cart")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Items []struct {
				Key      string `json:"key"`
				Quantity int    `json:"quantity"`
				Subtotal int    `json:"subtotal"`
			} `json:"items"`
			Total int `json:"total"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Success)
	assert.Len(suite.T(), response.Data.Items, 1)
	assert.Equal(suite.T(), 2, response.Data.Items[0].Quantity)
	assert.Equal(suite.T(), 1960, response.Data.Total)

	w = suite.do("DELETE", "/cart/items/"+key)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("GET", "/cart")
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Data.Items)
	assert.Zero(suite.T(), response.Data.Total)
}

func (suite *CartTestSuite) TestStaleKeyHiddenFromView() {
	w := suite.do("POST", "/cart/items/"+uuid.NewString())
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("GET", "/cart")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Items []json.RawMessage `json:"items"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Data.Items)
}

func TestCartTestSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}
