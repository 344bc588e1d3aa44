package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-service/controllers"
	"storefront-service/models"
)

// ---- concrete mock implementing database.CatalogRepository ----

type mockCatalog struct {
	restaurants []models.Restaurant
	restaurant  *models.Restaurant
	items       []models.MenuItem
	err         error
}

func (m *mockCatalog) ListRestaurants(_ context.Context) ([]models.Restaurant, error) {
	return m.restaurants, m.err
}

func (m *mockCatalog) FindRestaurant(_ context.Context, _ string) (*models.Restaurant, error) {
	if m.restaurant == nil && m.err == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.restaurant, m.err
}

func (m *mockCatalog) ListMenuItems(_ context.Context, _ string) ([]models.MenuItem, error) {
	return m.items, m.err
}

func (m *mockCatalog) FindMenuItem(_ context.Context, _ string) (*models.MenuItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func setupCatalogRouter(catalog *mockCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := controllers.NewCatalogController(catalog, zap.NewNop())
	r.GET("/restaurants", controller.ListRestaurants)
	r.GET("/restaurants/:id", controller.GetRestaurant)
	r.GET("/restaurants/:id/menu", controller.GetMenu)
	return r
}

func TestListRestaurants_Success(t *testing.T) {
	r := setupCatalogRouter(&mockCatalog{restaurants: []models.Restaurant{
		{ID: "rest-1", Name: "Trattoria", Rating: 4.8},
		{ID: "rest-2", Name: "Sushi Bar", Rating: 4.5},
	}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Trattoria")
}

func TestListRestaurants_CatalogFailureDegradesToEmptyList(t *testing.T) {
	r := setupCatalogRouter(&mockCatalog{err: assert.AnError})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants", nil))

	// a catalog failure renders as "nothing", not as an error page
	assert.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.Restaurants)
}

func TestGetRestaurant_NotFound(t *testing.T) {
	r := setupCatalogRouter(&mockCatalog{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/rest-404", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Restaurant not found")
}

func TestGetMenu_GroupedByCategory(t *testing.T) {
	r := setupCatalogRouter(&mockCatalog{items: []models.MenuItem{
		{ID: "item-3", RestaurantID: "rest-1", Name: "Gelato", Category: "desserts"},
		{ID: "item-1", RestaurantID: "rest-1", Name: "Lasagna", Category: "mains"},
		{ID: "item-2", RestaurantID: "rest-1", Name: "Risotto", Category: "mains"},
	}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/rest-1/menu", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Menu []models.MenuCategory `json:"menu"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Menu, 2)
	assert.Equal(t, "desserts", got.Menu[0].Category)
	assert.Len(t, got.Menu[1].Items, 2)
}

func TestGetMenu_CatalogFailureDegradesToEmptyMenu(t *testing.T) {
	r := setupCatalogRouter(&mockCatalog{err: assert.AnError})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/rest-1/menu", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Menu []models.MenuCategory `json:"menu"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.Menu)
}
