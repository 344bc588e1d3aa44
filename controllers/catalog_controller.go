package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-service/database"
	"storefront-service/models"
)

// CatalogController serves the read-only restaurant and menu queries.
type CatalogController struct {
	catalog database.CatalogRepository
	logger  *zap.Logger
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalog database.CatalogRepository, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalog: catalog, logger: logger}
}

// ListRestaurants handles GET /restaurants. Restaurants come back
// ordered by rating descending. A catalog failure degrades to an empty
// list; there is no retry and no error detail for the caller.
func (cc *CatalogController) ListRestaurants(ctx *gin.Context) {
	restaurants, err := cc.catalog.ListRestaurants(ctx.Request.Context())
	if err != nil {
		cc.logger.Error("Failed to list restaurants", zap.Error(err))
		ctx.JSON(http.StatusOK, gin.H{"restaurants": []models.Restaurant{}})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GetRestaurant handles GET /restaurants/:id
func (cc *CatalogController) GetRestaurant(ctx *gin.Context) {
	id := ctx.Param("id")

	restaurant, err := cc.catalog.FindRestaurant(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		cc.logger.Error("Failed to fetch restaurant", zap.String("id", id), zap.Error(err))
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	ctx.JSON(http.StatusOK, restaurant)
}

// GetMenu handles GET /restaurants/:id/menu. Items are grouped under
// their category headings, categories and items both alphabetical.
func (cc *CatalogController) GetMenu(ctx *gin.Context) {
	id := ctx.Param("id")

	items, err := cc.catalog.ListMenuItems(ctx.Request.Context(), id)
	if err != nil {
		cc.logger.Error("Failed to list menu items", zap.String("restaurant_id", id), zap.Error(err))
		ctx.JSON(http.StatusOK, gin.H{"menu": []models.MenuCategory{}})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"menu": models.GroupMenuByCategory(items)})
}
