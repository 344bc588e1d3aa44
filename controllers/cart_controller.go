package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/middleware"
	"storefront-service/services"
)

// CartController handles HTTP requests for the session cart.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(svc services.CartService) *CartController {
	return &CartController{cartService: svc}
}

// setQuantityRequest is the payload for PUT /cart/items. Quantity 0
// removes the item.
type setQuantityRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// GetCart handles GET /cart
func (cc *CartController) GetCart(ctx *gin.Context) {
	cart, svcErr := cc.cartService.GetCart(ctx.Request.Context(), middleware.SessionID(ctx))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cart": cart, "total_items": cart.TotalItemCount()})
}

// SetItemQuantity handles PUT /cart/items
func (cc *CartController) SetItemQuantity(ctx *gin.Context) {
	var req setQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	cart, svcErr := cc.cartService.SetItemQuantity(ctx.Request.Context(), middleware.SessionID(ctx), req.ItemID, req.Quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cart": cart, "total_items": cart.TotalItemCount()})
}

// ClearCart handles DELETE /cart
func (cc *CartController) ClearCart(ctx *gin.Context) {
	if svcErr := cc.cartService.ClearCart(ctx.Request.Context(), middleware.SessionID(ctx)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
