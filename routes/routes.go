package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
	"storefront-service/middleware"
)

// RegisterRoutes wires all storefront endpoints onto the router.
func RegisterRoutes(
	r *gin.Engine,
	catalog *controllers.CatalogController,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
) {
	// Catalog reads need no session
	r.GET("/restaurants", catalog.ListRestaurants)
	r.GET("/restaurants/:id", catalog.GetRestaurant)
	r.GET("/restaurants/:id/menu", catalog.GetMenu)

	// Cart and funnel are scoped to the browser session
	session := r.Group("/", middleware.Session())
	{
		session.GET("/cart", cart.GetCart)
		session.PUT("/cart/items", cart.SetItemQuantity)
		session.DELETE("/cart", cart.ClearCart)

		session.POST("/checkout/summary", checkout.BuildSummary)
		session.POST("/checkout/payment/preview", checkout.PreviewPayment)
		session.POST("/checkout/confirm", checkout.ConfirmOrder)
	}
}
