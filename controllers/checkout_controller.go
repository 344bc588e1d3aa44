package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/middleware"
	"storefront-service/models"
	"storefront-service/services"
)

// CheckoutController handles the checkout funnel endpoints. Each
// endpoint is one forward transition; the snapshot travels in the
// request and response bodies as encoded items plus flat fields.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// BuildSummary handles POST /checkout/summary
func (cc *CheckoutController) BuildSummary(ctx *gin.Context) {
	summary, svcErr := cc.checkoutService.BuildSummary(ctx.Request.Context(), middleware.SessionID(ctx))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	summary.Totals = summary.Totals.Rounded()
	ctx.JSON(http.StatusOK, summary)
}

// PreviewPayment handles POST /checkout/payment/preview
func (cc *CheckoutController) PreviewPayment(ctx *gin.Context) {
	var req models.PaymentPreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// a broken payload is an empty order, not a failed page
		ctx.JSON(http.StatusOK, &models.PaymentPreview{Stage: models.StageSummary, Empty: true})
		return
	}

	preview := cc.checkoutService.PreviewPayment(req)
	preview.Totals = preview.Totals.Rounded()
	ctx.JSON(http.StatusOK, preview)
}

// ConfirmOrder handles POST /checkout/confirm
func (cc *CheckoutController) ConfirmOrder(ctx *gin.Context) {
	var req models.ConfirmOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	confirmation, svcErr := cc.checkoutService.ConfirmOrder(ctx.Request.Context(), middleware.SessionID(ctx), req)
	if svcErr != nil {
		if svcErr.Fields != nil {
			ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "fields": svcErr.Fields})
			return
		}
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	confirmation.Totals = confirmation.Totals.Rounded()
	ctx.JSON(http.StatusOK, gin.H{"stage": models.StageConfirmation, "confirmation": confirmation})
}
