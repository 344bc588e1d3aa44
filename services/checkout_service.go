package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"storefront-service/database"
	"storefront-service/models"
)

// TaxRate is the fixed tax applied to every order subtotal.
const TaxRate = 0.10

// EventPublisher publishes order lifecycle events. Publishing is
// best-effort: a publish failure never blocks a confirmation.
type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event models.OrderConfirmedEvent) error
}

// CheckoutService drives the funnel: browsing -> summary -> payment ->
// confirmation. Each transition consumes the previous stage's snapshot
// and produces the next stage's payload; nothing is mutated in place
// and nothing about an order is persisted.
type CheckoutService interface {
	BuildSummary(ctx context.Context, sessionID string) (*models.OrderSummary, *ServiceError)
	PreviewPayment(req models.PaymentPreviewRequest) *models.PaymentPreview
	ConfirmOrder(ctx context.Context, sessionID string, req models.ConfirmOrderRequest) (*models.OrderConfirmation, *ServiceError)
}

type checkoutServiceImpl struct {
	carts            database.CartRepository
	authorizer       PaymentAuthorizer
	publisher        EventPublisher
	deliveryEstimate time.Duration
	logger           *zap.Logger
}

// NewCheckoutService creates a new CheckoutService. publisher may be
// nil when event publishing is not configured.
func NewCheckoutService(
	carts database.CartRepository,
	authorizer PaymentAuthorizer,
	publisher EventPublisher,
	deliveryEstimate time.Duration,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		carts:            carts,
		authorizer:       authorizer,
		publisher:        publisher,
		deliveryEstimate: deliveryEstimate,
		logger:           logger,
	}
}

// ComputeTotals derives the money breakdown from an item list. It is a
// pure function of its input: subtotal is the sum of price x quantity,
// tax is a fixed 10% of that, total their sum. An empty list yields
// zero totals.
func ComputeTotals(items []models.OrderItem) models.OrderTotals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return models.OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// ValidateDeliveryDetails checks all three fields together and reports
// every failing field at once.
func ValidateDeliveryDetails(d models.DeliveryDetails) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}

	if strings.TrimSpace(d.PhoneNumber) == "" {
		errs["phoneNumber"] = "Phone number is required"
	} else if len(digitsOf(d.PhoneNumber)) != 10 {
		errs["phoneNumber"] = "Please enter a valid 10-digit phone number"
	}

	if strings.TrimSpace(d.Address) == "" {
		errs["address"] = "Delivery address is required"
	}

	return errs
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildSummary takes the browsing-to-summary transition: it snapshots
// the session's cart into order items and totals. An empty cart is a
// terminal "nothing to check out" state and does not advance.
func (s *checkoutServiceImpl) BuildSummary(ctx context.Context, sessionID string) (*models.OrderSummary, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart for summary", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}

	if cart == nil || cart.TotalItemCount() == 0 {
		return nil, &ServiceError{StatusCode: 409, Message: "Nothing to check out"}
	}

	items := cart.ToOrderItems()
	return &models.OrderSummary{
		Stage:          models.StageSummary,
		RestaurantID:   cart.RestaurantID,
		RestaurantName: cart.RestaurantName,
		Items:          items,
		EncodedItems:   models.EncodeOrderItems(items),
		Totals:         ComputeTotals(items),
	}, nil
}

// PreviewPayment takes the summary-to-payment transition. A missing or
// malformed snapshot decodes to an empty order: the funnel stays put
// and the caller renders the empty state.
func (s *checkoutServiceImpl) PreviewPayment(req models.PaymentPreviewRequest) *models.PaymentPreview {
	items := models.DecodeOrderItems(req.Items)
	if len(items) == 0 {
		return &models.PaymentPreview{Stage: models.StageSummary, Empty: true}
	}

	return &models.PaymentPreview{
		Stage:          models.StagePayment,
		RestaurantName: req.RestaurantName,
		Items:          items,
		EncodedItems:   models.EncodeOrderItems(items),
		Totals:         ComputeTotals(items),
	}
}

// ConfirmOrder takes the payment-to-confirmation transition: validate
// delivery details and payment method, run payment authorization, then
// mint the order id and delivery estimate. The session's cart is
// discarded once the confirmation exists.
func (s *checkoutServiceImpl) ConfirmOrder(ctx context.Context, sessionID string, req models.ConfirmOrderRequest) (*models.OrderConfirmation, *ServiceError) {
	items := models.DecodeOrderItems(req.Items)
	if len(items) == 0 {
		return nil, &ServiceError{StatusCode: 409, Message: "Nothing to check out"}
	}

	fieldErrs := ValidateDeliveryDetails(req.Delivery())
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		fieldErrs["paymentMethod"] = "Select a payment method"
	}
	if len(fieldErrs) > 0 {
		return nil, &ServiceError{
			StatusCode: 400,
			Message:    "Validation failed",
			Fields:     fieldErrs,
		}
	}

	totals := ComputeTotals(items)

	if err := s.authorizer.Authorize(ctx, totals.Total, req.PaymentMethod); err != nil {
		s.logger.Error("Payment authorization failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 502, Message: "Payment failed"}
	}

	now := time.Now()
	confirmation := &models.OrderConfirmation{
		OrderID:           fmt.Sprintf("ORD-%d", now.UnixMilli()),
		RestaurantName:    req.RestaurantName,
		Items:             items,
		Totals:            totals,
		Delivery:          req.Delivery(),
		PaymentMethod:     req.PaymentMethod,
		EstimatedDelivery: now.Add(s.deliveryEstimate),
	}

	if err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to discard cart after confirmation",
			zap.String("session_id", sessionID), zap.Error(err))
	}

	if s.publisher != nil {
		event := models.OrderConfirmedEvent{
			Event:          "order.confirmed",
			OrderID:        confirmation.OrderID,
			SessionID:      sessionID,
			RestaurantName: confirmation.RestaurantName,
			Items:          items,
			Total:          totals.Total,
			PaymentMethod:  req.PaymentMethod,
			Timestamp:      now,
		}
		if err := s.publisher.PublishOrderConfirmed(ctx, event); err != nil {
			s.logger.Warn("Failed to publish order.confirmed event",
				zap.String("order_id", confirmation.OrderID), zap.Error(err))
		}
	}

	s.logger.Info("Order confirmed",
		zap.String("order_id", confirmation.OrderID),
		zap.String("payment_method", req.PaymentMethod),
		zap.Float64("total", totals.Total),
	)

	return confirmation, nil
}
