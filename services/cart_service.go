package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-service/database"
	"storefront-service/models"
)

// ServiceError is a typed error with an HTTP status code. Fields holds
// per-field validation messages when the error is a validation failure.
type ServiceError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *ServiceError) Error() string { return e.Message }

// CartService owns the session cart: reads, quantity mutations, and
// clearing. Every mutation is a synchronous reaction to one user
// action; there is exactly one writer per session.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, *ServiceError)
	SetItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.Cart, *ServiceError)
	ClearCart(ctx context.Context, sessionID string) *ServiceError
}

type cartServiceImpl struct {
	carts   database.CartRepository
	catalog database.CatalogRepository
	logger  *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(carts database.CartRepository, catalog database.CatalogRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		carts:   carts,
		catalog: catalog,
		logger:  logger,
	}
}

// GetCart returns the session's cart, an empty one when none is stored.
func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) (*models.Cart, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}
	if cart == nil {
		cart = models.NewCart(sessionID, "", "")
	}
	return cart, nil
}

// SetItemQuantity looks the item up in the catalog and upserts or
// removes its cart entry. Negative quantities are clamped to 0, which
// removes the entry. A cart holds items from one restaurant; selecting
// an item from a different restaurant starts a fresh cart.
func (s *cartServiceImpl) SetItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.Cart, *ServiceError) {
	if quantity < 0 {
		quantity = 0
	}

	item, err := s.catalog.FindMenuItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Menu item not found"}
		}
		s.logger.Error("Failed to look up menu item", zap.String("item_id", itemID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 502, Message: "Catalog unavailable"}
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}

	if cart == nil || cart.RestaurantID != item.RestaurantID {
		restaurant, err := s.catalog.FindRestaurant(ctx, item.RestaurantID)
		if err != nil {
			s.logger.Error("Failed to look up restaurant", zap.String("restaurant_id", item.RestaurantID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 502, Message: "Catalog unavailable"}
		}
		cart = models.NewCart(sessionID, restaurant.ID, restaurant.Name)
	}

	cart.SetQuantity(*item, quantity)

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save cart"}
	}

	return cart, nil
}

// ClearCart removes all items from the session's cart.
func (s *cartServiceImpl) ClearCart(ctx context.Context, sessionID string) *ServiceError {
	if err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to clear cart"}
	}
	return nil
}
