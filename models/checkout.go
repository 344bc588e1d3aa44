package models

// OrderSummary is the snapshot produced when the funnel moves from
// browsing to the summary stage. EncodedItems is the textual form the
// next stage consumes; Items and Totals are the decoded view for
// rendering.
type OrderSummary struct {
	Stage          string      `json:"stage"`
	RestaurantID   string      `json:"restaurantId"`
	RestaurantName string      `json:"restaurantName"`
	Items          []OrderItem `json:"items"`
	EncodedItems   string      `json:"encodedItems"`
	Totals         OrderTotals `json:"totals"`
}

// PaymentPreviewRequest carries the summary-stage snapshot forward to
// the payment stage.
type PaymentPreviewRequest struct {
	Items          string `json:"items"`
	RestaurantName string `json:"restaurantName"`
}

// PaymentPreview is what the payment stage renders. Totals are always
// recomputed from the item list; the total is never reverse-derived
// from a previously rounded figure.
type PaymentPreview struct {
	Stage          string      `json:"stage"`
	Empty          bool        `json:"empty"`
	RestaurantName string      `json:"restaurantName,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
	EncodedItems   string      `json:"encodedItems,omitempty"`
	Totals         OrderTotals `json:"totals"`
}

// ConfirmOrderRequest carries everything the payment stage collected:
// the snapshot plus delivery details and the chosen payment method.
type ConfirmOrderRequest struct {
	Items          string `json:"items"`
	RestaurantName string `json:"restaurantName"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Address        string `json:"address"`
	PaymentMethod  string `json:"paymentMethod"`
}

// Delivery returns the delivery-details block of the request.
func (r ConfirmOrderRequest) Delivery() DeliveryDetails {
	return DeliveryDetails{
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
}
