package models

import (
	"encoding/json"
	"math"
	"time"
)

// OrderItem is a serializable snapshot of one cart entry. It is the
// unit that crosses checkout-stage boundaries as text.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderTotals carries the money breakdown for an order snapshot.
// Values are kept at full float precision; rounding happens only when
// a response is built, via Rounded.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Rounded returns the totals rounded to 2 decimal places for display.
func (t OrderTotals) Rounded() OrderTotals {
	return OrderTotals{
		Subtotal: round2(t.Subtotal),
		Tax:      round2(t.Tax),
		Total:    round2(t.Total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeliveryDetails is the address block collected on the payment page.
type DeliveryDetails struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// Payment methods offered at checkout. The wire tags match what the
// storefront sends.
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

// ValidPaymentMethod reports whether m is one of the offered methods.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodUPI || m == PaymentMethodCard || m == PaymentMethodCOD
}

// Checkout funnel stages. The funnel only ever moves forward; going
// back in the browser is a navigation concern, not a state change.
const (
	StageBrowsing     = "browsing"
	StageSummary      = "summary"
	StagePayment      = "payment"
	StageConfirmation = "confirmation"
)

// OrderConfirmation is generated at entry to the confirmation stage.
// Nothing here is backed by a server record: the id and estimate are
// minted on the spot and live only in the response.
type OrderConfirmation struct {
	OrderID           string          `json:"orderId"`
	RestaurantName    string          `json:"restaurantName"`
	Items             []OrderItem     `json:"items"`
	Totals            OrderTotals     `json:"totals"`
	Delivery          DeliveryDetails `json:"delivery"`
	PaymentMethod     string          `json:"paymentMethod"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}

// OrderConfirmedEvent is published to Kafka after a confirmation is
// produced, when a broker is configured.
type OrderConfirmedEvent struct {
	Event          string      `json:"event"` // "order.confirmed"
	OrderID        string      `json:"order_id"`
	SessionID      string      `json:"session_id"`
	RestaurantName string      `json:"restaurant_name"`
	Items          []OrderItem `json:"items"`
	Total          float64     `json:"total"`
	PaymentMethod  string      `json:"payment_method"`
	Timestamp      time.Time   `json:"timestamp"`
}

// EncodeOrderItems serializes an item list to the textual form carried
// between checkout stages.
func EncodeOrderItems(items []OrderItem) string {
	if items == nil {
		items = []OrderItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeOrderItems parses the textual form back into an item list.
// Absent or malformed input decodes to an empty list rather than an
// error: a broken payload means an empty order, never a failed page.
func DecodeOrderItems(encoded string) []OrderItem {
	if encoded == "" {
		return []OrderItem{}
	}
	var items []OrderItem
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return []OrderItem{}
	}
	if items == nil {
		return []OrderItem{}
	}
	return items
}
