package models

import "time"

// CartEntry pairs a menu item with the quantity currently selected.
// An entry with quantity 0 is never stored; it is removed instead.
type CartEntry struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Cart holds one session's selection for a single restaurant. Entries
// keep insertion order so that snapshots and totals come out the same
// on every read of the same cart state.
type Cart struct {
	SessionID      string      `json:"session_id"`
	RestaurantID   string      `json:"restaurant_id"`
	RestaurantName string      `json:"restaurant_name"`
	Entries        []CartEntry `json:"entries"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewCart returns an empty cart for a session browsing the given restaurant.
func NewCart(sessionID, restaurantID, restaurantName string) *Cart {
	return &Cart{
		SessionID:      sessionID,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		Entries:        []CartEntry{},
	}
}

// SetQuantity upserts the entry for item when quantity > 0 and removes
// it when quantity <= 0. An existing entry keeps its position; a new
// entry is appended. Repeated calls for the same item overwrite, so only
// the most recent quantity is observable.
func (c *Cart) SetQuantity(item MenuItem, quantity int) {
	for i, e := range c.Entries {
		if e.Item.ID == item.ID {
			if quantity <= 0 {
				c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
			} else {
				c.Entries[i] = CartEntry{Item: item, Quantity: quantity}
			}
			return
		}
	}
	if quantity > 0 {
		c.Entries = append(c.Entries, CartEntry{Item: item, Quantity: quantity})
	}
}

// Quantity reports the stored quantity for a menu item id, 0 if absent.
func (c *Cart) Quantity(itemID string) int {
	for _, e := range c.Entries {
		if e.Item.ID == itemID {
			return e.Quantity
		}
	}
	return 0
}

// TotalItemCount sums the quantities of all entries.
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, e := range c.Entries {
		total += e.Quantity
	}
	return total
}

// ToOrderItems projects the cart into denormalized order items, one per
// entry in insertion order. The copies survive independently of the
// catalog records they came from.
func (c *Cart) ToOrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Entries))
	for _, e := range c.Entries {
		items = append(items, OrderItem{
			ID:       e.Item.ID,
			Name:     e.Item.Name,
			Price:    e.Item.Price,
			Quantity: e.Quantity,
		})
	}
	return items
}
