package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-service/models"
)

func TestEncodeDecodeOrderItems_RoundTrip(t *testing.T) {
	items := []models.OrderItem{
		{ID: "item-1", Name: "Burger", Price: 8.00, Quantity: 2},
		{ID: "item-2", Name: "Fries", Price: 3.50, Quantity: 1},
		{ID: "item-3", Name: "Cola", Price: 2.00, Quantity: 4},
	}

	decoded := models.DecodeOrderItems(models.EncodeOrderItems(items))

	assert.Equal(t, items, decoded)
}

func TestDecodeOrderItems_AbsentPayload(t *testing.T) {
	items := models.DecodeOrderItems("")

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDecodeOrderItems_MalformedPayload(t *testing.T) {
	for _, payload := range []string{
		"not json",
		"{\"id\":\"x\"}",
		"[{\"id\":",
		"null",
	} {
		items := models.DecodeOrderItems(payload)
		assert.NotNil(t, items, "payload %q", payload)
		assert.Empty(t, items, "payload %q", payload)
	}
}

func TestEncodeOrderItems_NilEncodesAsEmptyList(t *testing.T) {
	assert.Equal(t, "[]", models.EncodeOrderItems(nil))
}

func TestOrderTotals_Rounded(t *testing.T) {
	totals := models.OrderTotals{Subtotal: 16.004, Tax: 1.6004, Total: 17.6044}

	rounded := totals.Rounded()

	assert.Equal(t, 16.00, rounded.Subtotal)
	assert.Equal(t, 1.60, rounded.Tax)
	assert.Equal(t, 17.60, rounded.Total)
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, models.ValidPaymentMethod(models.PaymentMethodUPI))
	assert.True(t, models.ValidPaymentMethod(models.PaymentMethodCard))
	assert.True(t, models.ValidPaymentMethod(models.PaymentMethodCOD))
	assert.False(t, models.ValidPaymentMethod(""))
	assert.False(t, models.ValidPaymentMethod("bitcoin"))
}

func TestGroupMenuByCategory(t *testing.T) {
	items := []models.MenuItem{
		{ID: "1", Category: "desserts", Name: "Gelato"},
		{ID: "2", Category: "mains", Name: "Lasagna"},
		{ID: "3", Category: "mains", Name: "Risotto"},
	}

	sections := models.GroupMenuByCategory(items)

	assert.Len(t, sections, 2)
	assert.Equal(t, "desserts", sections[0].Category)
	assert.Len(t, sections[0].Items, 1)
	assert.Equal(t, "mains", sections[1].Category)
	assert.Len(t, sections[1].Items, 2)
}
