package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// API responses must use the same snake_case keys the request bodies bind to.
func TestQuotationSerializesWithSnakeCaseKeys(t *testing.T) {
	q := Quotation{
		QuotationNumber: "ZSP-202501-0042",
		LineItems: []LineItem{
			{Description: "Development", Quantity: 1, UnitPrice: 150},
		},
		ClientName: "Tariro Moyo",
	}

	content, err := json.Marshal(q)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(content, &keys))

	assert.Contains(t, keys, "quotation_number")
	assert.Contains(t, keys, "line_items")
	assert.Contains(t, keys, "client_name")
	assert.Contains(t, keys, "valid_until")
	assert.NotContains(t, keys, "QuotationNumber")
	assert.NotContains(t, keys, "LineItems")
}

func TestPaymentSerializesWithSnakeCaseKeys(t *testing.T) {
	content, err := json.Marshal(Payment{Method: "ecocash"})
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(content, &keys))

	assert.Contains(t, keys, "customer_id")
	assert.Contains(t, keys, "paid_at")
	assert.Contains(t, keys, "customer_name")
	assert.NotContains(t, keys, "CustomerID")
}
