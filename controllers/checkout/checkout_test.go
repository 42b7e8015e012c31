package checkoutcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jrgn63/keyking/cart"
	"github.com/Jrgn63/keyking/models"
)

func TestLineItemsConvertToMinorUnits(t *testing.T) {
	twenty := 20
	items := []cart.Item{
		{
			Product: models.Product{
				ID:        "kb",
				Name:      "Mechanical Keyboard TKL",
				Price:     129.99,
				Stock:     5,
				ImageURLs: []string{"/kb-front.jpg", "/kb-side.jpg"},
			},
			Quantity: 1,
		},
		{
			Product: models.Product{
				ID:       "sw",
				Name:     "Linear Switches",
				Price:    10,
				Discount: &twenty,
				Stock:    100,
			},
			Quantity: 3,
		},
	}

	out := lineItems(items)
	require.Len(t, out, 2)

	assert.Equal(t, "kb", out[0].ProductID)
	assert.Equal(t, int64(12999), out[0].UnitPrice)
	assert.Equal(t, 1, out[0].Quantity)
	assert.Equal(t, "/kb-front.jpg", out[0].ImageURL) // primary image only

	// Discount applied before conversion: 10 * 0.8 = 8.00 -> 800.
	assert.Equal(t, int64(800), out[1].UnitPrice)
	assert.Equal(t, 3, out[1].Quantity)
	assert.Equal(t, "", out[1].ImageURL)
}

func TestLineItemsRoundToNearest(t *testing.T) {
	thirtyThree := 33
	items := []cart.Item{
		{
			Product:  models.Product{ID: "x", Name: "x", Price: 9.99, Discount: &thirtyThree, Stock: 1},
			Quantity: 1,
		},
	}

	// 9.99 * 0.67 = 6.6933 -> 669.33 -> 669
	out := lineItems(items)
	require.Len(t, out, 1)
	assert.Equal(t, int64(669), out[0].UnitPrice)
}
