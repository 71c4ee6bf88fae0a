package totals

import (
	"math"
	"testing"

	"invoicer/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name         string
		items        []entities.LineItem
		gstRate      float64
		discountRate float64
		want         entities.Totals
	}{
		{
			name:  "sum of pairwise products",
			items: []entities.LineItem{{Quantity: 2, Amount: 10}, {Quantity: 1, Amount: 5}},
			want:  entities.Totals{Subtotal: 25, Total: 25},
		},
		{
			name:         "gst and discount on subtotal",
			items:        []entities.LineItem{{Quantity: 1, Amount: 100}},
			gstRate:      10,
			discountRate: 5,
			want:         entities.Totals{Subtotal: 100, GST: 10, Discount: 5, Total: 105},
		},
		{
			name:         "empty items ignore rates",
			items:        nil,
			gstRate:      18,
			discountRate: 50,
			want:         entities.Totals{},
		},
		{
			name:  "zero quantity contributes nothing",
			items: []entities.LineItem{{Description: "x", Quantity: 0, Amount: 5}, {Quantity: 3, Amount: 2}},
			want:  entities.Totals{Subtotal: 6, Total: 6},
		},
		{
			name:  "non-finite values count as zero",
			items: []entities.LineItem{{Quantity: math.NaN(), Amount: 5}, {Quantity: 2, Amount: math.Inf(1)}, {Quantity: 4, Amount: 1}},
			want:  entities.Totals{Subtotal: 4, Total: 4},
		},
		{
			name:    "negative values are multiplied as given",
			items:   []entities.LineItem{{Quantity: -1, Amount: 10}},
			gstRate: 10,
			want:    entities.Totals{Subtotal: -10, GST: -1, Total: -11},
		},
		{
			name:         "rates are not clamped",
			items:        []entities.LineItem{{Quantity: 1, Amount: 10}},
			gstRate:      200,
			discountRate: 150,
			want:         entities.Totals{Subtotal: 10, GST: 20, Discount: 15, Total: 15},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.items, tc.gstRate, tc.discountRate)
			assert.InDelta(t, tc.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tc.want.GST, got.GST, 1e-9)
			assert.InDelta(t, tc.want.Discount, got.Discount, 1e-9)
			assert.InDelta(t, tc.want.Total, got.Total, 1e-9)
		})
	}
}

func TestCalculate_TotalIdentity(t *testing.T) {
	items := []entities.LineItem{{Quantity: 3, Amount: 19.99}, {Quantity: 7, Amount: 0.5}}
	for _, gst := range []float64{0, 5, 12.5, 100} {
		for _, disc := range []float64{0, 2.5, 50, 100} {
			got := Calculate(items, gst, disc)
			want := got.Subtotal + got.Subtotal*gst/100 - got.Subtotal*disc/100
			assert.InDelta(t, want, got.Total, 1e-9, "gst=%v discount=%v", gst, disc)
		}
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	items := []entities.LineItem{{Description: "a", Quantity: 2, Amount: 10.25}}
	first := Calculate(items, 10, 3)
	second := Calculate(items, 10, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, 2.0, items[0].Quantity, "input must not be mutated")
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "105.00 USD", FormatUSD(105))
	assert.Equal(t, "0.10 USD", FormatUSD(0.1))
	assert.Equal(t, "2.35 USD", FormatUSD(2.345))
	assert.Equal(t, "0.00 USD", FormatUSD(math.NaN()))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.13, Round2(10.125))
	assert.Equal(t, 0.0, Round2(math.Inf(-1)))
}
