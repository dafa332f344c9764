package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTotal(t *testing.T) {
	assert.Equal(t, 300.0, Total(300, 1, false))
	assert.Equal(t, 900.0, Total(300, 3, false))
	assert.InDelta(t, 810.0, Total(300, 3, true), 1e-9)
	assert.InDelta(t, 270.0, Total(300, 1, true), 1e-9)
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "300", FormatTotal(300))
	assert.Equal(t, "810", FormatTotal(810))
	assert.Equal(t, "270", FormatTotal(270))
}

func TestTotalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		unit := rapid.Float64Range(1, 10000).Draw(t, "unit")
		qty := rapid.IntRange(1, 50).Draw(t, "qty")

		full := Total(unit, qty, false)
		discounted := Total(unit, qty, true)

		if full != unit*float64(qty) {
			t.Fatalf("full price mismatch: %v", full)
		}
		if discounted >= full {
			t.Fatalf("discounted %v not below full %v", discounted, full)
		}
		// discount is exactly 10 percent
		if diff := discounted - full*0.9; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("discount is not 10%%: %v vs %v", discounted, full*0.9)
		}
	})
}

func TestTicketSelectionClamp(t *testing.T) {
	sel := NewTicketSelection()
	assert.Equal(t, 1, sel.Quantity())

	sel.Decrement()
	assert.Equal(t, 1, sel.Quantity(), "decrement below 1 is a no-op")

	sel.Increment()
	sel.Increment()
	assert.Equal(t, 3, sel.Quantity())

	sel.Decrement()
	assert.Equal(t, 2, sel.Quantity())

	sel.SetQuantity(-5)
	assert.Equal(t, 1, sel.Quantity())
}

func TestTicketSelectionReset(t *testing.T) {
	sel := NewTicketSelection()
	sel.SetQuantity(4)
	sel.ApplyPromo("PROMO2024", "PROMO2024")
	assert.True(t, sel.Discounted())

	sel.Reset()
	assert.Equal(t, 1, sel.Quantity())
	assert.False(t, sel.Discounted())
	assert.Equal(t, PromoDefault, sel.Indicator())
}

func TestApplyPromo(t *testing.T) {
	sel := NewTicketSelection()

	sel.ApplyPromo("PROMO2024", "PROMO2024")
	assert.True(t, sel.Discounted())
	assert.Equal(t, PromoSuccess, sel.Indicator())
	assert.InDelta(t, 270.0, sel.Total(300), 1e-9)

	// mismatch clears the discount; comparison is case-sensitive
	sel.ApplyPromo("promo2024", "PROMO2024")
	assert.False(t, sel.Discounted())
	assert.Equal(t, PromoError, sel.Indicator())
	assert.Equal(t, 300.0, sel.Total(300))

	// blank input changes nothing
	sel.ApplyPromo("PROMO2024", "PROMO2024")
	sel.ApplyPromo("", "PROMO2024")
	assert.True(t, sel.Discounted())

	// an unset configured code never matches
	fresh := NewTicketSelection()
	fresh.ApplyPromo("anything", "")
	assert.False(t, fresh.Discounted())
}

func TestPromoIndicatorExpiry(t *testing.T) {
	now := time.Now()
	sel := newTicketSelectionAt(func() time.Time { return now })

	sel.ApplyPromo("wrong", "PROMO2024")
	assert.Equal(t, PromoError, sel.Indicator())

	now = now.Add(4 * time.Second)
	assert.Equal(t, PromoError, sel.Indicator())

	now = now.Add(time.Second)
	assert.Equal(t, PromoDefault, sel.Indicator(), "indicator reverts after 5s")

	// the discount flag itself is unaffected by indicator expiry
	sel.ApplyPromo("PROMO2024", "PROMO2024")
	now = now.Add(10 * time.Second)
	assert.Equal(t, PromoDefault, sel.Indicator())
	assert.True(t, sel.Discounted())
}
