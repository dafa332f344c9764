package forms

import (
	"strconv"
	"time"
)

// Discount multiplier applied when a valid promo code has been entered.
const promoDiscount = 0.9

// How long a promo indicator stays visible before reverting to default.
const promoIndicatorTTL = 5 * time.Second

// Total computes the ticket price total. The result is always derived
// from the current inputs; nothing is cached between recomputations.
func Total(unitPrice float64, quantity int, discounted bool) float64 {
	multiplier := 1.0
	if discounted {
		multiplier = promoDiscount
	}
	return unitPrice * float64(quantity) * multiplier
}

// FormatTotal renders a total the way the payment channel expects it.
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}

// Promo indicator states shown next to the promo input.
type PromoIndicator string

const (
	PromoDefault PromoIndicator = "default"
	PromoSuccess PromoIndicator = "success"
	PromoError   PromoIndicator = "error"
)

// TicketSelection is the per-visit ticket state: quantity and whether a
// promo discount applies. A fresh selection starts at one ticket with no
// discount, and Reset returns it to that state; selections are scoped to
// a single form session and never shared between visits.
type TicketSelection struct {
	quantity   int
	discounted bool

	indicator   PromoIndicator
	indicatorAt time.Time

	now func() time.Time
}

// NewTicketSelection returns a selection of one undiscounted ticket.
func NewTicketSelection() *TicketSelection {
	return &TicketSelection{quantity: 1, indicator: PromoDefault, now: time.Now}
}

// newTicketSelectionAt is the test hook for the indicator clock.
func newTicketSelectionAt(now func() time.Time) *TicketSelection {
	s := NewTicketSelection()
	s.now = now
	return s
}

// Reset returns the selection to one undiscounted ticket.
func (s *TicketSelection) Reset() {
	s.quantity = 1
	s.discounted = false
	s.indicator = PromoDefault
}

func (s *TicketSelection) Quantity() int    { return s.quantity }
func (s *TicketSelection) Discounted() bool { return s.discounted }

// SetQuantity clamps the requested quantity to a minimum of one.
func (s *TicketSelection) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	s.quantity = n
}

// Increment adds one ticket.
func (s *TicketSelection) Increment() {
	s.quantity++
}

// Decrement removes one ticket; going below one is a no-op.
func (s *TicketSelection) Decrement() {
	if s.quantity > 1 {
		s.quantity--
	}
}

// ApplyPromo compares the entered code against the configured one,
// case-sensitively. A match enables the discount; a mismatch disables
// it and shows an error indicator. Blank input changes nothing.
func (s *TicketSelection) ApplyPromo(entered, configured string) {
	if entered == "" {
		return
	}
	valid := entered == configured && configured != ""
	s.discounted = valid
	if valid {
		s.indicator = PromoSuccess
	} else {
		s.indicator = PromoError
	}
	s.indicatorAt = s.now()
}

// Indicator reports the current promo indicator; error and success
// states revert to default after five seconds.
func (s *TicketSelection) Indicator() PromoIndicator {
	if s.indicator != PromoDefault && s.now().Sub(s.indicatorAt) >= promoIndicatorTTL {
		return PromoDefault
	}
	return s.indicator
}

// Total computes the current total for this selection.
func (s *TicketSelection) Total(unitPrice float64) float64 {
	return Total(unitPrice, s.quantity, s.discounted)
}
