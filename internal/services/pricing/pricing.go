// Package pricing owns the raffle economics the form client renders:
// unit ticket price, purchase bounds and quote computation. Prices are held
// in cents so quotes never accumulate float error.
package pricing

import "math"

const (
	// DefaultUnitPriceCents is the ticket price when none is configured,
	// R$ 3,49.
	DefaultUnitPriceCents = 349

	// MinTickets and MaxTickets bound a single purchase.
	MinTickets = 1
	MaxTickets = 50
)

// Config holds the configurable pricing knobs.
type Config struct {
	UnitPriceCents int
}

// Quote is a priced ticket purchase.
type Quote struct {
	Tickets   int     `json:"tickets"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
}

// Service computes quotes and cross-checks client-computed amounts.
type Service struct {
	cfg Config
}

// NewService creates a pricing service, falling back to the default ticket
// price for non-positive configuration.
func NewService(cfg Config) *Service {
	if cfg.UnitPriceCents <= 0 {
		cfg.UnitPriceCents = DefaultUnitPriceCents
	}
	return &Service{cfg: cfg}
}

// UnitPrice returns the price of one ticket in BRL.
func (s *Service) UnitPrice() float64 {
	return float64(s.cfg.UnitPriceCents) / 100
}

// ClampTickets bounds a requested ticket count to the sellable range.
func (s *Service) ClampTickets(n int) int {
	if n < MinTickets {
		return MinTickets
	}
	if n > MaxTickets {
		return MaxTickets
	}
	return n
}

// Quote prices a purchase of n tickets, clamping n first.
func (s *Service) Quote(n int) Quote {
	n = s.ClampTickets(n)
	return Quote{
		Tickets:   n,
		UnitPrice: s.UnitPrice(),
		Total:     float64(int64(n)*int64(s.cfg.UnitPriceCents)) / 100,
		Currency:  "BRL",
	}
}

// AmountMatches reports whether a client-computed amount agrees with the
// ticket count within one cent. The proxy trusts the amount either way; a
// mismatch is only worth a warning log.
func (s *Service) AmountMatches(tickets int, amount float64) bool {
	expected := float64(int64(tickets)*int64(s.cfg.UnitPriceCents)) / 100
	return math.Abs(expected-amount) < 0.01
}
