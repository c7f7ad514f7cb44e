package cart

import (
	"sync"

	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
)

// Store holds one ledger per browse session. A browser tab owns its state
// implicitly; here each session cookie owns a ledger instead. The catalogue
// snapshot it initializes from is immutable, so the mutex only guards the
// session map and ledger mutations.
type Store struct {
	mu       sync.Mutex
	products []catalog.Product
	currency string
	ledgers  map[string]Ledger
}

// NewStore builds a session store over the catalogue snapshot. currency is
// the configured default symbol for aggregates; blank falls back to the
// fixed default.
func NewStore(products []catalog.Product, currency string) *Store {
	return &Store{
		products: products,
		currency: currency,
		ledgers:  make(map[string]Ledger),
	}
}

// ledgerLocked returns the session's ledger, creating and seeding it from the
// catalogue quantity hints on first access. Callers must hold mu.
func (s *Store) ledgerLocked(sessionID string) Ledger {
	ledger, ok := s.ledgers[sessionID]
	if !ok {
		ledger = NewLedger()
		ledger.Initialize(s.products)
		s.ledgers[sessionID] = ledger
	}
	return ledger
}

// SetQuantity writes a coerced quantity into the session's ledger and
// returns the normalized value alongside the fresh aggregate.
func (s *Store) SetQuantity(sessionID, sku, raw string) (int, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ledger := s.ledgerLocked(sessionID)
	qty := ledger.SetQuantity(sku, raw)
	return qty, ledger.AggregateWith(s.products, s.currency)
}

// Clear zeroes the session's ledger and returns the resulting aggregate.
func (s *Store) Clear(sessionID string) Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	ledger := s.ledgerLocked(sessionID)
	ledger.Clear()
	return ledger.AggregateWith(s.products, s.currency)
}

// View returns a read-only copy of the session's quantities plus the
// aggregate, for the render path.
func (s *Store) View(sessionID string) (map[string]int, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ledger := s.ledgerLocked(sessionID)
	return ledger.Snapshot(), ledger.AggregateWith(s.products, s.currency)
}
