package catalog

import (
	"errors"
	"sync"

	"github.com/noah-isme/megamart-checkout/internal/domain"
	"github.com/noah-isme/megamart-checkout/internal/inventory"
	"github.com/noah-isme/megamart-checkout/internal/pricing"
)

// Store owns the inventory and discount mappings for the running process.
// Checkout mutates the inventory in place, so all access goes through the
// store's lock; Session serializes whole checkouts as the engine requires.
type Store struct {
	mu        sync.Mutex
	inventory inventory.Inventory
	discounts pricing.Discounts
}

// NewStore builds a store around the provided mappings.
func NewStore(inv inventory.Inventory, discounts pricing.Discounts) *Store {
	if inv == nil {
		inv = inventory.Inventory{}
	}
	if discounts == nil {
		discounts = pricing.Discounts{}
	}
	return &Store{inventory: inv, discounts: discounts}
}

// Item returns the catalog item for the given ID.
func (s *Store) Item(id string) (*domain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.inventory[id]
	if !ok || rec == nil {
		return nil, false
	}
	return rec.Item, true
}

// Session runs fn while holding the catalog lock, passing the live
// inventory and discount mappings. fn must not retain them.
func (s *Store) Session(fn func(inventory.Inventory, pricing.Discounts) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.inventory, s.discounts)
}

// Snapshot returns a copy of every stock record for read-only listings.
func (s *Store) Snapshot() []inventory.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]inventory.Record, 0, len(s.inventory))
	for _, rec := range s.inventory {
		if rec == nil {
			continue
		}
		copied := *rec
		if rec.Limit != nil {
			limit := *rec.Limit
			copied.Limit = &limit
		}
		out = append(out, copied)
	}
	return out
}

// Discount returns the active discount for an item, if any.
func (s *Store) Discount(itemID string) (domain.Discount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.discounts[itemID]
	return d, ok
}

// Healthy reports whether the store holds a usable catalog.
func (s *Store) Healthy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.inventory) == 0 {
		return errors.New("catalog is empty")
	}
	return nil
}
