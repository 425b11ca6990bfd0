// Package store holds the in-memory order cache shared by the handlers and
// the workflow controller. The original dashboard relied on a single-threaded
// event loop to serialize mutations; on a multi-threaded runtime that
// guarantee has to come from an explicit lock, which lives here.
package store

import (
	"sync"

	"translation-admin-backend/internal/models"
)

type Store struct {
	mu     sync.RWMutex
	orders []models.Order
}

func New() *Store {
	return &Store{}
}

// SetOrders replaces the whole cached list, preserving the given order. The
// projection engine depends on input order for dedup determinism.
func (s *Store) SetOrders(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]models.Order, len(orders))
	copy(s.orders, orders)
}

// Orders returns a copy of the cached list so callers can project and filter
// without holding the lock.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Get(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

// PatchOrder applies patch to the cached order with the given id and reports
// whether it was found.
func (s *Store) PatchOrder(orderID string, patch func(*models.Order)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			patch(&s.orders[i])
			return true
		}
	}
	return false
}

// PatchClientOrders applies patch to every cached order carrying the given
// clientId and returns how many were touched. Client edits fan out this way
// because the client is only a projection of its orders.
func (s *Store) PatchClientOrders(clientID string, patch func(*models.Order)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.orders {
		if s.orders[i].ClientID == clientID {
			patch(&s.orders[i])
			count++
		}
	}
	return count
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
