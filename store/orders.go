package store

import (
	"fmt"
	"sync"
	"time"

	"quickcart/models"
)

type OrderStore struct {
	mu      sync.Mutex
	items   []models.Order
	nextID  int
	orderNo int // running order-number counter, not crash-safe
}

func newOrderStore(seed []models.Order) *OrderStore {
	s := &OrderStore{items: seed, nextID: 1, orderNo: len(seed) + 1}
	for _, o := range seed {
		if o.ID >= s.nextID {
			s.nextID = o.ID + 1
		}
	}
	return s
}

func (s *OrderStore) All() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.items))
	copy(out, s.items)
	return out
}

func (s *OrderStore) Get(id int) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.items {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Create assigns the next id and a sequential order number of the form
// ORD-<year>-<NNN>, then appends the order.
func (s *OrderStore) Create(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextID
	s.nextID++
	o.OrderNumber = fmt.Sprintf("ORD-%d-%03d", time.Now().Year(), s.orderNo)
	s.orderNo++
	s.items = append(s.items, o)
	return o
}

func (s *OrderStore) Update(id int, fn func(*models.Order)) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			s.items[i].ID = id
			return s.items[i], true
		}
	}
	return models.Order{}, false
}

func (s *OrderStore) Delete(id int) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.items {
		if o.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return o, true
		}
	}
	return models.Order{}, false
}
