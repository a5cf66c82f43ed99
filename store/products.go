package store

import (
	"sync"

	"quickcart/models"
)

type ProductStore struct {
	mu     sync.RWMutex
	items  []models.Product
	nextID int
}

func newProductStore(seed []models.Product) *ProductStore {
	s := &ProductStore{items: seed, nextID: 1}
	for _, p := range seed {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// All returns a copy of the collection.
func (s *ProductStore) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ProductStore) Get(id int) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Create assigns the next id and appends the product.
func (s *ProductStore) Create(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.items = append(s.items, p)
	return p
}

// Update applies fn to the stored product under the write lock and returns
// the updated copy.
func (s *ProductStore) Update(id int, fn func(*models.Product)) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			s.items[i].ID = id
			return s.items[i], true
		}
	}
	return models.Product{}, false
}

func (s *ProductStore) Delete(id int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return p, true
		}
	}
	return models.Product{}, false
}
