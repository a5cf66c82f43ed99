package store

import (
	"sync"

	"quickcart/models"
)

type CategoryStore struct {
	mu     sync.RWMutex
	items  []models.Category
	nextID int
}

func newCategoryStore(seed []models.Category) *CategoryStore {
	s := &CategoryStore{items: seed, nextID: 1}
	for _, c := range seed {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s
}

func (s *CategoryStore) All() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CategoryStore) Get(id int) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *CategoryStore) GetBySlug(slug string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *CategoryStore) Create(c models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID
	s.nextID++
	s.items = append(s.items, c)
	return c
}

func (s *CategoryStore) Update(id int, fn func(*models.Category)) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			s.items[i].ID = id
			return s.items[i], true
		}
	}
	return models.Category{}, false
}

func (s *CategoryStore) Delete(id int) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.items {
		if c.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return c, true
		}
	}
	return models.Category{}, false
}
