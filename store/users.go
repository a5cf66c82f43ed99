package store

import (
	"strings"
	"sync"

	"quickcart/models"
)

type UserStore struct {
	mu     sync.RWMutex
	items  []models.User
	nextID int
}

func newUserStore(seed []models.User) *UserStore {
	s := &UserStore{items: seed, nextID: 1}
	for _, u := range seed {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

// cloneUser copies the embedded cart slice so the returned value never
// aliases the store's backing array. Handlers serialize outside the lock;
// a shallow copy would race with in-place cart mutations.
func cloneUser(u models.User) models.User {
	cart := make([]models.CartItem, len(u.Cart))
	copy(cart, u.Cart)
	u.Cart = cart
	return u
}

func (s *UserStore) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.items))
	for i, u := range s.items {
		out[i] = cloneUser(u)
	}
	return out
}

func (s *UserStore) Get(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if u.ID == id {
			return cloneUser(u), true
		}
	}
	return models.User{}, false
}

// FindByEmail matches the address exactly.
func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if u.Email == email {
			return cloneUser(u), true
		}
	}
	return models.User{}, false
}

// EmailExists reports whether any user other than excludeID has the address,
// case-insensitively when fold is set.
func (s *UserStore) EmailExists(email string, fold bool, excludeID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if u.ID == excludeID {
			continue
		}
		if u.Email == email || (fold && strings.EqualFold(u.Email, email)) {
			return true
		}
	}
	return false
}

func (s *UserStore) Create(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.items = append(s.items, u)
	return cloneUser(u)
}

func (s *UserStore) Update(id int, fn func(*models.User)) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			s.items[i].ID = id
			return cloneUser(s.items[i]), true
		}
	}
	return models.User{}, false
}

func (s *UserStore) Delete(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.items {
		if u.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return cloneUser(u), true
		}
	}
	return models.User{}, false
}
