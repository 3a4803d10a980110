package user

import (
	"errors"
	"sync"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("email already registered")
)

// viewHistoryCap bounds the stored view history per user.
const viewHistoryCap = 20

type Repository interface {
	List() []User
	GetByEmail(email string) (User, error)
	Create(u User) (User, error)
	Update(email string, u User) (User, error)
	Delete(email string) error
	// AppendViewHistory records one viewed category, dropping the oldest
	// entry beyond the cap.
	AppendViewHistory(email, category string) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and for running without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{users: make(map[string]User, len(seed))}
	for _, u := range seed {
		r.users[u.Email] = u
	}
	return r
}

func (r *InMemoryRepository) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Email]; ok {
		return User{}, ErrEmailExists
	}
	r.users[u.Email] = u
	return u, nil
}

func (r *InMemoryRepository) Update(email string, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; !ok {
		return User{}, ErrNotFound
	}
	u.Email = email
	r.users[email] = u
	return u, nil
}

func (r *InMemoryRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; !ok {
		return ErrNotFound
	}
	delete(r.users, email)
	return nil
}

func (r *InMemoryRepository) AppendViewHistory(email, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	if !ok {
		return ErrNotFound
	}
	u.ViewHistory = append(u.ViewHistory, category)
	if len(u.ViewHistory) > viewHistoryCap {
		u.ViewHistory = u.ViewHistory[len(u.ViewHistory)-viewHistoryCap:]
	}
	r.users[email] = u
	return nil
}
