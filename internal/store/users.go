package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// AddUser registers a new account. The password must already be hashed.
func (s *Store) AddUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	user.ID = uuid.New().String()
	user.IsActive = true
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, user)
	return user
}

// FindUserByID returns the user with the given id.
func (s *Store) FindUserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUserByUsername returns the user with the given username.
func (s *Store) FindUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUserByEmail returns the user with the given email.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// UpdateLastLogin stamps the login time on a user.
func (s *Store) UpdateLastLogin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			now := time.Now().UTC()
			s.users[i].LastLogin = &now
			s.users[i].UpdatedAt = now
			return true
		}
	}
	return false
}

// ListUsers returns a copy of all accounts.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}
