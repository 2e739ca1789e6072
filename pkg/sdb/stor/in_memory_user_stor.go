package stor

import (
	"sync"

	"github.com/hashicorp/go-uuid"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
)

// InMemoryUserStor is a map backed UserStor for tests that don't need a
// database.
type InMemoryUserStor struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*smodel.User
}

func NewInMemoryUserStor(users []smodel.User) *InMemoryUserStor {
	s := &InMemoryUserStor{users: map[int]*smodel.User{}, nextID: 1}
	for i := range users {
		u := users[i]
		if u.ID == 0 {
			u.ID = s.nextID
		}
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
		s.users[u.ID] = &u
	}
	return s
}

func (s *InMemoryUserStor) CreateUser(user *smodel.User) (*smodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, ErrInvalidState
		}
	}

	var err error
	if user.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	user.ID = s.nextID
	s.nextID++
	user.IsActive = true

	saved := *user
	s.users[saved.ID] = &saved
	return user, nil
}

func (s *InMemoryUserStor) GetUserByID(userID int) (*smodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}

	found := *u
	return &found, nil
}

func (s *InMemoryUserStor) GetUserByEmail(email string) (*smodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemoryUserStor) UpdateUserPassword(userID int, hashedPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}

	u.Password = hashedPassword
	return nil
}

func (s *InMemoryUserStor) DeactivateUser(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}

	u.IsActive = false
	return nil
}
