package directory

import (
	"context"

	"github.com/planbord/planbord/internal/fault"
)

type StubUserRepository struct {
	nextId int
	data   map[string]User
}

func NewStubUserRepository() *StubUserRepository {
	return &StubUserRepository{nextId: 1, data: map[string]User{}}
}

func (s *StubUserRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	user, ok := s.data[username]
	if !ok {
		return User{}, fault.Errorf(fault.UserNotFound, "user %q not found", username)
	}
	return user, nil
}

func (s *StubUserRepository) CreateUser(ctx context.Context, user User) (int, error) {
	user.Id = s.nextId
	s.nextId++
	s.data[user.Username] = user
	return user.Id, nil
}

func (s *StubUserRepository) DeleteUser(ctx context.Context, username string) error {
	if _, ok := s.data[username]; !ok {
		return fault.Errorf(fault.UserNotFound, "user %q not found", username)
	}
	delete(s.data, username)
	return nil
}
