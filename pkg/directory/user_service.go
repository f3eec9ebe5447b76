package directory

import (
	"context"
	"fmt"
)

type Service interface {
	// GetByUsername resolves a username to its directory record. Calendar
	// routes use the record's email as the calendar identifier.
	GetByUsername(ctx context.Context, username string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, username string) error
}

type UserServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (u *UserServiceImpl) GetByUsername(ctx context.Context, username string) (User, error) {
	if username == "" {
		return User{}, fmt.Errorf("username must not be empty")
	}
	return u.repo.FindByUsername(ctx, username)
}

func (u *UserServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	userId, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = userId
	return user, nil
}

func (u *UserServiceImpl) DeleteUser(ctx context.Context, username string) error {
	return u.repo.DeleteUser(ctx, username)
}
