package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

type Users struct {
	users *db.UserRepository
	auth  *Auth
}

func NewUsers(users *db.UserRepository, auth *Auth) *Users {
	return &Users{
		users: users,
		auth:  auth,
	}
}

func (s *Users) List(ctx context.Context) ([]db.User, error) {
	return s.users.GetAll(ctx)
}

func (s *Users) Get(ctx context.Context, id string) (*db.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user", id)
	}
	return user, nil
}

// Create goes through the same path as registration.
func (s *Users) Create(ctx context.Context, in RegisterInput) (*db.User, error) {
	return s.auth.Register(ctx, in)
}

// Update applies the edit and, when password is non-nil, replaces the hash.
func (s *Users) Update(ctx context.Context, id string, edit db.UserEdit, password *string) (*db.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if email, ok := edit.Email.Get(); ok && email != "" && email != user.Email {
		exists, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, errors.Wrap(err, "check email")
		}
		if exists {
			return nil, ErrEmailTaken
		}
	}

	changed := user.Edit(edit)
	if password != nil {
		hash, err := s.auth.HashPassword(*password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
		changed = true
	}
	if !changed {
		return user, nil
	}
	return s.users.Save(ctx, user)
}

func (s *Users) Delete(ctx context.Context, id string) (bool, error) {
	return s.users.DeleteByID(ctx, id)
}
