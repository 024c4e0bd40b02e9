package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

type User struct {
	Base
	Name        string       `gorm:"not null;default:''" json:"name"`
	Firstname   string       `gorm:"not null;default:''" json:"firstname"`
	Email       string       `gorm:"not null;index" json:"email"`
	Password    string       `gorm:"not null" json:"-"`
	Repertoires []Repertoire `gorm:"constraint:OnDelete:CASCADE" json:"repertoires,omitempty"`
}

type UserEdit struct {
	Name      patch.Field[string]
	Firstname patch.Field[string]
	Email     patch.Field[string]
}

func NewUser(email, passwordHash, name, firstname string) *User {
	return &User{
		Name:      name,
		Firstname: firstname,
		Email:     email,
		Password:  passwordHash,
	}
}

func (u *User) Edit(e UserEdit) bool {
	return changed(
		e.Name.Apply(&u.Name),
		e.Firstname.Apply(&u.Firstname),
		e.Email.Apply(&u.Email),
	)
}

type UserRepository struct {
	*Repository[User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		Repository: NewRepository[User](db),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	users, err := r.findWhere(ctx, "email = ?", email)
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	res := r.Query(ctx).Where("email = ?", email).Count(&count)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "count users by email")
	}
	return count > 0, nil
}
