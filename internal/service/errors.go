package service

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned by Login whichever of email or
	// password was wrong.
	ErrInvalidCredentials = errors.New("invalid data")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailTaken         = errors.New("email already in use")
	// ErrForeignLabel rejects tagging a tache with a label from another repertoire.
	ErrForeignLabel = errors.New("label belongs to another repertoire")
)

func notFound(what, id string) error {
	return errors.Wrapf(ErrNotFound, "%s %s", what, id)
}

func foreignLabel(labelID, repertoireID string) error {
	return errors.Wrapf(ErrForeignLabel, "label %s, repertoire %s", labelID, repertoireID)
}
