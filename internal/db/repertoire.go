package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

type RepertoireKind string

const (
	KindGroupe RepertoireKind = "groupe"
	KindNote   RepertoireKind = "note"
)

// Repertoire is a user's directory. Which children it holds depends on Kind:
// groupe directories hold Groupes and Labels, note directories hold Notes.
type Repertoire struct {
	Base
	Label  string         `gorm:"not null" json:"label"`
	Kind   RepertoireKind `gorm:"not null;index" json:"kind"`
	UserID string         `gorm:"type:uuid;not null;index" json:"userId"`

	Groupes []Groupe `gorm:"constraint:OnDelete:CASCADE" json:"groupes,omitempty"`
	Labels  []Label  `gorm:"constraint:OnDelete:CASCADE" json:"labels,omitempty"`
	Notes   []Note   `gorm:"constraint:OnDelete:CASCADE" json:"notes,omitempty"`
}

type RepertoireEdit struct {
	Label patch.Field[string]
}

func NewRepertoire(kind RepertoireKind, userID, label string) *Repertoire {
	return &Repertoire{
		Label:  label,
		Kind:   kind,
		UserID: userID,
	}
}

func (r *Repertoire) Edit(e RepertoireEdit) bool {
	return e.Label.Apply(&r.Label)
}

// RepertoireRepository only ever sees directories of its own kind.
type RepertoireRepository struct {
	*Repository[Repertoire]
	kind RepertoireKind
}

func newRepertoireRepository(db *gorm.DB, kind RepertoireKind) RepertoireRepository {
	return RepertoireRepository{
		Repository: NewRepository[Repertoire](db, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("kind = ?", kind)
		}),
		kind: kind,
	}
}

func (r *RepertoireRepository) Kind() RepertoireKind {
	return r.kind
}

func (r *RepertoireRepository) FindByUserID(ctx context.Context, userID string) ([]Repertoire, error) {
	repertoires, err := r.findWhere(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, errors.Wrap(err, "find repertoires by user")
	}
	return repertoires, nil
}

type (
	RepertoireGroupeRepository struct {
		RepertoireRepository
	}

	RepertoireNoteRepository struct {
		RepertoireRepository
	}
)

func NewRepertoireGroupeRepository(db *gorm.DB) *RepertoireGroupeRepository {
	return &RepertoireGroupeRepository{newRepertoireRepository(db, KindGroupe)}
}

func NewRepertoireNoteRepository(db *gorm.DB) *RepertoireNoteRepository {
	return &RepertoireNoteRepository{newRepertoireRepository(db, KindNote)}
}
