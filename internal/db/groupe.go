package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

type Groupe struct {
	Base
	Label        string  `gorm:"not null" json:"label"`
	Color        *string `json:"color"`
	RepertoireID string  `gorm:"type:uuid;not null;index" json:"repertoireId"`
	Taches       []Tache `gorm:"constraint:OnDelete:CASCADE" json:"taches,omitempty"`
}

type GroupeEdit struct {
	Label patch.Field[string]
	Color patch.Field[string]
}

func NewGroupe(repertoireID, label string, color *string) *Groupe {
	return &Groupe{
		Label:        label,
		Color:        color,
		RepertoireID: repertoireID,
	}
}

func (g *Groupe) Edit(e GroupeEdit) bool {
	return changed(
		e.Label.Apply(&g.Label),
		e.Color.ApplyOptional(&g.Color),
	)
}

type GroupeRepository struct {
	*Repository[Groupe]
}

func NewGroupeRepository(db *gorm.DB) *GroupeRepository {
	return &GroupeRepository{
		Repository: NewRepository[Groupe](db),
	}
}

func (r *GroupeRepository) FindByRepertoireID(ctx context.Context, repertoireID string) ([]Groupe, error) {
	groupes, err := r.findWhere(ctx, "repertoire_id = ?", repertoireID)
	if err != nil {
		return nil, errors.Wrap(err, "find groupes by repertoire")
	}
	return groupes, nil
}
