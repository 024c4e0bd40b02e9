package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

type Note struct {
	Base
	Label        *string `json:"label"`
	Message      *string `json:"message"`
	RepertoireID string  `gorm:"type:uuid;not null;index" json:"repertoireId"`
}

type NoteEdit struct {
	Label   patch.Field[string]
	Message patch.Field[string]
}

func NewNote(repertoireID string, label, message *string) *Note {
	return &Note{
		Label:        label,
		Message:      message,
		RepertoireID: repertoireID,
	}
}

func (n *Note) Edit(e NoteEdit) bool {
	return changed(
		e.Label.ApplyOptional(&n.Label),
		e.Message.ApplyOptional(&n.Message),
	)
}

type NoteRepository struct {
	*Repository[Note]
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{
		Repository: NewRepository[Note](db),
	}
}

func (r *NoteRepository) FindByRepertoireID(ctx context.Context, repertoireID string) ([]Note, error) {
	notes, err := r.findWhere(ctx, "repertoire_id = ?", repertoireID)
	if err != nil {
		return nil, errors.Wrap(err, "find notes by repertoire")
	}
	return notes, nil
}
