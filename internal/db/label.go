package db

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

type Label struct {
	Base
	Label        string  `gorm:"not null" json:"label"`
	Color        *string `json:"color"`
	RepertoireID string  `gorm:"type:uuid;not null;index" json:"repertoireId"`
}

type LabelEdit struct {
	Label patch.Field[string]
	Color patch.Field[string]
}

func NewLabel(repertoireID, label string, color *string) *Label {
	return &Label{
		Label:        label,
		Color:        color,
		RepertoireID: repertoireID,
	}
}

func (l *Label) Edit(e LabelEdit) bool {
	return changed(
		e.Label.Apply(&l.Label),
		e.Color.ApplyOptional(&l.Color),
	)
}

type LabelRepository struct {
	*Repository[Label]
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{
		Repository: NewRepository[Label](db),
		db:         db,
	}
}

func (r *LabelRepository) FindByRepertoireID(ctx context.Context, repertoireID string) ([]Label, error) {
	labels, err := r.findWhere(ctx, "repertoire_id = ?", repertoireID)
	if err != nil {
		return nil, errors.Wrap(err, "find labels by repertoire")
	}
	return labels, nil
}

func (r *LabelRepository) FindByTacheID(ctx context.Context, tacheID string) ([]Label, error) {
	sql, args, err := squirrel.
		Select("l.id", "l.created_at", "l.updated_at", "l.label", "l.color", "l.repertoire_id").
		From("labels l").
		Join(tacheLabelTable + " tl ON l.id = tl.label_id").
		Where(squirrel.Eq{"tl.tache_id": tacheID}).
		OrderBy("l.created_at").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	labels := make([]Label, 0)
	res := r.db.WithContext(ctx).Raw(sql, args...).Scan(&labels)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan labels by tache")
	}
	return labels, nil
}
