package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

const tacheLabelTable = "tache_label"

type Tache struct {
	Base
	Label    string     `gorm:"not null" json:"label"`
	Detail   *string    `json:"detail"`
	Date     *time.Time `json:"date"`
	GroupeID string     `gorm:"type:uuid;not null;index" json:"groupeId"`
	Labels   []Label    `gorm:"many2many:tache_label;constraint:OnDelete:CASCADE" json:"labels"`
}

type TacheEdit struct {
	Label  patch.Field[string]
	Detail patch.Field[string]
	Date   patch.Field[time.Time]
}

func NewTache(groupeID, label string, detail *string, date *time.Time) *Tache {
	return &Tache{
		Label:    label,
		Detail:   detail,
		Date:     date,
		GroupeID: groupeID,
		Labels:   []Label{},
	}
}

func (t *Tache) Edit(e TacheEdit) bool {
	return changed(
		e.Label.Apply(&t.Label),
		e.Detail.ApplyOptional(&t.Detail),
		e.Date.ApplyOptional(&t.Date),
	)
}

// HasLabel reports whether a label with this id is attached.
func (t *Tache) HasLabel(labelID string) bool {
	for _, l := range t.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}

// AddLabel appends the label unless it is already attached.
func (t *Tache) AddLabel(label Label) bool {
	if t.HasLabel(label.ID) {
		return false
	}
	t.Labels = append(t.Labels, label)
	return true
}

// RemoveLabel drops the label and leaves the others in place.
func (t *Tache) RemoveLabel(labelID string) bool {
	for i, l := range t.Labels {
		if l.ID == labelID {
			t.Labels = append(t.Labels[:i], t.Labels[i+1:]...)
			return true
		}
	}
	return false
}

type TacheRepository struct {
	*Repository[Tache]
	db *gorm.DB
}

func NewTacheRepository(db *gorm.DB) *TacheRepository {
	return &TacheRepository{
		Repository: NewRepository[Tache](db),
		db:         db,
	}
}

func preloadLabels(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Labels", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("labels.created_at")
	})
}

// FindWithLabels is FindByID with the label association loaded.
func (r *TacheRepository) FindWithLabels(ctx context.Context, id string) (*Tache, error) {
	var t Tache
	res := r.Query(ctx).Scopes(preloadLabels).Where("id = ?", id).Limit(1).Find(&t)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "find tache with labels")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	if t.Labels == nil {
		t.Labels = []Label{}
	}
	return &t, nil
}

// GetAll lists every tache with its labels, oldest first.
func (r *TacheRepository) GetAll(ctx context.Context) ([]Tache, error) {
	return r.listWithLabels(ctx)
}

func (r *TacheRepository) FindByGroupeID(ctx context.Context, groupeID string) ([]Tache, error) {
	taches, err := r.listWithLabels(ctx, "groupe_id = ?", groupeID)
	if err != nil {
		return nil, errors.Wrap(err, "find taches by groupe")
	}
	return taches, nil
}

func (r *TacheRepository) listWithLabels(ctx context.Context, cond ...interface{}) ([]Tache, error) {
	taches := make([]Tache, 0)
	q := r.Query(ctx).Scopes(preloadLabels)
	if len(cond) > 0 {
		q = q.Where(cond[0], cond[1:]...)
	}
	if err := q.Order("created_at").Find(&taches).Error; err != nil {
		return nil, errors.Wrap(err, "find taches")
	}
	for i := range taches {
		if taches[i].Labels == nil {
			taches[i].Labels = []Label{}
		}
	}
	return taches, nil
}

// ReplaceLabels makes the join table mirror t.Labels.
func (r *TacheRepository) ReplaceLabels(ctx context.Context, t *Tache) error {
	labels := t.Labels
	if labels == nil {
		labels = []Label{}
	}
	err := r.db.WithContext(ctx).Model(t).Omit("Labels.*").Association("Labels").Replace(labels)
	if err != nil {
		return errors.Wrap(err, "replace tache labels")
	}
	t.Labels = labels
	return nil
}
