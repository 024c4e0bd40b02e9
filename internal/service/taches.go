package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

type (
	Taches struct {
		taches  *db.TacheRepository
		groupes *db.GroupeRepository
		labels  *db.LabelRepository
	}

	CreateTacheInput struct {
		GroupeID string
		Label    string
		Detail   *string
		Date     *time.Time
		LabelIDs []string
	}
)

func NewTaches(taches *db.TacheRepository, groupes *db.GroupeRepository, labels *db.LabelRepository) *Taches {
	return &Taches{
		taches:  taches,
		groupes: groupes,
		labels:  labels,
	}
}

func (s *Taches) List(ctx context.Context) ([]db.Tache, error) {
	return s.taches.GetAll(ctx)
}

func (s *Taches) ListByGroupe(ctx context.Context, groupeID string) ([]db.Tache, error) {
	return s.taches.FindByGroupeID(ctx, groupeID)
}

// Get loads the tache together with its labels.
func (s *Taches) Get(ctx context.Context, id string) (*db.Tache, error) {
	tache, err := s.taches.FindWithLabels(ctx, id)
	if err != nil {
		return nil, err
	}
	if tache == nil {
		return nil, notFound("tache", id)
	}
	return tache, nil
}

func (s *Taches) Create(ctx context.Context, in CreateTacheInput) (*db.Tache, error) {
	groupe, err := s.groupes.FindByID(ctx, in.GroupeID)
	if err != nil {
		return nil, err
	}
	if groupe == nil {
		return nil, notFound("groupe", in.GroupeID)
	}

	labels, err := s.resolveLabels(ctx, in.LabelIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range labels {
		if l.RepertoireID != groupe.RepertoireID {
			return nil, foreignLabel(l.ID, groupe.RepertoireID)
		}
	}

	tache, err := s.taches.Save(ctx, db.NewTache(groupe.ID, in.Label, in.Detail, in.Date))
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return tache, nil
	}

	tache.Labels = labels
	if err := s.taches.ReplaceLabels(ctx, tache); err != nil {
		return nil, err
	}
	return tache, nil
}

func (s *Taches) Update(ctx context.Context, id string, edit db.TacheEdit) (*db.Tache, error) {
	tache, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tache.Edit(edit) {
		return tache, nil
	}
	return s.taches.Save(ctx, tache)
}

func (s *Taches) Delete(ctx context.Context, id string) (bool, error) {
	return s.taches.DeleteByID(ctx, id)
}

// resolveLabels fails unless every id names an existing label.
func (s *Taches) resolveLabels(ctx context.Context, ids []string) ([]db.Label, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	labels, err := s.labels.FindManyByID(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "resolve labels")
	}
	if len(labels) == len(unique) {
		return labels, nil
	}

	found := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		found[l.ID] = struct{}{}
	}
	for _, id := range unique {
		if _, ok := found[id]; !ok {
			return nil, notFound("label", id)
		}
	}
	return labels, nil
}
