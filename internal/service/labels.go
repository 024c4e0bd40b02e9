package service

import (
	"context"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

type (
	Labels struct {
		labels      *db.LabelRepository
		taches      *db.TacheRepository
		groupes     *db.GroupeRepository
		repertoires *db.RepertoireGroupeRepository
	}

	CreateLabelInput struct {
		RepertoireID string
		Label        string
		Color        *string
	}
)

func NewLabels(labels *db.LabelRepository, taches *db.TacheRepository, groupes *db.GroupeRepository, repertoires *db.RepertoireGroupeRepository) *Labels {
	return &Labels{
		labels:      labels,
		taches:      taches,
		groupes:     groupes,
		repertoires: repertoires,
	}
}

func (s *Labels) List(ctx context.Context) ([]db.Label, error) {
	return s.labels.GetAll(ctx)
}

func (s *Labels) ListByRepertoire(ctx context.Context, repertoireID string) ([]db.Label, error) {
	return s.labels.FindByRepertoireID(ctx, repertoireID)
}

func (s *Labels) ListByTache(ctx context.Context, tacheID string) ([]db.Label, error) {
	tache, err := s.taches.FindByID(ctx, tacheID)
	if err != nil {
		return nil, err
	}
	if tache == nil {
		return nil, notFound("tache", tacheID)
	}
	return s.labels.FindByTacheID(ctx, tache.ID)
}

func (s *Labels) Get(ctx context.Context, id string) (*db.Label, error) {
	label, err := s.labels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, notFound("label", id)
	}
	return label, nil
}

func (s *Labels) Create(ctx context.Context, in CreateLabelInput) (*db.Label, error) {
	rep, err := s.repertoires.FindByID(ctx, in.RepertoireID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, notFound("repertoire groupe", in.RepertoireID)
	}
	return s.labels.Save(ctx, db.NewLabel(rep.ID, in.Label, in.Color))
}

func (s *Labels) Update(ctx context.Context, id string, edit db.LabelEdit) (*db.Label, error) {
	label, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !label.Edit(edit) {
		return label, nil
	}
	return s.labels.Save(ctx, label)
}

func (s *Labels) Delete(ctx context.Context, id string) (bool, error) {
	return s.labels.DeleteByID(ctx, id)
}

// Attach adds the label to the tache's labels once and saves the full set.
// The label must come from the repertoire owning the tache's groupe.
func (s *Labels) Attach(ctx context.Context, labelID, tacheID string) (*db.Tache, error) {
	label, tache, err := s.resolvePair(ctx, labelID, tacheID)
	if err != nil {
		return nil, err
	}
	if !tache.AddLabel(*label) {
		return tache, nil
	}
	if err := s.taches.ReplaceLabels(ctx, tache); err != nil {
		return nil, err
	}
	return tache, nil
}

// Detach removes the label from the tache and saves the remaining set.
func (s *Labels) Detach(ctx context.Context, labelID, tacheID string) (*db.Tache, error) {
	label, tache, err := s.resolvePair(ctx, labelID, tacheID)
	if err != nil {
		return nil, err
	}
	if !tache.RemoveLabel(label.ID) {
		return tache, nil
	}
	if err := s.taches.ReplaceLabels(ctx, tache); err != nil {
		return nil, err
	}
	return tache, nil
}

func (s *Labels) resolvePair(ctx context.Context, labelID, tacheID string) (*db.Label, *db.Tache, error) {
	label, err := s.Get(ctx, labelID)
	if err != nil {
		return nil, nil, err
	}
	tache, err := s.taches.FindWithLabels(ctx, tacheID)
	if err != nil {
		return nil, nil, err
	}
	if tache == nil {
		return nil, nil, notFound("tache", tacheID)
	}

	groupe, err := s.groupes.FindByID(ctx, tache.GroupeID)
	if err != nil {
		return nil, nil, err
	}
	if groupe == nil {
		return nil, nil, notFound("groupe", tache.GroupeID)
	}
	if label.RepertoireID != groupe.RepertoireID {
		return nil, nil, foreignLabel(label.ID, groupe.RepertoireID)
	}
	return label, tache, nil
}
