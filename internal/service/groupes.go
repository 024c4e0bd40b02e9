package service

import (
	"context"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

type (
	Groupes struct {
		groupes     *db.GroupeRepository
		repertoires *db.RepertoireGroupeRepository
	}

	CreateGroupeInput struct {
		RepertoireID string
		Label        string
		Color        *string
	}
)

func NewGroupes(groupes *db.GroupeRepository, repertoires *db.RepertoireGroupeRepository) *Groupes {
	return &Groupes{
		groupes:     groupes,
		repertoires: repertoires,
	}
}

func (s *Groupes) List(ctx context.Context) ([]db.Groupe, error) {
	return s.groupes.GetAll(ctx)
}

func (s *Groupes) ListByRepertoire(ctx context.Context, repertoireID string) ([]db.Groupe, error) {
	return s.groupes.FindByRepertoireID(ctx, repertoireID)
}

func (s *Groupes) Get(ctx context.Context, id string) (*db.Groupe, error) {
	groupe, err := s.groupes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if groupe == nil {
		return nil, notFound("groupe", id)
	}
	return groupe, nil
}

func (s *Groupes) Create(ctx context.Context, in CreateGroupeInput) (*db.Groupe, error) {
	rep, err := s.repertoires.FindByID(ctx, in.RepertoireID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, notFound("repertoire groupe", in.RepertoireID)
	}
	return s.groupes.Save(ctx, db.NewGroupe(rep.ID, in.Label, in.Color))
}

func (s *Groupes) Update(ctx context.Context, id string, edit db.GroupeEdit) (*db.Groupe, error) {
	groupe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !groupe.Edit(edit) {
		return groupe, nil
	}
	return s.groupes.Save(ctx, groupe)
}

// Delete also removes the groupe's taches through the foreign key cascade.
func (s *Groupes) Delete(ctx context.Context, id string) (bool, error) {
	return s.groupes.DeleteByID(ctx, id)
}
