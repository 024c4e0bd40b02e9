package service

import (
	"context"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

// Repertoires serves one kind of directory; RepertoireGroupes and
// RepertoireNotes are its two instances.
type Repertoires struct {
	repertoires *db.RepertoireRepository
	users       *db.UserRepository
}

type (
	RepertoireGroupes struct {
		*Repertoires
	}

	RepertoireNotes struct {
		*Repertoires
	}
)

func NewRepertoireGroupes(repertoires *db.RepertoireGroupeRepository, users *db.UserRepository) *RepertoireGroupes {
	return &RepertoireGroupes{&Repertoires{repertoires: &repertoires.RepertoireRepository, users: users}}
}

func NewRepertoireNotes(repertoires *db.RepertoireNoteRepository, users *db.UserRepository) *RepertoireNotes {
	return &RepertoireNotes{&Repertoires{repertoires: &repertoires.RepertoireRepository, users: users}}
}

func (s *Repertoires) List(ctx context.Context) ([]db.Repertoire, error) {
	return s.repertoires.GetAll(ctx)
}

func (s *Repertoires) ListByUser(ctx context.Context, userID string) ([]db.Repertoire, error) {
	return s.repertoires.FindByUserID(ctx, userID)
}

func (s *Repertoires) Get(ctx context.Context, id string) (*db.Repertoire, error) {
	rep, err := s.repertoires.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, notFound("repertoire "+string(s.repertoires.Kind()), id)
	}
	return rep, nil
}

func (s *Repertoires) Create(ctx context.Context, userID, label string) (*db.Repertoire, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user", userID)
	}
	return s.repertoires.Save(ctx, db.NewRepertoire(s.repertoires.Kind(), user.ID, label))
}

func (s *Repertoires) Update(ctx context.Context, id string, edit db.RepertoireEdit) (*db.Repertoire, error) {
	rep, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rep.Edit(edit) {
		return rep, nil
	}
	return s.repertoires.Save(ctx, rep)
}

func (s *Repertoires) Delete(ctx context.Context, id string) (bool, error) {
	return s.repertoires.DeleteByID(ctx, id)
}
