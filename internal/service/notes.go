package service

import (
	"context"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

type (
	Notes struct {
		notes       *db.NoteRepository
		repertoires *db.RepertoireNoteRepository
	}

	CreateNoteInput struct {
		RepertoireID string
		Label        *string
		Message      *string
	}
)

func NewNotes(notes *db.NoteRepository, repertoires *db.RepertoireNoteRepository) *Notes {
	return &Notes{
		notes:       notes,
		repertoires: repertoires,
	}
}

func (s *Notes) List(ctx context.Context) ([]db.Note, error) {
	return s.notes.GetAll(ctx)
}

func (s *Notes) ListByRepertoire(ctx context.Context, repertoireID string) ([]db.Note, error) {
	return s.notes.FindByRepertoireID(ctx, repertoireID)
}

func (s *Notes) Get(ctx context.Context, id string) (*db.Note, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, notFound("note", id)
	}
	return note, nil
}

func (s *Notes) Create(ctx context.Context, in CreateNoteInput) (*db.Note, error) {
	rep, err := s.repertoires.FindByID(ctx, in.RepertoireID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, notFound("repertoire note", in.RepertoireID)
	}
	return s.notes.Save(ctx, db.NewNote(rep.ID, in.Label, in.Message))
}

func (s *Notes) Update(ctx context.Context, id string, edit db.NoteEdit) (*db.Note, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.Edit(edit) {
		return note, nil
	}
	return s.notes.Save(ctx, note)
}

func (s *Notes) Delete(ctx context.Context, id string) (bool, error) {
	return s.notes.DeleteByID(ctx, id)
}
