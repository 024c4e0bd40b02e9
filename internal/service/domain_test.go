package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/patch"
)

func seedGroupe(t *testing.T, s *services) (*db.User, *db.Repertoire, *db.Groupe) {
	t.Helper()
	ctx := context.Background()

	user, err := s.auth.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "analytical"})
	require.NoError(t, err)
	rep, err := s.repGroupes.Create(ctx, user.ID, "maison")
	require.NoError(t, err)
	groupe, err := s.groupes.Create(ctx, CreateGroupeInput{RepertoireID: rep.ID, Label: "courses"})
	require.NoError(t, err)
	return user, rep, groupe
}

func TestCreateRequiresLiveParent(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	user, rep, _ := seedGroupe(t, s)

	noteRep, err := s.repNotes.Create(ctx, user.ID, "idées")
	require.NoError(t, err)

	_, err = s.repGroupes.Create(ctx, uuid.NewString(), "orphelin")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.groupes.Create(ctx, CreateGroupeInput{RepertoireID: uuid.NewString(), Label: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))

	// a note directory cannot hold groupes or labels
	_, err = s.groupes.Create(ctx, CreateGroupeInput{RepertoireID: noteRep.ID, Label: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.labels.Create(ctx, CreateLabelInput{RepertoireID: noteRep.ID, Label: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))

	// and the other way round
	_, err = s.notes.Create(ctx, CreateNoteInput{RepertoireID: rep.ID})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.taches.Create(ctx, CreateTacheInput{GroupeID: uuid.NewString(), Label: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTacheCreateWithLabels(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	_, rep, groupe := seedGroupe(t, s)

	urgent, err := s.labels.Create(ctx, CreateLabelInput{RepertoireID: rep.ID, Label: "urgent"})
	require.NoError(t, err)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tache, err := s.taches.Create(ctx, CreateTacheInput{
		GroupeID: groupe.ID,
		Label:    "pain",
		Date:     &date,
		LabelIDs: []string{urgent.ID, urgent.ID},
	})
	require.NoError(t, err)
	require.Len(t, tache.Labels, 1)

	got, err := s.taches.Get(ctx, tache.ID)
	require.NoError(t, err)
	require.Len(t, got.Labels, 1)
	assert.Equal(t, urgent.ID, got.Labels[0].ID)

	missing := uuid.NewString()
	_, err = s.taches.Create(ctx, CreateTacheInput{GroupeID: groupe.ID, Label: "x", LabelIDs: []string{urgent.ID, missing}})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), missing)
}

func TestAttachDetachLabels(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	_, rep, groupe := seedGroupe(t, s)

	urgent, err := s.labels.Create(ctx, CreateLabelInput{RepertoireID: rep.ID, Label: "urgent"})
	require.NoError(t, err)
	later, err := s.labels.Create(ctx, CreateLabelInput{RepertoireID: rep.ID, Label: "plus tard"})
	require.NoError(t, err)
	tache, err := s.taches.Create(ctx, CreateTacheInput{GroupeID: groupe.ID, Label: "pain"})
	require.NoError(t, err)

	_, err = s.labels.Attach(ctx, urgent.ID, tache.ID)
	require.NoError(t, err)
	_, err = s.labels.Attach(ctx, urgent.ID, tache.ID)
	require.NoError(t, err)
	_, err = s.labels.Attach(ctx, later.ID, tache.ID)
	require.NoError(t, err)

	labels, err := s.labels.ListByTache(ctx, tache.ID)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, urgent.ID, labels[0].ID)

	updated, err := s.labels.Detach(ctx, urgent.ID, tache.ID)
	require.NoError(t, err)
	require.Len(t, updated.Labels, 1)

	labels, err = s.labels.ListByTache(ctx, tache.ID)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, later.ID, labels[0].ID)

	_, err = s.labels.Attach(ctx, uuid.NewString(), tache.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.labels.Detach(ctx, later.ID, uuid.NewString())
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = s.labels.ListByTache(ctx, uuid.NewString())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLabelsStayInTheirRepertoire(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	user, rep, groupe := seedGroupe(t, s)

	otherRep, err := s.repGroupes.Create(ctx, user.ID, "travail")
	require.NoError(t, err)
	foreign, err := s.labels.Create(ctx, CreateLabelInput{RepertoireID: otherRep.ID, Label: "réunion"})
	require.NoError(t, err)
	local, err := s.labels.Create(ctx, CreateLabelInput{RepertoireID: rep.ID, Label: "urgent"})
	require.NoError(t, err)

	_, err = s.taches.Create(ctx, CreateTacheInput{GroupeID: groupe.ID, Label: "pain", LabelIDs: []string{local.ID, foreign.ID}})
	assert.True(t, errors.Is(err, ErrForeignLabel))

	tache, err := s.taches.Create(ctx, CreateTacheInput{GroupeID: groupe.ID, Label: "pain", LabelIDs: []string{local.ID}})
	require.NoError(t, err)

	_, err = s.labels.Attach(ctx, foreign.ID, tache.ID)
	assert.True(t, errors.Is(err, ErrForeignLabel))

	labels, err := s.labels.ListByTache(ctx, tache.ID)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, local.ID, labels[0].ID)
}

func TestUpdateSkipsNoopWrites(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	_, _, groupe := seedGroupe(t, s)

	same, err := s.groupes.Update(ctx, groupe.ID, db.GroupeEdit{Label: patch.Set("courses")})
	require.NoError(t, err)
	assert.True(t, groupe.UpdatedAt.Equal(same.UpdatedAt))

	color := "green"
	updated, err := s.groupes.Update(ctx, groupe.ID, db.GroupeEdit{Color: patch.Set(color)})
	require.NoError(t, err)
	require.NotNil(t, updated.Color)
	assert.Equal(t, color, *updated.Color)

	cleared, err := s.groupes.Update(ctx, groupe.ID, db.GroupeEdit{Color: patch.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Color)

	reloaded, err := s.groupes.Get(ctx, groupe.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Color)
	assert.Equal(t, "courses", reloaded.Label)

	_, err = s.groupes.Update(ctx, uuid.NewString(), db.GroupeEdit{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUsersUpdate(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	ada, err := s.users.Create(ctx, RegisterInput{Email: "ada@example.com", Password: "analytical"})
	require.NoError(t, err)
	_, err = s.users.Create(ctx, RegisterInput{Email: "grace@example.com", Password: "cobol"})
	require.NoError(t, err)

	_, err = s.users.Update(ctx, ada.ID, db.UserEdit{Email: patch.Set("grace@example.com")}, nil)
	assert.True(t, errors.Is(err, ErrEmailTaken))

	newPass := "engine"
	updated, err := s.users.Update(ctx, ada.ID, db.UserEdit{Name: patch.Set("Lovelace")}, &newPass)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", updated.Name)

	_, err = s.auth.Login(ctx, "ada@example.com", "analytical")
	assert.Equal(t, ErrInvalidCredentials, err)
	_, err = s.auth.Login(ctx, "ada@example.com", "engine")
	assert.NoError(t, err)
}

func TestRepertoiresAndNotes(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	user, _, _ := seedGroupe(t, s)

	rep, err := s.repNotes.Create(ctx, user.ID, "idées")
	require.NoError(t, err)
	assert.Equal(t, db.KindNote, rep.Kind)

	byUser, err := s.repNotes.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	title := "titre"
	note, err := s.notes.Create(ctx, CreateNoteInput{RepertoireID: rep.ID, Label: &title})
	require.NoError(t, err)

	note, err = s.notes.Update(ctx, note.ID, db.NoteEdit{Label: patch.Null[string](), Message: patch.Set("corps")})
	require.NoError(t, err)
	assert.Nil(t, note.Label)
	require.NotNil(t, note.Message)

	renamed, err := s.repNotes.Update(ctx, rep.ID, db.RepertoireEdit{Label: patch.Set("brouillons")})
	require.NoError(t, err)
	assert.Equal(t, "brouillons", renamed.Label)

	ok, err := s.repNotes.Delete(ctx, rep.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	notes, err := s.notes.ListByRepertoire(ctx, rep.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
