package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db/dbtest"
)

type fixture struct {
	db         *gorm.DB
	users      *db.UserRepository
	repGroupes *db.RepertoireGroupeRepository
	repNotes   *db.RepertoireNoteRepository
	groupes    *db.GroupeRepository
	taches     *db.TacheRepository
	labels     *db.LabelRepository
	notes      *db.NoteRepository
	user       *db.User
	repertoire *db.Repertoire
	noteRepert *db.Repertoire
	groupe     *db.Groupe
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	g := dbtest.New(t)
	f := &fixture{
		db:         g,
		users:      db.NewUserRepository(g),
		repGroupes: db.NewRepertoireGroupeRepository(g),
		repNotes:   db.NewRepertoireNoteRepository(g),
		groupes:    db.NewGroupeRepository(g),
		taches:     db.NewTacheRepository(g),
		labels:     db.NewLabelRepository(g),
		notes:      db.NewNoteRepository(g),
	}

	var err error
	f.user, err = f.users.Save(ctx, db.NewUser("ada@example.com", "hash", "Lovelace", "Ada"))
	require.NoError(t, err)
	f.repertoire, err = f.repGroupes.Save(ctx, db.NewRepertoire(db.KindGroupe, f.user.ID, "maison"))
	require.NoError(t, err)
	f.noteRepert, err = f.repNotes.Save(ctx, db.NewRepertoire(db.KindNote, f.user.ID, "idées"))
	require.NoError(t, err)
	f.groupe, err = f.groupes.Save(ctx, db.NewGroupe(f.repertoire.ID, "courses", nil))
	require.NoError(t, err)
	return f
}

func TestRepositorySaveAndFind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	red := "red"
	saved, err := f.labels.Save(ctx, db.NewLabel(f.repertoire.ID, "urgent", &red))
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	_, err = uuid.Parse(saved.ID)
	assert.NoError(t, err)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := f.labels.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "urgent", got.Label)
	require.NotNil(t, got.Color)
	assert.Equal(t, "red", *got.Color)
	assert.Equal(t, f.repertoire.ID, got.RepertoireID)
}

func TestRepositorySaveUpdatesExisting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.groupe.Label = "marché"
	_, err := f.groupes.Save(ctx, f.groupe)
	require.NoError(t, err)

	all, err := f.groupes.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "marché", all[0].Label)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	f := newFixture(t)

	got, err := f.groupes.FindByID(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepositoryDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.groupes.DeleteByID(ctx, f.groupe.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.groupes.FindByID(ctx, f.groupe.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = f.groupes.DeleteByID(ctx, f.groupe.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepositoryManyByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.notes.SaveMany(ctx, []db.Note{
		*db.NewNote(f.noteRepert.ID, nil, nil),
		*db.NewNote(f.noteRepert.ID, nil, nil),
		*db.NewNote(f.noteRepert.ID, nil, nil),
	})
	require.NoError(t, err)
	require.Len(t, saved, 3)
	for _, n := range saved {
		assert.NotEmpty(t, n.ID)
	}

	found, err := f.notes.FindManyByID(ctx, []string{saved[0].ID, saved[2].ID, uuid.NewString()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	empty, err := f.notes.FindManyByID(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ok, err := f.notes.DeleteManyByID(ctx, []string{saved[0].ID, uuid.NewString()})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.notes.DeleteManyByID(ctx, []string{uuid.NewString()})
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := f.notes.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepertoireRepositoriesAreScopedByKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.repNotes.FindByID(ctx, f.repertoire.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := f.repNotes.DeleteByID(ctx, f.repertoire.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	groupes, err := f.repGroupes.FindByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, groupes, 1)
	assert.Equal(t, db.KindGroupe, groupes[0].Kind)

	all, err := f.repNotes.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "idées", all[0].Label)
}

func TestUserRepositoryByEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, f.user.ID, u.ID)

	u, err = f.users.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	exists, err := f.users.ExistsByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTacheLabels(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	urgent, err := f.labels.Save(ctx, db.NewLabel(f.repertoire.ID, "urgent", nil))
	require.NoError(t, err)
	later, err := f.labels.Save(ctx, db.NewLabel(f.repertoire.ID, "plus tard", nil))
	require.NoError(t, err)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tache, err := f.taches.Save(ctx, db.NewTache(f.groupe.ID, "pain", nil, &date))
	require.NoError(t, err)

	tache.AddLabel(*urgent)
	tache.AddLabel(*later)
	assert.False(t, tache.AddLabel(*urgent))
	require.NoError(t, f.taches.ReplaceLabels(ctx, tache))

	labels, err := f.labels.FindByTacheID(ctx, tache.ID)
	require.NoError(t, err)
	assert.Len(t, labels, 2)

	loaded, err := f.taches.FindWithLabels(ctx, tache.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Labels, 2)

	assert.True(t, loaded.RemoveLabel(urgent.ID))
	require.NoError(t, f.taches.ReplaceLabels(ctx, loaded))

	labels, err = f.labels.FindByTacheID(ctx, tache.ID)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, later.ID, labels[0].ID)

	// the label itself survives detaching
	still, err := f.labels.FindByID(ctx, urgent.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestDeletingGroupeCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	label, err := f.labels.Save(ctx, db.NewLabel(f.repertoire.ID, "urgent", nil))
	require.NoError(t, err)
	tache, err := f.taches.Save(ctx, db.NewTache(f.groupe.ID, "pain", nil, nil))
	require.NoError(t, err)
	tache.AddLabel(*label)
	require.NoError(t, f.taches.ReplaceLabels(ctx, tache))

	ok, err := f.groupes.DeleteByID(ctx, f.groupe.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := f.taches.FindByID(ctx, tache.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var links int64
	require.NoError(t, f.db.Table("tache_label").Where("tache_id = ?", tache.ID).Count(&links).Error)
	assert.Zero(t, links)

	labels, err := f.labels.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, labels, 1)
}

func TestTachesByGroupe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.groupes.Save(ctx, db.NewGroupe(f.repertoire.ID, "travail", nil))
	require.NoError(t, err)
	_, err = f.taches.SaveMany(ctx, []db.Tache{
		*db.NewTache(f.groupe.ID, "pain", nil, nil),
		*db.NewTache(f.groupe.ID, "lait", nil, nil),
		*db.NewTache(other.ID, "rapport", nil, nil),
	})
	require.NoError(t, err)

	taches, err := f.taches.FindByGroupeID(ctx, f.groupe.ID)
	require.NoError(t, err)
	assert.Len(t, taches, 2)

	groupes, err := f.groupes.FindByRepertoireID(ctx, f.repertoire.ID)
	require.NoError(t, err)
	assert.Len(t, groupes, 2)
}

func TestTacheListingsCarryLabels(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	label, err := f.labels.Save(ctx, db.NewLabel(f.repertoire.ID, "urgent", nil))
	require.NoError(t, err)
	tagged, err := f.taches.Save(ctx, db.NewTache(f.groupe.ID, "pain", nil, nil))
	require.NoError(t, err)
	tagged.AddLabel(*label)
	require.NoError(t, f.taches.ReplaceLabels(ctx, tagged))
	_, err = f.taches.Save(ctx, db.NewTache(f.groupe.ID, "lait", nil, nil))
	require.NoError(t, err)

	all, err := f.taches.GetAll(ctx)
	require.NoError(t, err)
	byGroupe, err := f.taches.FindByGroupeID(ctx, f.groupe.ID)
	require.NoError(t, err)

	for _, taches := range [][]db.Tache{all, byGroupe} {
		require.Len(t, taches, 2)
		for _, tache := range taches {
			require.NotNil(t, tache.Labels, tache.Label)
			if tache.ID == tagged.ID {
				require.Len(t, tache.Labels, 1)
				assert.Equal(t, label.ID, tache.Labels[0].ID)
			} else {
				assert.Empty(t, tache.Labels)
			}
		}
	}
}
