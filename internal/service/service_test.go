package service

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/config"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db/dbtest"
)

type services struct {
	auth       *Auth
	users      *Users
	repGroupes *RepertoireGroupes
	repNotes   *RepertoireNotes
	groupes    *Groupes
	taches     *Taches
	labels     *Labels
	notes      *Notes
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTTTL:     24 * time.Hour,
		BcryptCost: 4,
	}
}

func newServices(t *testing.T) *services {
	t.Helper()
	g := dbtest.New(t)

	userRepo := db.NewUserRepository(g)
	repGroupeRepo := db.NewRepertoireGroupeRepository(g)
	repNoteRepo := db.NewRepertoireNoteRepository(g)
	groupeRepo := db.NewGroupeRepository(g)
	tacheRepo := db.NewTacheRepository(g)
	labelRepo := db.NewLabelRepository(g)
	noteRepo := db.NewNoteRepository(g)

	auth := NewAuth(userRepo, testConfig(), zap.NewNop().Sugar())
	return &services{
		auth:       auth,
		users:      NewUsers(userRepo, auth),
		repGroupes: NewRepertoireGroupes(repGroupeRepo, userRepo),
		repNotes:   NewRepertoireNotes(repNoteRepo, userRepo),
		groupes:    NewGroupes(groupeRepo, repGroupeRepo),
		taches:     NewTaches(tacheRepo, groupeRepo, labelRepo),
		labels:     NewLabels(labelRepo, tacheRepo, groupeRepo, repGroupeRepo),
		notes:      NewNotes(noteRepo, repNoteRepo),
	}
}
