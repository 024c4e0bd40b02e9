package transport

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sethvargo/go-limiter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/config"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
)

var Module = fx.Provide(NewHTTPServer)

type (
	Params struct {
		fx.In

		Config            *config.Config
		Logger            *zap.SugaredLogger
		Auth              *service.Auth
		Users             *service.Users
		RepertoireGroupes *service.RepertoireGroupes
		RepertoireNotes   *service.RepertoireNotes
		Groupes           *service.Groupes
		Taches            *service.Taches
		Labels            *service.Labels
		Notes             *service.Notes
	}

	HTTPServer struct {
		App *fiber.App

		cfg               *config.Config
		logger            *zap.SugaredLogger
		validator         *CustomValidator
		limiter           limiter.Store
		auth              *service.Auth
		users             *service.Users
		repertoireGroupes *service.RepertoireGroupes
		repertoireNotes   *service.RepertoireNotes
		groupes           *service.Groupes
		taches            *service.Taches
		labels            *service.Labels
		notes             *service.Notes
	}
)

func NewHTTPServer(lc fx.Lifecycle, p Params) (*HTTPServer, error) {
	instance, err := New(p)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := p.Config.Host + ":" + p.Config.Port
				p.Logger.Infow("Starting HTTP server.", "listen", listen)
				if err := instance.App.Listen(listen); err != nil {
					p.Logger.Fatalw("shutting down the server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("Stopping HTTP server.")
			if err := instance.App.ShutdownWithContext(ctx); err != nil {
				return err
			}
			if instance.limiter != nil {
				return instance.limiter.Close(ctx)
			}
			return nil
		},
	})

	return instance, nil
}

// New builds the fiber application without starting it.
func New(p Params) (*HTTPServer, error) {
	store, err := newLimiter(p.Config.AuthRateLimit, p.Config.AuthRateInterval)
	if err != nil {
		return nil, err
	}

	instance := &HTTPServer{
		cfg:               p.Config,
		logger:            p.Logger,
		validator:         NewCustomValidator(),
		limiter:           store,
		auth:              p.Auth,
		users:             p.Users,
		repertoireGroupes: p.RepertoireGroupes,
		repertoireNotes:   p.RepertoireNotes,
		groupes:           p.Groupes,
		taches:            p.Taches,
		labels:            p.Labels,
		notes:             p.Notes,
	}

	e := fiber.New(fiber.Config{
		ErrorHandler:          instance.ErrorHandler,
		DisableStartupMessage: true,
	})

	e.Use(recover.New())
	e.Use(instance.LogRequest)
	e.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(p.Config.Origins(), ","),
		AllowMethods:     "GET,POST,PATCH,DELETE",
		AllowCredentials: true,
	}))

	e.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	authG := e.Group("/auth")
	authG.Post("/register", instance.RateLimit, instance.Register)
	authG.Post("/login", instance.RateLimit, instance.Login)
	authG.Post("/logout", instance.Logout)
	authG.Get("/user", instance.CurrentUser)

	userG := e.Group("/users", instance.AuthMiddleware)
	userG.Get("", instance.UserList)
	userG.Get("/:id", instance.UserGet)
	userG.Post("", instance.UserCreate)
	userG.Patch("/:id", instance.UserUpdate)
	userG.Delete("/:id", instance.UserDelete)

	instance.repertoireRoutes(e.Group("/repertoires_groupes", instance.AuthMiddleware), instance.repertoireGroupes.Repertoires)
	instance.repertoireRoutes(e.Group("/repertoires_notes", instance.AuthMiddleware), instance.repertoireNotes.Repertoires)

	groupeG := e.Group("/groupes", instance.AuthMiddleware)
	groupeG.Get("", instance.GroupeList)
	groupeG.Get("/repertoire_groupe/:repertoireId", instance.GroupeListByRepertoire)
	groupeG.Get("/:id", instance.GroupeGet)
	groupeG.Post("", instance.GroupeCreate)
	groupeG.Patch("/:id", instance.GroupeUpdate)
	groupeG.Delete("/:id", instance.GroupeDelete)

	tacheG := e.Group("/taches", instance.AuthMiddleware)
	tacheG.Get("", instance.TacheList)
	tacheG.Get("/groupe/:groupeId", instance.TacheListByGroupe)
	tacheG.Get("/:id", instance.TacheGet)
	tacheG.Post("", instance.TacheCreate)
	tacheG.Patch("/:id", instance.TacheUpdate)
	tacheG.Delete("/:id", instance.TacheDelete)

	labelG := e.Group("/labels", instance.AuthMiddleware)
	labelG.Get("", instance.LabelList)
	labelG.Get("/repertoire/:repertoireId", instance.LabelListByRepertoire)
	labelG.Get("/tache/:id", instance.LabelListByTache)
	labelG.Get("/:id", instance.LabelGet)
	labelG.Post("", instance.LabelCreate)
	labelG.Patch("/:labelId/tache/:tacheId", instance.LabelAttach)
	labelG.Delete("/:labelId/tache/:tacheId", instance.LabelDetach)
	labelG.Patch("/:id", instance.LabelUpdate)
	labelG.Delete("/:id", instance.LabelDelete)

	noteG := e.Group("/notes", instance.AuthMiddleware)
	noteG.Get("", instance.NoteList)
	noteG.Get("/repertoire_note/:repertoireId", instance.NoteListByRepertoire)
	noteG.Get("/:id", instance.NoteGet)
	noteG.Post("", instance.NoteCreate)
	noteG.Patch("/:id", instance.NoteUpdate)
	noteG.Delete("/:id", instance.NoteDelete)

	e.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	instance.App = e
	return instance, nil
}
