package db

import (
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(
		NewGormClient,
		NewUserRepository,
		NewRepertoireGroupeRepository,
		NewRepertoireNoteRepository,
		NewGroupeRepository,
		NewTacheRepository,
		NewLabelRepository,
		NewNoteRepository,
	)
)
