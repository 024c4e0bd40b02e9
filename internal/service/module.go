package service

import (
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(
		NewAuth,
		NewUsers,
		NewRepertoireGroupes,
		NewRepertoireNotes,
		NewGroupes,
		NewTaches,
		NewLabels,
		NewNotes,
	)
)
