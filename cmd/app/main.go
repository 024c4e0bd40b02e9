package main

import (
	"go.uber.org/fx"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/config"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/logger"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/proto"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/service"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/transport"
)

func main() {
	fx.New(
		config.Module,
		logger.Module,
		db.Module,
		service.Module,
		transport.Module,
		proto.Module,
		fx.Invoke(func(*transport.HTTPServer, *proto.HealthServer) {}),
	).Run()
}
