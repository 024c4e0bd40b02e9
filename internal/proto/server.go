package proto

import (
	"context"
	"net"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/souviens-back/internal/config"
	"github.com/Rogue-Bear-Innovations/souviens-back/internal/db"
)

// ServiceName is the name probes can ask about besides the empty one.
const ServiceName = "souviens"

const (
	refreshInterval = 10 * time.Second
	pingTimeout     = 2 * time.Second
)

// HealthServer exposes the standard gRPC health service. Its status follows
// the database connection.
type HealthServer struct {
	Server *grpc.Server

	health *health.Server
	db     *gorm.DB
	logger *zap.SugaredLogger
	stop   chan struct{}
}

func NewGRPCServer(lc fx.Lifecycle, cfg *config.Config, gdb *gorm.DB, logger *zap.SugaredLogger) *HealthServer {
	instance := New(gdb, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", cfg.Host+":"+cfg.GRPCPort)
			if err != nil {
				return err
			}
			instance.Refresh(ctx)

			go func() {
				logger.Infow("Starting GRPC server.", "listen", lis.Addr().String())
				if err := instance.Server.Serve(lis); err != nil {
					logger.Errorw("GRPC server stopped", "error", err)
				}
			}()
			go instance.watch()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping GRPC server.")
			close(instance.stop)
			instance.health.Shutdown()
			instance.Server.GracefulStop()
			return nil
		},
	})

	return instance
}

// New registers the health and reflection services on a fresh grpc server.
// Everything reports NOT_SERVING until the first Refresh.
func New(gdb *gorm.DB, logger *zap.SugaredLogger) *HealthServer {
	s := &HealthServer{
		Server: grpc.NewServer(),
		health: health.NewServer(),
		db:     gdb,
		logger: logger,
		stop:   make(chan struct{}),
	}
	s.set(healthpb.HealthCheckResponse_NOT_SERVING)

	healthpb.RegisterHealthServer(s.Server, s.health)
	reflection.Register(s.Server)
	return s
}

// Refresh pings the database and publishes the result.
func (s *HealthServer) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.Ping(ctx, s.db); err != nil {
		s.logger.Warnw("database ping failed", "error", err)
		s.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.set(healthpb.HealthCheckResponse_SERVING)
}

func (s *HealthServer) set(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

func (s *HealthServer) watch() {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.Refresh(context.Background())
		}
	}
}
