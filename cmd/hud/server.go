package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-hud/internal/clients/srd"
	"github.com/KirkDiggler/rpg-hud/internal/config"
	"github.com/KirkDiggler/rpg-hud/internal/engine"
	"github.com/KirkDiggler/rpg-hud/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/formula"
	"github.com/KirkDiggler/rpg-hud/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-hud/internal/orchestrators/autosave"
	diceorchestrator "github.com/KirkDiggler/rpg-hud/internal/orchestrators/dice"
	sheetorchestrator "github.com/KirkDiggler/rpg-hud/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-hud/internal/redis"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the hud gRPC server. Settings come from HUD_* environment variables; --port overrides HUD_GRPC_PORT.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	srdClient, err := srd.New(&srd.Config{
		BaseURL:  cfg.DND5eAPIURL,
		CacheTTL: cfg.DND5eCacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create SRD client: %w", err)
	}

	bus := events.NewBus()
	bus.SubscribeFunc(engine.EventCharacterLeveled, 0, func(ctx context.Context, e events.Event) error {
		level, _ := e.Context().Get(engine.ContextKeyLevel)
		slog.InfoContext(ctx, "character leveled", "character_id", e.Source().GetID(), "level", level)
		return nil
	})
	eventEngine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	var formulas formula.Evaluator
	if cfg.FormulasEnabled {
		formulas = formula.NewLuaEvaluator()
	}

	sheetService, err := sheetorchestrator.New(&sheetorchestrator.Config{
		Repo:        repo,
		Engine:      eventEngine,
		SRD:         srdClient,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID(idgen.PrefixCharacter),
		Formulas:    formulas,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	diceService, err := diceorchestrator.NewOrchestrator(&diceorchestrator.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID(idgen.PrefixRoll),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	saver, err := autosave.New(&autosave.Config{
		Persister: sheetService,
		Interval:  cfg.AutosaveInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create autosave: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService: sheetService,
		DiceService:  diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	restoreCharacter(ctx, sheetService)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(slogLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(slogLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
	)

	v1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.InfoContext(gctx, "gRPC server starting", "port", cfg.GRPCPort, "storage", cfg.Storage)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return saver.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()
		stopServer(srv)
		return nil
	})

	return g.Wait()
}

// openStore builds the configured document repository and its cleanup
func openStore(ctx context.Context, cfg *config.Config) (documents.Repository, func(), error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, err
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}

		repo, err := documents.NewRedis(&documents.RedisConfig{Client: client, Clock: clock.New()})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil

	default:
		repo, err := documents.NewSQLite(&documents.SQLiteConfig{Path: cfg.SQLitePath, Clock: clock.New()})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	}
}

// restoreCharacter loads the last saved character so the sheet comes back
// the way it was left
func restoreCharacter(ctx context.Context, service sheet.Service) {
	output, err := service.LoadCharacter(ctx, &sheet.LoadCharacterInput{})
	switch {
	case errors.IsNotFound(err):
		slog.InfoContext(ctx, "no saved character yet")
	case err != nil:
		slog.WarnContext(ctx, "saved character could not be restored", "error", err)
	default:
		slog.InfoContext(ctx, "restored character", "name", output.Character.Name, "class", output.ClassDisplay)
	}
}

func stopServer(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}

// slogLogger adapts slog to the middleware logger. The middleware levels
// share slog's numeric values.
func slogLogger(logger *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic in handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}
