package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/coc-sheet-api/internal/clients/sheets"
	"github.com/KirkDiggler/coc-sheet-api/internal/config"
	"github.com/KirkDiggler/coc-sheet-api/internal/handlers/coc/v1alpha1"
	"github.com/KirkDiggler/coc-sheet-api/internal/logger"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/character"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/clock"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/idgen"
	"github.com/KirkDiggler/coc-sheet-api/internal/redis"
	characterrepo "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character"
	dicesession "github.com/KirkDiggler/coc-sheet-api/internal/repositories/dice_session"
)

var (
	grpcPort      int
	store         string
	sheetEndpoint string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the gRPC server. Settings come from COC_* environment variables;
flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides COC_GRPC_PORT)")
	serverCmd.Flags().StringVar(&store, "store", "", "storage backend: sheets, redis or sqlite (overrides COC_STORE)")
	serverCmd.Flags().StringVar(&sheetEndpoint, "sheet-endpoint", "", "spreadsheet web app URL (overrides COC_SHEET_ENDPOINT)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = store
	}
	if cmd.Flags().Changed("sheet-endpoint") {
		cfg.SheetEndpoint = sheetEndpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCloser := logger.Setup(cfg.Log)
	defer logCloser.Close() // nolint:errcheck // best effort on exit

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	repos, err := buildRepositories(cfg)
	if err != nil {
		return err
	}
	defer repos.Close() // nolint:errcheck // best effort on exit

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: repos.sessions,
		IDGenerator:     idgen.NewPrefixed("roll"),
	})
	if err != nil {
		return fmt.Errorf("failed to create dice service: %w", err)
	}

	bus := events.NewBus()
	subscribeAuditLog(bus)

	characterService, err := character.New(&character.Config{
		CharacterRepo:    repos.characters,
		DiceService:      diceService,
		IDGenerator:      idgen.NewUUID(""),
		Clock:            clock.New(),
		EventBus:         bus,
		OccupationBudget: cfg.OccupationBudget,
	})
	if err != nil {
		return fmt.Errorf("failed to create character service: %w", err)
	}

	characterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: characterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create character handler: %w", err)
	}

	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(slog.Default())

	v1alpha1.RegisterCharacterServiceServer(srv, characterHandler)
	v1alpha1.RegisterDiceServiceServer(srv, diceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.CharacterServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.DiceServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.StartCall, grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			slog.ErrorContext(ctx, "Recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func subscribeAuditLog(bus events.EventBus) {
	audit := func(ctx context.Context, e events.Event) error {
		attrs := []any{"event", e.Type()}
		if src := e.Source(); src != nil {
			attrs = append(attrs, "character_id", src.GetID())
		}
		slog.InfoContext(ctx, "Character event", attrs...)
		return nil
	}
	bus.SubscribeFunc(character.EventCharacterSaved, 0, audit)
	bus.SubscribeFunc(character.EventCharacterDeleted, 0, audit)
}

type repositories struct {
	characters characterrepo.Repository
	sessions   dicesession.Repository
	closers    []io.Closer
}

func (r *repositories) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// buildRepositories opens the configured store. Roll sessions live in Redis
// when it is the store and in memory otherwise.
func buildRepositories(cfg *config.Config) (*repositories, error) {
	clk := clock.New()
	repos := &repositories{}

	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.Connect(redis.Topology{
			Addrs:      cfg.RedisAddrs,
			MasterName: cfg.RedisMasterName,
		}, &redis.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		repos.closers = append(repos.closers, client)

		repos.characters, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			return nil, fmt.Errorf("failed to create character repository: %w", err)
		}
		repos.sessions, err = dicesession.NewRedisRepository(&dicesession.Config{Client: client, Clock: clk})
		if err != nil {
			return nil, fmt.Errorf("failed to create dice session repository: %w", err)
		}

	case config.StoreSQLite:
		sqliteRepo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{Path: cfg.SQLitePath, Clock: clk})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		repos.closers = append(repos.closers, sqliteRepo)
		repos.characters = sqliteRepo
		repos.sessions = dicesession.NewInMemory(clk)

	default:
		client, err := sheets.New(&sheets.Config{
			Endpoint:    cfg.SheetEndpoint,
			HTTPTimeout: cfg.HTTPTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet client: %w", err)
		}
		if cfg.SheetEndpoint == "" {
			slog.Warn("No sheet endpoint configured; list, save and delete will fail")
		}

		repos.characters, err = characterrepo.NewSheets(&characterrepo.SheetsConfig{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create character repository: %w", err)
		}
		repos.sessions = dicesession.NewInMemory(clk)
	}

	return repos, nil
}
