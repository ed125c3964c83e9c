// Package server initializes and runs the application: it selects the
// storage backend, runs migrations or view setup, wires the services, and
// starts both transports with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/logging"
	"github.com/inkpresscms/inkpress/internal/server/config"
	gs "github.com/inkpresscms/inkpress/internal/server/grpc"
	"github.com/inkpresscms/inkpress/internal/server/httpapi"
	"github.com/inkpresscms/inkpress/internal/server/repositories/repomanager"
	"github.com/inkpresscms/inkpress/internal/server/services"
	"github.com/inkpresscms/inkpress/internal/views"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	contentService    *services.ContentService
	mediaService      *services.MediaService
	submissionService *services.SubmissionService
}

// newRepositoryManager picks the storage backend from configuration.
func newRepositoryManager(cfg *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	switch cfg.Backend {
	case config.BackendCouch:
		client, err := couch.NewClient(cfg.CouchURL, cfg.CouchDatabase, cfg.CouchUser, cfg.CouchPassword, logger)
		if err != nil {
			return nil, fmt.Errorf("document store init error: %w", err)
		}
		return repomanager.NewCouchRepositoryManager(client, views.Default()), nil
	case config.BackendPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		return repomanager.NewPostgresRepositoryManager(db, logger), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", cfg.Backend)
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := newRepositoryManager(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := rm.Init(ctx); err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return &App{
		config:            cfg,
		logger:            logger,
		contentService:    services.NewContentService(rm),
		mediaService:      services.NewMediaService(rm, cfg),
		submissionService: services.NewSubmissionService(rm),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
			app.contentService, app.mediaService, app.submissionService,
			app.config.SecretKey, app.config.TokenIssuer)
		if err != nil {
			return err
		}
		return s.Run(ctx)
	})

	g.Go(func() error {
		s, err := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger,
			app.contentService, app.mediaService, app.submissionService,
			app.config.SecretKey, app.config.TokenIssuer)
		if err != nil {
			return err
		}
		return s.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
