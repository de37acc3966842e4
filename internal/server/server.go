package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/danandika/mhs-api/internal/bootstrap"
	"github.com/danandika/mhs-api/internal/config"
	"github.com/danandika/mhs-api/internal/db"
	"github.com/danandika/mhs-api/internal/supervisor"
)

// Server owns the shared listener and the worker pool. The parent binds the
// port exactly once; every worker runs its own router, database client and
// http.Server, all accepting from the one listener. The database is the only
// resource workers share.
type Server struct {
	config   *config.Config
	logger   zerolog.Logger
	listener net.Listener
	pool     *supervisor.Supervisor
}

// NewServer loads configuration, sets up logging and prepares the pool.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config: cfg,
		logger: lgr,
	}

	s.pool = supervisor.New(supervisor.Policy{
		Workers:     cfg.Supervisor.Workers,
		MaxRestarts: cfg.Supervisor.MaxRestarts,
		Backoff:     cfg.SupervisorBackoff(),
		MaxBackoff:  cfg.SupervisorMaxBackoff(),
	}, s.runWorker, lgr)

	return s, nil
}

// Run binds the listener, starts the pool and blocks until an OS signal
// stops it or the pool gives up.
func (s *Server) Run() error {
	lis, err := net.Listen("tcp", ":"+s.config.Server.Port)
	if err != nil {
		s.logger.Error().Err(err).Str("port", s.config.Server.Port).Msg("Failed to bind listener")
		return err
	}
	s.listener = lis
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("HTTP listener bound")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	go func() {
		select {
		case sig := <-osSignals:
			s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
			cancel()
		case <-ctx.Done():
		}
	}()

	err = s.pool.Run(ctx)

	if closeErr := lis.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		s.logger.Error().Err(closeErr).Msg("Listener close error")
	}

	if err != nil {
		return err
	}
	s.logger.Info().Msg("Server shutdown process complete")
	return nil
}

// runWorker is the body of one pool worker: its own database connection,
// dependency graph and HTTP server over the shared listener. Any returned
// error makes the supervisor refork the slot.
func (s *Server) runWorker(ctx context.Context, id int) error {
	lgr := s.logger.With().Int("worker", id).Logger()

	database, err := db.Connect(ctx, s.config, lgr)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(context.Background()); err != nil {
			lgr.Error().Err(err).Msg("Database close error")
		}
	}()

	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		return err
	}

	deps := bootstrap.BuildDependencies(s.config, database, lgr)
	router := bootstrap.SetupRouter(s.config, deps, lgr)

	httpServer := &http.Server{
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErrors := make(chan error, 1)
	go func() {
		lgr.Info().Str("addr", s.listener.Addr().String()).Msg("Worker serving HTTP")
		serveErrors <- httpServer.Serve(s.listener)
	}()

	select {
	case err := <-serveErrors:
		if errors.Is(err, http.ErrServerClosed) || errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// Shutdown also closes the shared listener; by now the whole pool
		// is stopping, so siblings exit cleanly too.
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, net.ErrClosed) {
			lgr.Error().Err(err).Msg("HTTP server shutdown error")
		}
		<-serveErrors
		return nil
	}
}
