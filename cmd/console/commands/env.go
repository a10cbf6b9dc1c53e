package commands

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/auth"
	"github.com/propdesk/propdesk/internal/config"
	"github.com/propdesk/propdesk/internal/logger"
	"github.com/propdesk/propdesk/internal/session"
	"github.com/propdesk/propdesk/internal/token"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env bundles the wired-up clients every command needs. Commands build one
// at the top of RunE and defer Close.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	sessions *session.Manager
	gateway  *auth.Gateway
	api      *api.Client

	closers []func() error
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.LoadWithFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	zapLogger, err := logger.New(debug, true)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	e := &env{cfg: cfg, logger: zapLogger}
	e.closers = append(e.closers, func() error { return logger.Sync(zapLogger) })

	var store session.Store
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		redisStore, err := session.NewRedisStore(cfg.RedisURL, "", zapLogger)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		e.closers = append(e.closers, redisStore.Close)
		store = redisStore
	default:
		fileStore, err := session.NewFileStore(cfg.SessionDir, zapLogger)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
		store = fileStore
	}

	e.sessions = session.NewManager(store, session.NewBroadcaster(), zapLogger)
	codec := token.NewCodec(zapLogger)
	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSecs) * time.Second}
	e.gateway = auth.NewGateway(cfg.APIBaseURL, httpClient, e.sessions, codec, zapLogger)
	e.api = api.NewClient(cfg.APIBaseURL, httpClient, e.sessions, zapLogger)

	return e, nil
}

// Close releases connections in reverse acquisition order.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cleanup failed: %v\n", err)
		}
	}
}

// requireSession fails fast when no live session exists, so resource
// commands give one consistent message instead of a remote 401.
func (e *env) requireSession(cmd *cobra.Command) error {
	if !e.gateway.IsAuthenticated(cmd.Context()) {
		return fmt.Errorf("not logged in (run 'propdesk login')")
	}
	return nil
}
