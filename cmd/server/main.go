package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/auth"
	"github.com/propdesk/propdesk/internal/config"
	"github.com/propdesk/propdesk/internal/handlers"
	"github.com/propdesk/propdesk/internal/logger"
	"github.com/propdesk/propdesk/internal/middleware"
	"github.com/propdesk/propdesk/internal/session"
	"github.com/propdesk/propdesk/internal/telemetry"
	"github.com/propdesk/propdesk/internal/token"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.New(debugMode, false)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_console_gateway",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("session_backend", cfg.SessionBackend),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// OpenTelemetry tracing (opt-in)
	var tracerProvider *sdktrace.TracerProvider
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), "propdesk-gateway", cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracerProvider = tp
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := telemetry.Shutdown(shutdownCtx, tracerProvider); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	// Session storage: file by default, Redis when several gateway
	// instances share one operator session.
	var (
		store       session.Store
		redisClient *redis.Client
	)
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		redisStore, err := session.NewRedisStore(cfg.RedisURL, "", zapLogger)
		if err != nil {
			zapLogger.Fatal("failed_to_connect_to_redis", zap.Error(err))
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				zapLogger.Warn("failed_to_close_redis_connection", zap.Error(err))
			}
		}()
		store = redisStore
		redisClient = redisStore.Client()
		zapLogger.Info("connected_to_redis")
	default:
		fileStore, err := session.NewFileStore(cfg.SessionDir, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed_to_open_session_store", zap.Error(err))
		}
		store = fileStore
		zapLogger.Info("session_store_ready", zap.String("dir", fileStore.Dir()))
	}

	bus := session.NewBroadcaster()
	sessions := session.NewManager(store, bus, zapLogger)
	codec := token.NewCodec(zapLogger)

	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSecs) * time.Second}
	gateway := auth.NewGateway(cfg.APIBaseURL, httpClient, sessions, codec, zapLogger)
	apiClient := api.NewClient(cfg.APIBaseURL, httpClient, sessions, zapLogger)

	// Log session-state transitions so operators can correlate UI behavior
	// with logins, logouts, and lazy evictions.
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	go watchSessionState(watchCtx, bus, zapLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(gateway, zapLogger)
	ownerHandler := handlers.NewOwnerHandler(apiClient.Owners)
	propertyHandler := handlers.NewPropertyHandler(apiClient.Properties)
	imageHandler := handlers.NewImageHandler(apiClient.Images)
	traceHandler := handlers.NewTraceHandler(apiClient.Traces)
	dashboardHandler := handlers.NewDashboardHandler(apiClient)
	healthChecker := handlers.NewHealthChecker(cfg.APIBaseURL, httpClient, redisClient)

	// Setup router
	r := mux.NewRouter()

	// Middleware executes in reverse order of registration in gorilla/mux:
	// registered first = outermost wrapper.
	if cfg.OTELEnabled && tracerProvider != nil {
		r.Use(otelmux.Middleware("propdesk-gateway"))
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORS(cfg.FrontendURL, zapLogger))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(time.Duration(cfg.HTTPTimeoutSecs) * time.Second))
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.Logging(zapLogger))

	rateLimitMW, err := middleware.RateLimit(cfg.LoginRateLimit, redisClient)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	// Public routes
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")

	apiRouter := r.PathPrefix("/api/v1").Subrouter()

	// Auth routes: login/register are rate limited since they face
	// credential-guessing traffic.
	authRouter := apiRouter.PathPrefix("/auth").Subrouter()
	authRouter.Use(rateLimitMW)
	authHandler.RegisterPublicRoutes(authRouter)

	protectedAuthRouter := apiRouter.PathPrefix("/auth").Subrouter()
	protectedAuthRouter.Use(middleware.RequireSession(gateway, zapLogger))
	authHandler.RegisterProtectedRoutes(protectedAuthRouter)

	// Resource routes (protected, proxied to the remote API)
	sessionGuard := middleware.RequireSession(gateway, zapLogger)

	ownersRouter := apiRouter.PathPrefix("/owners").Subrouter()
	ownersRouter.Use(sessionGuard)
	ownerHandler.RegisterRoutes(ownersRouter)

	propertiesRouter := apiRouter.PathPrefix("/properties").Subrouter()
	propertiesRouter.Use(sessionGuard)
	propertyHandler.RegisterRoutes(propertiesRouter)

	imagesRouter := apiRouter.PathPrefix("/images").Subrouter()
	imagesRouter.Use(sessionGuard)
	imageHandler.RegisterRoutes(imagesRouter)

	tracesRouter := apiRouter.PathPrefix("/traces").Subrouter()
	tracesRouter.Use(sessionGuard)
	traceHandler.RegisterRoutes(tracesRouter)

	dashboardRouter := apiRouter.PathPrefix("/dashboard").Subrouter()
	dashboardRouter.Use(sessionGuard)
	dashboardRouter.HandleFunc("", dashboardHandler.Stats).Methods("GET")

	// Catch-all OPTIONS handler so preflight requests succeed even on
	// routes that don't list the method explicitly.
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")
	watchCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

// watchSessionState subscribes to the session broadcaster for the life of
// the process and logs every transition.
func watchSessionState(ctx context.Context, bus *session.Broadcaster, logger *zap.Logger) {
	id, ch := bus.Subscribe()
	defer bus.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			if change.IsAuthenticated {
				userName := ""
				if change.User != nil {
					userName = change.User.UserName
				}
				logger.Info("session_state_changed",
					zap.Bool("is_authenticated", true),
					zap.String("user_name", userName),
				)
			} else {
				logger.Info("session_state_changed", zap.Bool("is_authenticated", false))
			}
		}
	}
}
