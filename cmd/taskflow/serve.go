package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/marshad7/taskflow/internal/application/account"
	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/application/task"
	"github.com/marshad7/taskflow/internal/config"
	httprouter "github.com/marshad7/taskflow/internal/infrastructure/http"
	"github.com/marshad7/taskflow/internal/infrastructure/http/handlers"
	"github.com/marshad7/taskflow/internal/infrastructure/http/middleware"
	"github.com/marshad7/taskflow/internal/infrastructure/persistence/memory"
	"github.com/marshad7/taskflow/internal/infrastructure/persistence/postgres"
	redisstore "github.com/marshad7/taskflow/internal/infrastructure/persistence/redis"
	"github.com/marshad7/taskflow/internal/infrastructure/security"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	var (
		pool     *pgxpool.Pool
		users    ports.UserRepository
		tasks    ports.TaskRepository
		sessions ports.SessionStore
	)
	if cfg.Database.URL != "" {
		pool, err = pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to database")
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("ping database")
		}
		users = postgres.NewUserRepository(pool)
		tasks = postgres.NewTaskRepository(pool)
		sessions = postgres.NewSessionStore(pool)
	} else {
		log.Warn().Msg("DATABASE_URL not set; using in-memory stores (data is not persisted)")
		users = memory.NewUserRepository()
		tasks = memory.NewTaskRepository()
		sessions = memory.NewSessionStore()
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; keeping sessions in the primary store")
			redisClient = nil
		} else {
			sessions = redisstore.NewSessionStore(redisClient)
		}
	}

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	registerUC := account.NewRegister(users, sessions, hasher, cfg.Session.TTL)
	loginUC := account.NewLogin(users, sessions, hasher, cfg.Session.TTL)
	logoutUC := account.NewLogout(sessions)
	currentUserUC := account.NewCurrentUser(users)
	createUC := task.NewCreate(tasks)
	listUC := task.NewList(tasks)
	updateUC := task.NewUpdate(tasks)
	deleteUC := task.NewDelete(tasks)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, currentUserUC, !cfg.DevMode, log)
	tasksHandler := handlers.NewTasksHandler(createUC, listUC, updateUC, deleteUC, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)
	sessionAuth := middleware.NewSessionAuth(sessions)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.PerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.DevMode))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:    authHandler,
		TasksHandler:   tasksHandler,
		HealthHandler:  healthHandler,
		RequireSession: sessionAuth.Handler,
		Secure:         secureMiddleware,
		IPRateLimit:    ipLimit,
		Log:            log,
		Metrics:        true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
