package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/domain/user"
	uservo "campusvoice/internal/domain/user/valueobjects"
	infraaudit "campusvoice/internal/infrastructure/audit"
	"campusvoice/internal/infrastructure/auth"
	"campusvoice/internal/infrastructure/config"
	"campusvoice/internal/infrastructure/database"
	"campusvoice/internal/infrastructure/migration"
	"campusvoice/internal/infrastructure/repository"
	httprouter "campusvoice/internal/interfaces/http"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the CampusVoice HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run pending database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if autoMigrate {
		if err := migration.Up(database.Get()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Infow("database migrations applied")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Errorw("failed to close redis client", "error", err)
		}
	}()

	dispatcher := events.NewInMemoryEventDispatcher(100)
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}()

	auditRepo := repository.NewAuditLogRepository(database.Get())
	auditWriter := infraaudit.NewWriter(auditRepo, log)
	if err := auditWriter.Register(dispatcher); err != nil {
		return fmt.Errorf("failed to register audit writer: %w", err)
	}
	recorder := infraaudit.NewAsyncRecorder(dispatcher, log)

	gate, err := authorization.NewGate()
	if err != nil {
		return fmt.Errorf("failed to build authorization gate: %w", err)
	}

	if err := seedSuperadmin(cmd.Context(), cfg, log); err != nil {
		return fmt.Errorf("failed to seed superadmin: %w", err)
	}

	router := httprouter.NewRouter(database.Get(), redisClient, cfg, gate, recorder, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// seedSuperadmin creates the initial superadmin account when none exists yet.
// It only runs when a seed password is configured, so production deployments
// that manage accounts externally are unaffected.
func seedSuperadmin(ctx context.Context, cfg *config.Config, log logger.Interface) error {
	if cfg.Seed.AdminPassword == "" {
		return nil
	}

	userRepo := repository.NewUserRepository(database.Get())

	exists, err := userRepo.ExistsByStudentID(ctx, cfg.Seed.AdminStudentID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	sid, err := uservo.NewStudentID(cfg.Seed.AdminStudentID)
	if err != nil {
		return err
	}
	email, err := uservo.NewEmail(cfg.Seed.AdminEmail)
	if err != nil {
		return err
	}
	name, err := uservo.NewName(cfg.Seed.AdminName)
	if err != nil {
		return err
	}

	account, err := user.NewUser(sid, email, name, nil, authorization.RoleSuperadmin)
	if err != nil {
		return err
	}

	password, err := uservo.NewPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := account.SetPassword(password, hasher); err != nil {
		return err
	}

	if err := userRepo.Create(ctx, account); err != nil {
		return err
	}

	log.Infow("seeded superadmin account", "student_id", cfg.Seed.AdminStudentID)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
