package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"taskboard.com/taskboard/internal/cache"
	config "taskboard.com/taskboard/internal/configs"
	httpapi "taskboard.com/taskboard/internal/http"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the board HTTP API server",
	Long:  "Starts the task board REST API backing the board, contacts and auth clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabase(cfg.DatabaseDSN)
		redisClient := config.NewRedisClient(cfg.RedisAddr)
		if redisClient != nil {
			defer redisClient.Close()
		}

		boardCache := cache.NewBoardCache(redisClient, time.Duration(cfg.CacheTTLSeconds)*time.Second)

		taskRepo := repository.NewTaskRepository(database)
		settingsRepo := repository.NewSettingsRepository(database)
		contactRepo := repository.NewContactRepository(database)
		userRepo := repository.NewUserRepository(database)

		taskService := services.NewTaskService(taskRepo, boardCache)
		settingsService := services.NewSettingsService(settingsRepo, boardCache)
		contactService := services.NewContactService(contactRepo)
		authService := services.NewAuthService(userRepo, cfg.JWTSecret,
			time.Duration(cfg.TokenTTLHours)*time.Hour)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(taskService, settingsService, authService, contactService)
		httpapi.Register(e, handler, authService, cfg.RateLimit)

		go func() {
			log.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Infof("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
