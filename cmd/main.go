package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"blog_service/internal/handlers"
	"blog_service/internal/logger"
	"blog_service/internal/repository"
	"blog_service/internal/repository/db"
	"blog_service/internal/server"
	"blog_service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load config.yml before the logger so log.level applies
	if err := loadConfig(); err != nil {
		logger.Get("info").Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// the signing key is environment-only, never checked in
	signingKey := viper.GetString("auth.secret")
	if signingKey == "" {
		log.Fatalw("JWT_SECRET is not set")
	}

	// open DB (pooled handle, shared across requests)
	gdb, err := db.Init(db.Config{
		Driver: viper.GetString("db.driver"),
		DSN:    viper.GetString("db.dsn"),
	})
	if err != nil {
		log.Fatalw("failed to init database", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(gdb)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: signingKey,
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	// JWT_SECRET comes from the environment, not the file
	return viper.BindEnv("auth.secret", "JWT_SECRET")
}

// waitForShutdown listens for termination signals and performs graceful
// shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
