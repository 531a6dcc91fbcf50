package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imageresizer/internal/config"
	"imageresizer/internal/server"
	"imageresizer/pkg/logger"
)

func main() {
	configFile := flag.String("config", os.Getenv("CONFIG"), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		os.Stderr.WriteString("CRITICAL: Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.NewSugared(cfg.Log.Level)
	if err != nil {
		os.Stderr.WriteString("CRITICAL: Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.App.RootDir == "" {
		log.Warnf("APP_ROOT_DIR is not set; any image path reachable by %s:%s clients can be overwritten", cfg.Server.Host, cfg.Server.Port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, log.Desugar())
	if err != nil {
		log.Fatal("Failed to create server: ", err)
	}

	go func() {
		if err := srv.Run(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed: ", err)
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}
