package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberchat/backend/internal/config"
	"github.com/emberchat/backend/internal/logging"
	"github.com/emberchat/backend/internal/server"
)

func main() {
	port := flag.String("port", "", "Broker port (overrides EMBER_PORT)")
	userData := flag.String("user-data", "", "User-data root (overrides EMBER_USER_DATA_DIR)")
	install := flag.String("install", "", "Install root (overrides EMBER_INSTALL_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *userData != "" {
		cfg.Gate.UserDataDir = *userData
	}
	if *install != "" {
		cfg.Gate.InstallDir = *install
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("shutting down")
		if err := srv.Close(); err != nil {
			logger.Sugar().Errorf("shutdown error: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}
