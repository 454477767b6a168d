package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v4"

	. "github.com/DrGermanius/ReceiptProcessor/internal"
)

func main() {
	cfg, err := NewConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, ff.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(0)
		}
		log.Fatal(err)
	}

	sugaredLogger, err := NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer sugaredLogger.Sync()

	repository := NewRepository(sugaredLogger)
	service := NewService(repository, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	app := NewApp(handlers)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()
	sugaredLogger.Infof("Listening on %s", cfg.RunAddress)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		sugaredLogger.Errorf("Shutdown error: %s", err.Error())
	}
}
