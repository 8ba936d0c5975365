package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"student-records/auth"
	"student-records/config"
	"student-records/db"
	"student-records/handlers"
	"student-records/middleware"
	"student-records/roster"
	"student-records/tokens"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config", err)
	}

	// Admin accounts
	authSvc, err := auth.NewService(cfg.BcryptCost)
	if err != nil {
		fatal("Failed to initialize auth", err)
	}
	if _, err := authSvc.Bootstrap(1, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		fatal("Failed to create admin account", err)
	}

	// Roster storage
	store, closeStore, err := openStore(cfg)
	if err != nil {
		fatal("Failed to initialize student store", err)
	}
	defer closeStore()

	if cfg.SeedRoster {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := roster.Seed(ctx, store, roster.DemoStudents())
		cancel()
		if err != nil {
			fatal("Failed to seed roster", err)
		}
	}

	app := handlers.NewApp(handlers.Deps{
		Auth:   authSvc,
		Roster: roster.NewService(store, nil),
		Tokens: tokens.NewRegistry(),
		Sessions: middleware.NewSessionStore(middleware.SessionConfig{
			TTL:    cfg.SessionTTL,
			Secure: cfg.Production(),
		}),
		CookieSecret:  cfg.SessionSecret,
		PublicBaseURL: cfg.PublicBaseURL,
		AccessLog:     true,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		slog.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Student Record Database API starting",
		"port", cfg.Port,
		"env", cfg.Env,
		"store", cfg.StoreDriver,
	)
	if cfg.Production() {
		slog.Info("Default admin account", "username", cfg.AdminUsername)
	} else {
		slog.Info("Default admin account", "username", cfg.AdminUsername, "password", cfg.AdminPassword)
	}

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		fatal("Server failed", err)
	}
}

// openStore returns the roster backend selected by STORE_DRIVER and a
// function releasing its resources.
func openStore(cfg config.Config) (roster.Store, func(), error) {
	if cfg.StoreDriver != config.StoreSQLite {
		return roster.NewMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := db.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	closeConn := func() {
		if err := conn.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}

	if err := db.RunMigrations(conn); err != nil {
		closeConn()
		return nil, nil, err
	}

	store, err := db.NewStudentStore(conn)
	if err != nil {
		closeConn()
		return nil, nil, err
	}
	return store, closeConn, nil
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
