package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"veterinaria-api/internal/adapters/storage/postgres"
	"veterinaria-api/internal/config"
	"veterinaria-api/internal/platform/httpclient"
	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/router"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica el esquema en Postgres",
	RunE:  runMigrate,
}

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Consulta /health del servidor local (para HEALTHCHECK de Docker)",
	RunE:  runHealthcheck,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Aplicar el esquema antes de levantar el servidor")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, App: cfg.AppName})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.Storage == config.StoragePostgres {
		db, err = postgres.Open(ctx, cfg.DB.BuildDSN(), postgres.PoolOptions{MaxOpenConns: cfg.DB.MaxOpenConns})
		if err != nil {
			log.Error("no se pudo conectar a la base de datos", map[string]any{"err": err})
			return err
		}
		defer db.Close()

		if migrateOnStart {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
		}
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			DB:                 db,
			Logger:             log,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("servidor iniciado", map[string]any{"addr": srv.Addr, "storage": cfg.Storage})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("error del servidor", map[string]any{"err": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("apagando servidor", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, App: cfg.AppName})
	defer func() { _ = log.Sync() }()

	db, err := postgres.Open(cmd.Context(), cfg.DB.BuildDSN(), postgres.PoolOptions{MaxOpenConns: 1})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	log.Info("esquema aplicado", map[string]any{"db": cfg.DB.Name})
	return nil
}

func runHealthcheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := httpclient.New("http://localhost:"+cfg.Port, 3*time.Second)
	if err != nil {
		return err
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := client.GetJSON(cmd.Context(), "/health", &out); err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	if out.Status != "ok" {
		return fmt.Errorf("healthcheck: status %q", out.Status)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Status)
	return nil
}
