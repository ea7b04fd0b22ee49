package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"guest_management/internal/api"
	"guest_management/internal/metrics"
	"guest_management/internal/repository"
	"guest_management/internal/service"
	"guest_management/internal/utils"
	"guest_management/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "啟動 HTTP API 服務",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, logger)
	},
}

func serve(parent context.Context, cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.Server.Mode)

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	tokens := utils.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.TokenTTL())
	services := service.NewServices(repository.NewRepositories(db), tokens)

	if err := bootstrapAdmin(ctx, services.Auth, cfg.Admin, logger); err != nil {
		return err
	}

	m := metrics.New()
	router := api.NewRouter(services, api.Options{
		Logger:             logger,
		Metrics:            m,
		LoginRatePerMinute: cfg.Server.LoginRatePerMinute,
	})

	servers := []*http.Server{newHTTPServer(cfg.Server.Address, router)}
	if cfg.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		servers = append(servers, newHTTPServer(cfg.Metrics.Address, mux))
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.Info().Str("address", srv.Addr).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
		}(srv)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case serveErr = <-errCh:
		logger.Error().Err(serveErr).Msg("http server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Str("address", srv.Addr).Msg("shutdown error")
		}
	}
	return serveErr
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

// bootstrapAdmin 在設定了 ADMIN_EMAIL 與 ADMIN_PASSWORD 時建立第一個管理員
func bootstrapAdmin(ctx context.Context, auth *service.AuthService, cfg config.AdminBootstrapConfig, logger zerolog.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		logger.Debug().Msg("admin bootstrap not configured; skipping")
		return nil
	}

	created, err := auth.EnsureAdmin(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		logger.Info().Str("email", cfg.Email).Msg("bootstrapped admin user")
	}
	return nil
}
