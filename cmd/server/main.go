package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	httpadapter "clienteapi/internal/adapters/http"
	"clienteapi/internal/adapters/postgres"
	redisadapter "clienteapi/internal/adapters/redis"
	"clienteapi/internal/application/auth"
	"clienteapi/internal/application/cliente"
	"clienteapi/internal/application/logradouro"
	"clienteapi/internal/config"
	"clienteapi/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg)

	domainPool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to open domain pool", "error", err)
		os.Exit(1)
	}
	defer domainPool.Close()

	identityPool, err := postgres.NewPool(ctx, cfg.IdentityDatabaseURL)
	if err != nil {
		log.Error("failed to open identity pool", "error", err)
		os.Exit(1)
	}
	defer identityPool.Close()

	// Both stores are mandatory; verify them before serving.
	g, pingCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return domainPool.Ping(pingCtx) })
	g.Go(func() error { return identityPool.Ping(pingCtx) })
	if err := g.Wait(); err != nil {
		log.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	var limiter httpadapter.LoginLimiter
	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		limiter = redisadapter.NewLoginLimiter(client, cfg.LoginRateLimit, cfg.LoginRateWindow)
		log.Info("login rate limiter enabled", "addr", cfg.RedisAddr)
	}

	clienteRepo := postgres.NewClienteRepository(domainPool)
	logradouroRepo := postgres.NewLogradouroRepository(domainPool)
	userRepo := postgres.NewUserRepository(identityPool)

	clienteService := cliente.NewService(clienteRepo)
	logradouroService := logradouro.NewService(logradouroRepo, clienteRepo)
	authService := auth.NewService(userRepo, cfg)

	router := httpadapter.NewRouter(cfg, &httpadapter.RouterDeps{
		Auth:       httpadapter.NewAuthHandler(authService, limiter, log),
		Cliente:    httpadapter.NewClienteHandler(clienteService, log),
		Logradouro: httpadapter.NewLogradouroHandler(logradouroService, log),
	})

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http: starting server", "address", cfg.Address)
		errCh <- srv.ListenAndServe()
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http: server shutdown error", "error", err)
		}

	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("http: server error", "error", err)
		}
	}

	log.Info("server stopped")
}
