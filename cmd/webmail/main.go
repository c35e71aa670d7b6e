package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ka-tch/webmail/internal/auth"
	"github.com/ka-tch/webmail/internal/config"
	httpserver "github.com/ka-tch/webmail/internal/http_server"
	sl "github.com/ka-tch/webmail/internal/lib/logger"
	"github.com/ka-tch/webmail/internal/mail"
	"github.com/ka-tch/webmail/internal/mailer"
	"github.com/ka-tch/webmail/internal/rabbitmq"
	"github.com/ka-tch/webmail/internal/storage/memory"
	redisstore "github.com/ka-tch/webmail/internal/storage/redis"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad("./config/config.yaml")

	log := setupLogger(cfg.Env)

	log.Info("starting webmail backend", slog.String("env", cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Info("Shutdown signal received")
		cancel()
	}()

	users := memory.NewUsers()

	mailbox := memory.NewMailbox()
	if cfg.SeedInbox {
		mailbox.Seed()
	}

	var sessions auth.SessionStore
	if cfg.Sessions.Redis.Addr != "" {
		redisSessions, err := redisstore.New(
			ctx,
			cfg.Sessions.Redis.Addr,
			cfg.Sessions.Redis.Password,
			cfg.Sessions.Redis.DB,
			cfg.Sessions.TTL,
		)
		if err != nil {
			log.Error("failed to connect redis", sl.Err(err))
			os.Exit(1)
		}
		defer redisSessions.Close()

		sessions = redisSessions
	} else {
		sessions = memory.NewSessions(cfg.Sessions.TTL)
	}

	sender, closeSender, err := setupSender(cfg)
	if err != nil {
		log.Error("failed to set up mail transport", sl.Err(err))
		os.Exit(1)
	}
	defer closeSender()

	authService := auth.New(log, users, sessions, cfg.EmailDomain)
	mailService := mail.New(log, mailbox, users, sender)

	validate := validator.New()

	router := httpserver.New(
		log,
		validate,
		authService,
		mailService,
		cfg.Sessions.CookieName,
		cfg.Sessions.TTL,
	)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server is running", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed", sl.Err(err))
			cancel()
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down HTTP server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", sl.Err(err))
	} else {
		log.Info("Server stopped gracefully")
	}
}

func setupSender(cfg *config.Config) (mail.Sender, func(), error) {
	switch cfg.Mail.Transport {
	case "smtp":
		return &mailer.Mailer{
			Host:     cfg.Mail.SMTP.Host,
			Port:     cfg.Mail.SMTP.Port,
			Username: cfg.Mail.SMTP.Username,
			Password: cfg.Mail.SMTP.Password,
		}, func() {}, nil
	case "amqp":
		client, err := rabbitmq.New(cfg.Mail.AMQP.URL, cfg.Mail.AMQP.QueueName)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	default:
		return mail.NopSender{}, func() {}, nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
