package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	registryhandler "github.com/hospitek/medequip-backend/internal/api/handlers/registry"
	remindershandler "github.com/hospitek/medequip-backend/internal/api/handlers/reminders"
	"github.com/hospitek/medequip-backend/internal/api/router"
	"github.com/hospitek/medequip-backend/internal/api/server"
	"github.com/hospitek/medequip-backend/internal/config"
	"github.com/hospitek/medequip-backend/internal/reminder"
	notifrepo "github.com/hospitek/medequip-backend/internal/repository/notification"
	registryrepo "github.com/hospitek/medequip-backend/internal/repository/registry"
	registrysvc "github.com/hospitek/medequip-backend/internal/service/registry"
	"github.com/hospitek/medequip-backend/internal/worker"
	"github.com/hospitek/medequip-backend/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	regRepo := registryrepo.NewRepository(db)
	sentRepo := notifrepo.NewRepository(db)

	dispatcher := reminder.NewDispatcher(
		emailClient, sentRepo, cfg.Retry, cfg.Reminder.SendInterval, cfg.Reminder.LogoPath,
	)
	engine := reminder.NewEngine(regRepo, sentRepo, dispatcher, cfg.Reminder.TestRecipient)

	regService := registrysvc.NewService(regRepo, sentRepo, rdb)

	regHandler := registryhandler.NewHandler(regService, val, cfg)
	remHandler := remindershandler.NewHandler(engine, sentRepo)

	reminderWorker := worker.NewWorker(engine, cfg.Reminder.RunHour)
	go reminderWorker.Run(ctx)

	r := router.New(regHandler, remHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
