// Command reminder performs a single reconciliation run and exits. It is the
// entrypoint invoked by the daily cron trigger.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"github.com/hospitek/medequip-backend/internal/config"
	"github.com/hospitek/medequip-backend/internal/reminder"
	notifrepo "github.com/hospitek/medequip-backend/internal/repository/notification"
	registryrepo "github.com/hospitek/medequip-backend/internal/repository/registry"
	"github.com/hospitek/medequip-backend/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), nil, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := db.Master.Close(); err != nil {
			zlog.Logger.Printf("failed to close master DB: %v", err)
		}
	}()

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

	report, err := engine.Run(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("reconciliation run failed")
		os.Exit(1)
	}

	zlog.Logger.Info().
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("reconciliation run completed")
}
