package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/hospitek/medequip-backend/internal/model"
)

//go:generate mockgen -source=engine.go -destination=../mocks/reminder/engine/mock.go -package=mocks

// registryStore is the read side of the registry the engine reconciles.
type registryStore interface {
	ListEquipmentWithClient(ctx context.Context) ([]model.EquipmentWithClient, error)
	ListOptedInStaffEmails(ctx context.Context) ([]string, error)
}

// sentStore reads delivered-milestone records and persists run reports.
type sentStore interface {
	ListSentMilestones(ctx context.Context, equipmentID uuid.UUID) ([]int, error)
	CreateRunReport(ctx context.Context, report model.RunReport) error
}

type notificationDispatcher interface {
	Send(ctx context.Context, n Notification) error
}

// Engine performs one reconciliation run: it walks every piece of equipment,
// asks the policy what is due, and submits due notifications to the
// dispatcher strictly one at a time.
type Engine struct {
	registry   registryStore
	sent       sentStore
	dispatcher notificationDispatcher
	override   string // test recipient replacing every computed list when set
}

func NewEngine(registry registryStore, sent sentStore, dispatcher notificationDispatcher, testRecipient string) *Engine {
	return &Engine{
		registry:   registry,
		sent:       sent,
		dispatcher: dispatcher,
		override:   testRecipient,
	}
}

// Run reconciles the whole registry once. Equipment with a missing or
// unparseable invoice date is skipped and counted. A *DispatchError fails
// only its notification; any other error is repository-level and aborts the
// run, leaving a retry to the next scheduled invocation.
func (e *Engine) Run(ctx context.Context) (model.RunReport, error) {
	report := model.RunReport{StartedAt: time.Now()}
	today := Midnight(time.Now())

	staffEmails, err := e.registry.ListOptedInStaffEmails(ctx)
	if err != nil {
		return report, fmt.Errorf("list staff emails: %w", err)
	}

	items, err := e.registry.ListEquipmentWithClient(ctx)
	if err != nil {
		return report, fmt.Errorf("list equipment: %w", err)
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if item.Equipment.InvoiceDate == "" {
			report.Skipped++
			continue
		}

		invoiceDate, err := ParseDate(item.Equipment.InvoiceDate)
		if err != nil {
			zlog.Logger.Warn().Err(err).
				Str("equipment_id", item.Equipment.ID.String()).
				Msg("skipping equipment with unparseable invoice date")
			report.Skipped++
			continue
		}

		sentMilestones, err := e.sent.ListSentMilestones(ctx, item.Equipment.ID)
		if err != nil {
			return report, fmt.Errorf("list sent milestones: %w", err)
		}

		recipients := ResolveRecipients(item.Client, staffEmails, e.override)

		for _, due := range DueNotifications(invoiceDate, today, sentMilestones) {
			n := Notification{
				Due:        due,
				Equipment:  item.Equipment,
				Client:     item.Client,
				Recipients: recipients,
			}

			if err := e.dispatcher.Send(ctx, n); err != nil {
				var dispatchErr *DispatchError
				if errors.As(err, &dispatchErr) {
					zlog.Logger.Error().Err(err).
						Str("equipment_id", item.Equipment.ID.String()).
						Str("kind", string(due.Kind)).
						Int("milestone", due.Milestone).
						Msg("notification failed")
					report.Failed++
					continue
				}
				return report, err
			}

			report.Sent++
		}
	}

	report.FinishedAt = time.Now()
	if err := e.sent.CreateRunReport(ctx, report); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to persist run report")
	}

	return report, nil
}
