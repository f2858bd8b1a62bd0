package reminder

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/hospitek/medequip-backend/internal/model"
	"github.com/hospitek/medequip-backend/pkg/email"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/reminder/dispatch/mock.go -package=mocks

// emailSender is the external transport the dispatcher hands rendered
// emails to.
type emailSender interface {
	Send(to []string, subject, html string, attachments []email.Attachment) error
}

// sentRecorder persists SUCCESS records for delivered warranty milestones.
type sentRecorder interface {
	RecordSentMilestone(ctx context.Context, equipmentID uuid.UUID, milestone int) error
}

// DispatchError marks a failure confined to one notification: the engine
// counts it and moves on. No SUCCESS record is written for it, so warranty
// milestones retry naturally on the next run.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string { return fmt.Sprintf("dispatch: %v", e.Err) }

func (e *DispatchError) Unwrap() error { return e.Err }

// Notification is one policy decision addressed and ready to send.
type Notification struct {
	Due        Due
	Equipment  model.Equipment
	Client     model.Client
	Recipients []string
}

// Dispatcher renders and sends reminder emails one at a time, keeping a
// fixed minimum delay between consecutive external sends so the SMTP
// provider's rate limit is respected. It must not be called concurrently.
type Dispatcher struct {
	sender      emailSender
	recorder    sentRecorder
	strategy    retry.Strategy
	minInterval time.Duration
	logoPath    string
	lastSend    time.Time
}

func NewDispatcher(sender emailSender, recorder sentRecorder, strategy retry.Strategy, minInterval time.Duration, logoPath string) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		recorder:    recorder,
		strategy:    strategy,
		minInterval: minInterval,
		logoPath:    logoPath,
	}
}

// Send renders the notification, waits out the inter-send delay, submits it
// to the email transport, and on success of a warranty milestone writes the
// SUCCESS record before returning. The record write happening before the
// return means a crash between send and write is the only window in which
// the next run could duplicate a milestone email.
func (d *Dispatcher) Send(ctx context.Context, n Notification) error {
	if err := d.throttle(ctx); err != nil {
		return err
	}

	attachments := d.logoAttachment()

	subject, body, err := renderEmail(n, len(attachments) > 0)
	if err != nil {
		return &DispatchError{Err: err}
	}

	err = retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return d.sender.Send(n.Recipients, subject, body, attachments)
		}
	}, d.strategy)
	d.lastSend = time.Now()

	if err != nil {
		return &DispatchError{Err: err}
	}

	if n.Due.Kind == KindWarrantyMilestone {
		if err := d.recorder.RecordSentMilestone(ctx, n.Equipment.ID, n.Due.Milestone); err != nil {
			return fmt.Errorf("record sent milestone: %w", err)
		}
	}

	return nil
}

// throttle blocks until minInterval has passed since the previous send.
func (d *Dispatcher) throttle(ctx context.Context) error {
	if d.minInterval <= 0 || d.lastSend.IsZero() {
		return nil
	}

	wait := d.minInterval - time.Since(d.lastSend)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// logoAttachment loads the company logo for inline embedding. A missing or
// unreadable file downgrades the email to plain HTML instead of failing it.
func (d *Dispatcher) logoAttachment() []email.Attachment {
	if d.logoPath == "" {
		return nil
	}

	content, err := os.ReadFile(d.logoPath)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("path", d.logoPath).Msg("logo unavailable, sending without it")
		return nil
	}

	return []email.Attachment{{
		Filename:  "logo.png",
		Content:   content,
		ContentID: logoContentID,
	}}
}
