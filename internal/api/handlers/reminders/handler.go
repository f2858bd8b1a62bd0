// Package reminders contains the HTTP handlers around the reminder engine:
// triggering a run, inspecting run history, and resetting sent milestones.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/hospitek/medequip-backend/internal/api/respond"
	"github.com/hospitek/medequip-backend/internal/model"
	notifrepo "github.com/hospitek/medequip-backend/internal/repository/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminders/mock.go -package=mocks

type reminderEngine interface {
	Run(ctx context.Context) (model.RunReport, error)
}

type notificationStore interface {
	ListRunReports(ctx context.Context, limit int) ([]model.RunReport, error)
	DeleteSentMilestone(ctx context.Context, equipmentID uuid.UUID, milestone int) error
}

type Handler struct {
	engine reminderEngine
	store  notificationStore
}

func NewHandler(engine reminderEngine, store notificationStore) *Handler {
	return &Handler{engine: engine, store: store}
}

// TriggerRun performs one reconciliation run synchronously and returns its
// report. The normal daily trigger is the scheduler; this endpoint exists
// for manual re-runs after fixing registry data.
func (h *Handler) TriggerRun(c *ginext.Context) {
	report, err := h.engine.Run(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("manual reconciliation run failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("reconciliation run failed"))
		return
	}

	respond.OK(c.Writer, report)
}

// ListRuns serves the most recent run reports.
func (h *Handler) ListRuns(c *ginext.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = parsed
	}

	reports, err := h.store.ListRunReports(c.Request.Context(), limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list run reports")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, reports)
}

// ResetMilestone deletes the SUCCESS record of one warranty milestone so the
// next run re-sends it.
func (h *Handler) ResetMilestone(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	milestone, err := strconv.Atoi(c.Param("months"))
	if err != nil || milestone <= 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid milestone"))
		return
	}

	if err := h.store.DeleteSentMilestone(c.Request.Context(), id, milestone); err != nil {
		if errors.Is(err, notifrepo.ErrSentRecordNotFound) {
			zlog.Logger.Warn().Str("equipment_id", id.String()).Int("milestone", milestone).Msg("sent record not found")
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to reset sent milestone")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "milestone reset")
}
