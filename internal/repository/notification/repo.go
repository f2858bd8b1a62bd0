// Package notification persists delivered-milestone records and run reports.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/hospitek/medequip-backend/internal/model"
)

var ErrSentRecordNotFound = errors.New("sent notification record not found")

// Repository provides access to the sent_notifications and reminder_runs
// tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListSentMilestones retrieves the warranty milestones already delivered for
// one piece of equipment. Only SUCCESS records count: the engine treats
// their existence as the sole de-duplication signal.
func (r *Repository) ListSentMilestones(ctx context.Context, equipmentID uuid.UUID) ([]int, error) {
	query := `
		SELECT milestone
		FROM sent_notifications
		WHERE equipment_id = $1 AND status = $2
		ORDER BY milestone;
    `

	rows, err := r.db.QueryContext(ctx, query, equipmentID, model.StatusSuccess)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent milestones: %w", err)
	}
	defer rows.Close()

	var milestones []int
	for rows.Next() {
		var m int
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}

		milestones = append(milestones, m)
	}

	return milestones, rows.Err()
}

// RecordSentMilestone writes the SUCCESS record for one delivered warranty
// milestone. The unique (equipment_id, milestone) index makes a concurrent
// duplicate a no-op instead of an error.
func (r *Repository) RecordSentMilestone(ctx context.Context, equipmentID uuid.UUID, milestone int) error {
	query := `
		INSERT INTO sent_notifications (equipment_id, milestone, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (equipment_id, milestone) DO NOTHING;
    `

	if _, err := r.db.ExecContext(ctx, query, equipmentID, milestone, model.StatusSuccess); err != nil {
		return fmt.Errorf("failed to record sent milestone: %w", err)
	}

	return nil
}

// DeleteSentMilestone removes one SUCCESS record, forcing the engine to
// re-send that milestone on its next run.
func (r *Repository) DeleteSentMilestone(ctx context.Context, equipmentID uuid.UUID, milestone int) error {
	query := `
		DELETE FROM sent_notifications
		WHERE equipment_id = $1 AND milestone = $2;
    `

	res, err := r.db.ExecContext(ctx, query, equipmentID, milestone)
	if err != nil {
		return fmt.Errorf("failed to delete sent milestone: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrSentRecordNotFound
	}

	return nil
}

// CreateRunReport persists the aggregate counts of one reconciliation run.
func (r *Repository) CreateRunReport(ctx context.Context, report model.RunReport) error {
	query := `
		INSERT INTO reminder_runs (started_at, finished_at, sent, failed, skipped)
		VALUES ($1, $2, $3, $4, $5);
    `

	_, err := r.db.ExecContext(
		ctx, query, report.StartedAt, report.FinishedAt, report.Sent, report.Failed, report.Skipped,
	)
	if err != nil {
		return fmt.Errorf("failed to create run report: %w", err)
	}

	return nil
}

// ListRunReports retrieves the most recent run reports, newest first.
func (r *Repository) ListRunReports(ctx context.Context, limit int) ([]model.RunReport, error) {
	query := `
		SELECT id, started_at, finished_at, sent, failed, skipped
		FROM reminder_runs
		ORDER BY started_at DESC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list run reports: %w", err)
	}
	defer rows.Close()

	var reports []model.RunReport
	for rows.Next() {
		var rep model.RunReport
		if err := rows.Scan(&rep.ID, &rep.StartedAt, &rep.FinishedAt, &rep.Sent, &rep.Failed, &rep.Skipped); err != nil {
			return nil, err
		}

		reports = append(reports, rep)
	}

	return reports, rows.Err()
}
