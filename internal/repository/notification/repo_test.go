package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/hospitek/medequip-backend/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestListSentMilestones(t *testing.T) {
	repo, mock := setupMockDB(t)

	equipmentID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT milestone
		FROM sent_notifications
		WHERE equipment_id = $1 AND status = $2
		ORDER BY milestone;
    `)).
		WithArgs(equipmentID, model.StatusSuccess).
		WillReturnRows(sqlmock.NewRows([]string{"milestone"}).AddRow(3).AddRow(6))

	milestones, err := repo.ListSentMilestones(context.Background(), equipmentID)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 6}, milestones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSentMilestones_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	equipmentID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT milestone
		FROM sent_notifications
		WHERE equipment_id = $1 AND status = $2
		ORDER BY milestone;
    `)).
		WithArgs(equipmentID, model.StatusSuccess).
		WillReturnRows(sqlmock.NewRows([]string{"milestone"}))

	milestones, err := repo.ListSentMilestones(context.Background(), equipmentID)
	assert.NoError(t, err)
	assert.Empty(t, milestones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSentMilestone(t *testing.T) {
	repo, mock := setupMockDB(t)

	equipmentID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO sent_notifications (equipment_id, milestone, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (equipment_id, milestone) DO NOTHING;
    `)).
		WithArgs(equipmentID, 3, model.StatusSuccess).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordSentMilestone(context.Background(), equipmentID, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSentMilestone_ConflictIsNoOp(t *testing.T) {
	repo, mock := setupMockDB(t)

	equipmentID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO sent_notifications (equipment_id, milestone, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (equipment_id, milestone) DO NOTHING;
    `)).
		WithArgs(equipmentID, 3, model.StatusSuccess).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RecordSentMilestone(context.Background(), equipmentID, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSentMilestone(t *testing.T) {
	repo, mock := setupMockDB(t)

	equipmentID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM sent_notifications
		WHERE equipment_id = $1 AND milestone = $2;
    `)).
		WithArgs(equipmentID, 6).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteSentMilestone(context.Background(), equipmentID, 6)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM sent_notifications
		WHERE equipment_id = $1 AND milestone = $2;
    `)).
		WithArgs(equipmentID, 6).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteSentMilestone(context.Background(), equipmentID, 6)
	assert.ErrorIs(t, err, ErrSentRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRunReport(t *testing.T) {
	repo, mock := setupMockDB(t)

	report := model.RunReport{
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
		Sent:       4,
		Failed:     1,
		Skipped:    2,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO reminder_runs (started_at, finished_at, sent, failed, skipped)
		VALUES ($1, $2, $3, $4, $5);
    `)).
		WithArgs(report.StartedAt, report.FinishedAt, report.Sent, report.Failed, report.Skipped).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRunReport(context.Background(), report)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRunReports(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "started_at", "finished_at", "sent", "failed", "skipped"}).
		AddRow(uuid.New(), now, now, 4, 1, 2).
		AddRow(uuid.New(), now.Add(-time.Hour), now.Add(-time.Hour), 0, 0, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, started_at, finished_at, sent, failed, skipped
		FROM reminder_runs
		ORDER BY started_at DESC
		LIMIT $1;
    `)).
		WithArgs(20).
		WillReturnRows(rows)

	reports, err := repo.ListRunReports(context.Background(), 20)
	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, 4, reports[0].Sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}
