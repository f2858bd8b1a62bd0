// Package registry orchestrates the client/equipment/staff CRUD surface and
// serves the cached reminder-schedule preview.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/hospitek/medequip-backend/internal/model"
	"github.com/hospitek/medequip-backend/internal/reminder"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/registry/mock.go -package=mocks

type registryRepo interface {
	CreateClient(ctx context.Context, client model.Client) (uuid.UUID, error)
	GetClient(ctx context.Context, id uuid.UUID) (model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	UpdateClient(ctx context.Context, client model.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	CreateEquipment(ctx context.Context, eq model.Equipment) (uuid.UUID, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (model.Equipment, error)
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
	UpdateEquipment(ctx context.Context, eq model.Equipment) error
	DeleteEquipment(ctx context.Context, id uuid.UUID) error

	CreateStaffUser(ctx context.Context, user model.StaffUser) (uuid.UUID, error)
	ListStaffUsers(ctx context.Context) ([]model.StaffUser, error)
	UpdateStaffUser(ctx context.Context, user model.StaffUser) error
	DeleteStaffUser(ctx context.Context, id uuid.UUID) error
}

type sentMilestoneLister interface {
	ListSentMilestones(ctx context.Context, equipmentID uuid.UUID) ([]int, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type Service struct {
	repo  registryRepo
	sent  sentMilestoneLister
	cache cache
}

func NewService(repo registryRepo, sent sentMilestoneLister, cache cache) *Service {
	return &Service{repo: repo, sent: sent, cache: cache}
}

func scheduleKey(id uuid.UUID) string {
	return "schedule:" + id.String()
}

func (s *Service) CreateClient(ctx context.Context, client model.Client) (uuid.UUID, error) {
	id, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create client: %w", err)
	}

	return id, nil
}

func (s *Service) GetClient(ctx context.Context, id uuid.UUID) (model.Client, error) {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return model.Client{}, fmt.Errorf("get client: %w", err)
	}

	return client, nil
}

func (s *Service) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

func (s *Service) UpdateClient(ctx context.Context, client model.Client) error {
	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return fmt.Errorf("update client: %w", err)
	}

	return nil
}

func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	return nil
}

// CreateEquipment validates the invoice date when present and inserts the
// equipment. Legacy rows in the database may carry unnormalized dates, but
// new entries through the API must parse.
func (s *Service) CreateEquipment(ctx context.Context, strategy retry.Strategy, eq model.Equipment) (uuid.UUID, error) {
	if eq.InvoiceDate != "" {
		if _, err := reminder.ParseDate(eq.InvoiceDate); err != nil {
			return uuid.Nil, err
		}
	}

	id, err := s.repo.CreateEquipment(ctx, eq)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create equipment: %w", err)
	}

	eq.ID = id
	s.refreshSchedule(ctx, strategy, eq)

	return id, nil
}

func (s *Service) GetEquipment(ctx context.Context, id uuid.UUID) (model.Equipment, error) {
	eq, err := s.repo.GetEquipment(ctx, id)
	if err != nil {
		return model.Equipment{}, fmt.Errorf("get equipment: %w", err)
	}

	return eq, nil
}

func (s *Service) ListEquipment(ctx context.Context) ([]model.Equipment, error) {
	list, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	return list, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, strategy retry.Strategy, eq model.Equipment) error {
	if eq.InvoiceDate != "" {
		if _, err := reminder.ParseDate(eq.InvoiceDate); err != nil {
			return err
		}
	}

	if err := s.repo.UpdateEquipment(ctx, eq); err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}

	s.refreshSchedule(ctx, strategy, eq)

	return nil
}

func (s *Service) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteEquipment(ctx, id); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}

	return nil
}

func (s *Service) CreateStaffUser(ctx context.Context, user model.StaffUser) (uuid.UUID, error) {
	id, err := s.repo.CreateStaffUser(ctx, user)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create staff user: %w", err)
	}

	return id, nil
}

func (s *Service) ListStaffUsers(ctx context.Context) ([]model.StaffUser, error) {
	users, err := s.repo.ListStaffUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff users: %w", err)
	}

	return users, nil
}

func (s *Service) UpdateStaffUser(ctx context.Context, user model.StaffUser) error {
	if err := s.repo.UpdateStaffUser(ctx, user); err != nil {
		return fmt.Errorf("update staff user: %w", err)
	}

	return nil
}

func (s *Service) DeleteStaffUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteStaffUser(ctx, id); err != nil {
		return fmt.Errorf("delete staff user: %w", err)
	}

	return nil
}

// EquipmentSchedule returns the reminder calendar for one piece of
// equipment, cache-aside: serve the cached copy when present, otherwise
// compute from the repository and cache the result.
func (s *Service) EquipmentSchedule(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Schedule, error) {
	key := scheduleKey(id)

	cached, err := s.cache.GetWithRetry(ctx, strategy, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("equipment_id", id.String()).Msg("failed to get schedule from cache")
	}

	if err == nil {
		var schedule model.Schedule
		if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
			return schedule, nil
		}
		zlog.Logger.Warn().Str("equipment_id", id.String()).Msg("discarding malformed cached schedule")
	}

	eq, err := s.repo.GetEquipment(ctx, id)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("get equipment: %w", err)
	}

	sentMilestones, err := s.sent.ListSentMilestones(ctx, id)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("list sent milestones: %w", err)
	}

	schedule, err := reminder.BuildSchedule(eq, sentMilestones)
	if err != nil {
		return model.Schedule{}, err
	}

	s.cacheSchedule(ctx, strategy, id, schedule)

	return schedule, nil
}

// refreshSchedule recomputes and re-caches the schedule after an equipment
// write. Best-effort: a stale or missing cache entry only costs a recompute
// on the next read.
func (s *Service) refreshSchedule(ctx context.Context, strategy retry.Strategy, eq model.Equipment) {
	if eq.InvoiceDate == "" {
		return
	}

	sentMilestones, err := s.sent.ListSentMilestones(ctx, eq.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("equipment_id", eq.ID.String()).Msg("failed to refresh schedule cache")
		return
	}

	schedule, err := reminder.BuildSchedule(eq, sentMilestones)
	if err != nil {
		return
	}

	s.cacheSchedule(ctx, strategy, eq.ID, schedule)
}

func (s *Service) cacheSchedule(ctx context.Context, strategy retry.Strategy, id uuid.UUID, schedule model.Schedule) {
	payload, err := json.Marshal(schedule)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("equipment_id", id.String()).Msg("failed to marshal schedule")
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, scheduleKey(id), string(payload)); err != nil {
		zlog.Logger.Error().Err(err).Str("equipment_id", id.String()).Msg("failed to cache schedule")
	}
}
