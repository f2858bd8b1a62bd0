// Package registry contains the HTTP handlers for the client, equipment,
// and staff-user admin surface.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/hospitek/medequip-backend/internal/api/dto"
	"github.com/hospitek/medequip-backend/internal/api/respond"
	"github.com/hospitek/medequip-backend/internal/config"
	"github.com/hospitek/medequip-backend/internal/model"
	"github.com/hospitek/medequip-backend/internal/reminder"
	registryrepo "github.com/hospitek/medequip-backend/internal/repository/registry"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/registry/mock.go -package=mocks

type registryService interface {
	CreateClient(ctx context.Context, client model.Client) (uuid.UUID, error)
	GetClient(ctx context.Context, id uuid.UUID) (model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	UpdateClient(ctx context.Context, client model.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	CreateEquipment(ctx context.Context, strategy retry.Strategy, eq model.Equipment) (uuid.UUID, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (model.Equipment, error)
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
	UpdateEquipment(ctx context.Context, strategy retry.Strategy, eq model.Equipment) error
	DeleteEquipment(ctx context.Context, id uuid.UUID) error

	CreateStaffUser(ctx context.Context, user model.StaffUser) (uuid.UUID, error)
	ListStaffUsers(ctx context.Context) ([]model.StaffUser, error)
	UpdateStaffUser(ctx context.Context, user model.StaffUser) error
	DeleteStaffUser(ctx context.Context, id uuid.UUID) error

	EquipmentSchedule(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Schedule, error)
}

type Handler struct {
	service   registryService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(s registryService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// pathID parses the :id route parameter, writing a 400 response on failure.
func pathID(c *ginext.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) CreateClient(c *ginext.Context) {
	var req dto.ClientRequest
	if !h.decode(c, &req) {
		return
	}

	id, err := h.service.CreateClient(c.Request.Context(), model.Client{
		Name:   req.Name,
		Email:  req.Email,
		Email2: req.Email2,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("name", req.Name).Msg("failed to create client")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) GetClient(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		h.failRegistry(c, err, "failed to get client")
		return
	}

	respond.OK(c.Writer, client)
}

func (h *Handler) ListClients(c *ginext.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list clients")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, clients)
}

func (h *Handler) UpdateClient(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if !h.decode(c, &req) {
		return
	}

	err := h.service.UpdateClient(c.Request.Context(), model.Client{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Email2: req.Email2,
	})
	if err != nil {
		h.failRegistry(c, err, "failed to update client")
		return
	}

	respond.OK(c.Writer, "client updated")
}

func (h *Handler) DeleteClient(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), id); err != nil {
		h.failRegistry(c, err, "failed to delete client")
		return
	}

	respond.OK(c.Writer, "client deleted")
}

func (h *Handler) CreateEquipment(c *ginext.Context) {
	var req dto.EquipmentRequest
	if !h.decode(c, &req) {
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid client_id"))
		return
	}

	id, err := h.service.CreateEquipment(c.Request.Context(), h.cfg.Retry, model.Equipment{
		ClientID:     clientID,
		Name:         req.Name,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		InvoiceDate:  req.InvoiceDate,
		InstallType:  req.InstallType,
	})
	if err != nil {
		h.failRegistry(c, err, "failed to create equipment")
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) GetEquipment(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	eq, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		h.failRegistry(c, err, "failed to get equipment")
		return
	}

	respond.OK(c.Writer, eq)
}

func (h *Handler) ListEquipment(c *ginext.Context) {
	list, err := h.service.ListEquipment(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list equipment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) UpdateEquipment(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.EquipmentRequest
	if !h.decode(c, &req) {
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid client_id"))
		return
	}

	err = h.service.UpdateEquipment(c.Request.Context(), h.cfg.Retry, model.Equipment{
		ID:           id,
		ClientID:     clientID,
		Name:         req.Name,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		InvoiceDate:  req.InvoiceDate,
		InstallType:  req.InstallType,
	})
	if err != nil {
		h.failRegistry(c, err, "failed to update equipment")
		return
	}

	respond.OK(c.Writer, "equipment updated")
}

func (h *Handler) DeleteEquipment(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		h.failRegistry(c, err, "failed to delete equipment")
		return
	}

	respond.OK(c.Writer, "equipment deleted")
}

// GetSchedule serves the reminder calendar preview for one piece of
// equipment.
func (h *Handler) GetSchedule(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	schedule, err := h.service.EquipmentSchedule(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		h.failRegistry(c, err, "failed to get equipment schedule")
		return
	}

	respond.OK(c.Writer, schedule)
}

func (h *Handler) CreateStaffUser(c *ginext.Context) {
	var req dto.StaffUserRequest
	if !h.decode(c, &req) {
		return
	}

	id, err := h.service.CreateStaffUser(c.Request.Context(), model.StaffUser{
		Name:                  req.Name,
		Email:                 req.Email,
		ReceiveWarrantyEmails: req.ReceiveWarrantyEmails,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("email", req.Email).Msg("failed to create staff user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) ListStaffUsers(c *ginext.Context) {
	users, err := h.service.ListStaffUsers(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list staff users")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, users)
}

func (h *Handler) UpdateStaffUser(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.StaffUserRequest
	if !h.decode(c, &req) {
		return
	}

	err := h.service.UpdateStaffUser(c.Request.Context(), model.StaffUser{
		ID:                    id,
		Name:                  req.Name,
		Email:                 req.Email,
		ReceiveWarrantyEmails: req.ReceiveWarrantyEmails,
	})
	if err != nil {
		h.failRegistry(c, err, "failed to update staff user")
		return
	}

	respond.OK(c.Writer, "staff user updated")
}

func (h *Handler) DeleteStaffUser(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteStaffUser(c.Request.Context(), id); err != nil {
		h.failRegistry(c, err, "failed to delete staff user")
		return
	}

	respond.OK(c.Writer, "staff user deleted")
}

// decode reads and validates the JSON request body.
func (h *Handler) decode(c *ginext.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

// failRegistry maps service errors to HTTP responses.
func (h *Handler) failRegistry(c *ginext.Context, err error, msg string) {
	var parseErr *reminder.DateParseError

	switch {
	case errors.Is(err, registryrepo.ErrClientNotFound),
		errors.Is(err, registryrepo.ErrEquipmentNotFound),
		errors.Is(err, registryrepo.ErrStaffUserNotFound):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusNotFound, err)
	case errors.As(err, &parseErr):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
