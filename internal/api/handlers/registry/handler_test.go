package registry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/hospitek/medequip-backend/internal/api/dto"
	"github.com/hospitek/medequip-backend/internal/config"
	mocks "github.com/hospitek/medequip-backend/internal/mocks/api/handlers/registry"
	"github.com/hospitek/medequip-backend/internal/model"
	"github.com/hospitek/medequip-backend/internal/reminder"
	registryrepo "github.com/hospitek/medequip-backend/internal/repository/registry"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockregistryService, *config.Config) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockregistryService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(serviceMock, validate, cfg)
	return handler, serviceMock, cfg
}

func TestHandler_CreateClient_Success(t *testing.T) {
	handler, serviceMock, _ := setupHandler(t)

	reqBody := dto.ClientRequest{Name: "City Hospital", Email: "a@x.com"}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().
		CreateClient(gomock.Any(), gomock.AssignableToTypeOf(model.Client{})).
		Return(uuid.New(), nil)

	handler.CreateClient(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_CreateClient_ValidationError(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.ClientRequest{Name: "City Hospital", Email: "not-an-email"}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CreateClient(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetClient_NotFound(t *testing.T) {
	handler, serviceMock, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/clients/"+id.String(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().GetClient(gomock.Any(), id).Return(model.Client{}, registryrepo.ErrClientNotFound)

	handler.GetClient(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_CreateEquipment_Success(t *testing.T) {
	handler, serviceMock, cfg := setupHandler(t)
	clientID := uuid.New()

	reqBody := dto.EquipmentRequest{
		ClientID:    clientID.String(),
		Name:        "Ventilator X1",
		InvoiceDate: "2024-01-01",
	}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/equipment", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().
		CreateEquipment(gomock.Any(), cfg.Retry, gomock.AssignableToTypeOf(model.Equipment{})).
		Return(uuid.New(), nil)

	handler.CreateEquipment(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_CreateEquipment_BadDate(t *testing.T) {
	handler, serviceMock, cfg := setupHandler(t)
	clientID := uuid.New()

	reqBody := dto.EquipmentRequest{
		ClientID:    clientID.String(),
		Name:        "Ventilator X1",
		InvoiceDate: "someday",
	}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/equipment", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().
		CreateEquipment(gomock.Any(), cfg.Retry, gomock.AssignableToTypeOf(model.Equipment{})).
		Return(uuid.Nil, &reminder.DateParseError{Value: "someday"})

	handler.CreateEquipment(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetSchedule_Success(t *testing.T) {
	handler, serviceMock, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/equipment/"+id.String()+"/schedule", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().
		EquipmentSchedule(gomock.Any(), cfg.Retry, id).
		Return(model.Schedule{EquipmentID: id.String()}, nil)

	handler.GetSchedule(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestHandler_GetSchedule_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/equipment/abc/schedule", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.GetSchedule(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_CreateStaffUser_Success(t *testing.T) {
	handler, serviceMock, _ := setupHandler(t)

	reqBody := dto.StaffUserRequest{Name: "Jordan", Email: "jordan@x.com", ReceiveWarrantyEmails: true}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/staff", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().
		CreateStaffUser(gomock.Any(), gomock.AssignableToTypeOf(model.StaffUser{})).
		Return(uuid.New(), nil)

	handler.CreateStaffUser(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_DeleteEquipment_NotFound(t *testing.T) {
	handler, serviceMock, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/equipment/"+id.String(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().DeleteEquipment(gomock.Any(), id).Return(registryrepo.ErrEquipmentNotFound)

	handler.DeleteEquipment(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
