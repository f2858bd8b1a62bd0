package registry

import (
	"context"
	"database/sql"
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

func TestCreateClient(t *testing.T) {
	repo, mock := setupMockDB(t)

	clientID := uuid.New()
	client := model.Client{Name: "City Hospital", Email: "a@x.com", Email2: "b@x.com"}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO clients (name, email, email2)
		VALUES ($1, $2, $3)
		RETURNING id;
    `)).
		WithArgs(client.Name, client.Email, client.Email2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(clientID))

	id, err := repo.CreateClient(context.Background(), client)
	assert.NoError(t, err)
	assert.Equal(t, clientID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClient(t *testing.T) {
	repo, mock := setupMockDB(t)

	clientID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, email, email2, created_at, updated_at
		FROM clients
		WHERE id = $1;
    `)).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "email2", "created_at", "updated_at"}).
			AddRow(clientID, "City Hospital", "a@x.com", "", now, now))

	client, err := repo.GetClient(context.Background(), clientID)
	assert.NoError(t, err)
	assert.Equal(t, "City Hospital", client.Name)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, email, email2, created_at, updated_at
		FROM clients
		WHERE id = $1;
    `)).
		WithArgs(clientID).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetClient(context.Background(), clientID)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClient_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	client := model.Client{ID: uuid.New(), Name: "City Hospital", Email: "a@x.com"}

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE clients
		SET name = $1, email = $2, email2 = $3, updated_at = now()
		WHERE id = $4;
    `)).
		WithArgs(client.Name, client.Email, client.Email2, client.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateClient(context.Background(), client)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClient(t *testing.T) {
	repo, mock := setupMockDB(t)

	clientID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = $1;`)).
		WithArgs(clientID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteClient(context.Background(), clientID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEquipment(t *testing.T) {
	repo, mock := setupMockDB(t)

	equipmentID := uuid.New()
	eq := model.Equipment{
		ClientID:     uuid.New(),
		Name:         "Ventilator X1",
		Model:        "VX-100",
		SerialNumber: "SN-42",
		InvoiceDate:  "2024-01-01",
		InstallType:  "on-site",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO equipment (client_id, name, model, serial_number, invoice_date, install_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
    `)).
		WithArgs(eq.ClientID, eq.Name, eq.Model, eq.SerialNumber, eq.InvoiceDate, eq.InstallType).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(equipmentID))

	id, err := repo.CreateEquipment(context.Background(), eq)
	assert.NoError(t, err)
	assert.Equal(t, equipmentID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEquipment_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	equipmentID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, client_id, name, model, serial_number, invoice_date, install_type, created_at, updated_at
		FROM equipment
		WHERE id = $1;
    `)).
		WithArgs(equipmentID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetEquipment(context.Background(), equipmentID)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEquipmentWithClient(t *testing.T) {
	repo, mock := setupMockDB(t)

	clientID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "client_id", "name", "model", "serial_number", "invoice_date", "install_type",
		"c_id", "c_name", "c_email", "c_email2",
	}).
		AddRow(uuid.New(), clientID, "Autoclave A2", "AC-200", "SN-1", "2024-01-01", "on-site",
			clientID, "City Hospital", "a@x.com", "").
		AddRow(uuid.New(), clientID, "Ventilator X1", "VX-100", "SN-2", "15/01/2024", "workshop",
			clientID, "City Hospital", "a@x.com", "")

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT e.id, e.client_id, e.name, e.model, e.serial_number, e.invoice_date, e.install_type,
		       c.id, c.name, c.email, c.email2
		FROM equipment e
		JOIN clients c ON c.id = e.client_id
		ORDER BY c.name, e.name;
    `)).WillReturnRows(rows)

	list, err := repo.ListEquipmentWithClient(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Autoclave A2", list[0].Equipment.Name)
	assert.Equal(t, "City Hospital", list[0].Client.Name)
	assert.Equal(t, "15/01/2024", list[1].Equipment.InvoiceDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEquipment(t *testing.T) {
	repo, mock := setupMockDB(t)

	eq := model.Equipment{
		ID:          uuid.New(),
		Name:        "Ventilator X1",
		Model:       "VX-100",
		InvoiceDate: "2024-01-01",
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE equipment
		SET name = $1, model = $2, serial_number = $3, invoice_date = $4, install_type = $5, updated_at = now()
		WHERE id = $6;
    `)).
		WithArgs(eq.Name, eq.Model, eq.SerialNumber, eq.InvoiceDate, eq.InstallType, eq.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateEquipment(context.Background(), eq)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStaffUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	user := model.StaffUser{Name: "Jordan", Email: "jordan@x.com", ReceiveWarrantyEmails: true}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO staff_users (name, email, receive_warranty_emails)
		VALUES ($1, $2, $3)
		RETURNING id;
    `)).
		WithArgs(user.Name, user.Email, user.ReceiveWarrantyEmails).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID))

	id, err := repo.CreateStaffUser(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, userID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOptedInStaffEmails(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT email
		FROM staff_users
		WHERE receive_warranty_emails = true;
    `)).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("a@x.com").AddRow("b@x.com"))

	emails, err := repo.ListOptedInStaffEmails(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, emails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStaffUser_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM staff_users WHERE id = $1;`)).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteStaffUser(context.Background(), userID)
	assert.ErrorIs(t, err, ErrStaffUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
