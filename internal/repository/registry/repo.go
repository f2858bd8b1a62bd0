// Package registry persists clients, equipment, and staff users.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/hospitek/medequip-backend/internal/model"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrStaffUserNotFound = errors.New("staff user not found")
)

// Repository provides access to the registry tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new registry repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateClient inserts a new client and returns its ID.
func (r *Repository) CreateClient(ctx context.Context, client model.Client) (uuid.UUID, error) {
	query := `
		INSERT INTO clients (name, email, email2)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, client.Name, client.Email, client.Email2).Scan(&client.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client.ID, nil
}

// GetClient retrieves one client by ID.
func (r *Repository) GetClient(ctx context.Context, id uuid.UUID) (model.Client, error) {
	query := `
		SELECT id, name, email, email2, created_at, updated_at
		FROM clients
		WHERE id = $1;
    `

	var c model.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Email2, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Client{}, ErrClientNotFound
		}

		return model.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

// ListClients retrieves all clients ordered by name.
func (r *Repository) ListClients(ctx context.Context) ([]model.Client, error) {
	query := `
		SELECT id, name, email, email2, created_at, updated_at
		FROM clients
		ORDER BY name;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Email2, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

// UpdateClient updates a client's contact details.
func (r *Repository) UpdateClient(ctx context.Context, client model.Client) error {
	query := `
		UPDATE clients
		SET name = $1, email = $2, email2 = $3, updated_at = now()
		WHERE id = $4;
    `

	res, err := r.db.ExecContext(ctx, query, client.Name, client.Email, client.Email2, client.ID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrClientNotFound
	}

	return nil
}

// DeleteClient removes a client and, via cascade, its equipment.
func (r *Repository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrClientNotFound
	}

	return nil
}

// CreateEquipment inserts a new piece of equipment and returns its ID.
func (r *Repository) CreateEquipment(ctx context.Context, eq model.Equipment) (uuid.UUID, error) {
	query := `
		INSERT INTO equipment (client_id, name, model, serial_number, invoice_date, install_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, eq.ClientID, eq.Name, eq.Model, eq.SerialNumber, eq.InvoiceDate, eq.InstallType,
	).Scan(&eq.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return eq.ID, nil
}

// GetEquipment retrieves one piece of equipment by ID.
func (r *Repository) GetEquipment(ctx context.Context, id uuid.UUID) (model.Equipment, error) {
	query := `
		SELECT id, client_id, name, model, serial_number, invoice_date, install_type, created_at, updated_at
		FROM equipment
		WHERE id = $1;
    `

	var eq model.Equipment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&eq.ID, &eq.ClientID, &eq.Name, &eq.Model, &eq.SerialNumber,
		&eq.InvoiceDate, &eq.InstallType, &eq.CreatedAt, &eq.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, ErrEquipmentNotFound
		}

		return model.Equipment{}, fmt.Errorf("failed to get equipment: %w", err)
	}

	return eq, nil
}

// ListEquipment retrieves all equipment, newest first.
func (r *Repository) ListEquipment(ctx context.Context) ([]model.Equipment, error) {
	query := `
		SELECT id, client_id, name, model, serial_number, invoice_date, install_type, created_at, updated_at
		FROM equipment
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var list []model.Equipment
	for rows.Next() {
		var eq model.Equipment
		if err := rows.Scan(
			&eq.ID, &eq.ClientID, &eq.Name, &eq.Model, &eq.SerialNumber,
			&eq.InvoiceDate, &eq.InstallType, &eq.CreatedAt, &eq.UpdatedAt,
		); err != nil {
			return nil, err
		}

		list = append(list, eq)
	}

	return list, rows.Err()
}

// ListEquipmentWithClient retrieves every piece of equipment joined to its
// owning client, the tuple list the reminder engine reconciles over.
func (r *Repository) ListEquipmentWithClient(ctx context.Context) ([]model.EquipmentWithClient, error) {
	query := `
		SELECT e.id, e.client_id, e.name, e.model, e.serial_number, e.invoice_date, e.install_type,
		       c.id, c.name, c.email, c.email2
		FROM equipment e
		JOIN clients c ON c.id = e.client_id
		ORDER BY c.name, e.name;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment with clients: %w", err)
	}
	defer rows.Close()

	var list []model.EquipmentWithClient
	for rows.Next() {
		var item model.EquipmentWithClient
		if err := rows.Scan(
			&item.Equipment.ID, &item.Equipment.ClientID, &item.Equipment.Name,
			&item.Equipment.Model, &item.Equipment.SerialNumber,
			&item.Equipment.InvoiceDate, &item.Equipment.InstallType,
			&item.Client.ID, &item.Client.Name, &item.Client.Email, &item.Client.Email2,
		); err != nil {
			return nil, err
		}

		list = append(list, item)
	}

	return list, rows.Err()
}

// UpdateEquipment updates a piece of equipment.
func (r *Repository) UpdateEquipment(ctx context.Context, eq model.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, model = $2, serial_number = $3, invoice_date = $4, install_type = $5, updated_at = now()
		WHERE id = $6;
    `

	res, err := r.db.ExecContext(
		ctx, query, eq.Name, eq.Model, eq.SerialNumber, eq.InvoiceDate, eq.InstallType, eq.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// DeleteEquipment removes a piece of equipment.
func (r *Repository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// CreateStaffUser inserts a new staff user and returns its ID.
func (r *Repository) CreateStaffUser(ctx context.Context, user model.StaffUser) (uuid.UUID, error) {
	query := `
		INSERT INTO staff_users (name, email, receive_warranty_emails)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.ReceiveWarrantyEmails).Scan(&user.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create staff user: %w", err)
	}

	return user.ID, nil
}

// ListStaffUsers retrieves all staff users ordered by name.
func (r *Repository) ListStaffUsers(ctx context.Context) ([]model.StaffUser, error) {
	query := `
		SELECT id, name, email, receive_warranty_emails, created_at, updated_at
		FROM staff_users
		ORDER BY name;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff users: %w", err)
	}
	defer rows.Close()

	var users []model.StaffUser
	for rows.Next() {
		var u model.StaffUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.ReceiveWarrantyEmails, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

// UpdateStaffUser updates a staff user's details and opt-in flag.
func (r *Repository) UpdateStaffUser(ctx context.Context, user model.StaffUser) error {
	query := `
		UPDATE staff_users
		SET name = $1, email = $2, receive_warranty_emails = $3, updated_at = now()
		WHERE id = $4;
    `

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.ReceiveWarrantyEmails, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update staff user: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrStaffUserNotFound
	}

	return nil
}

// DeleteStaffUser removes a staff user.
func (r *Repository) DeleteStaffUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff user: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrStaffUserNotFound
	}

	return nil
}

// ListOptedInStaffEmails retrieves the emails of staff users who opted in to
// receive copies of reminder emails.
func (r *Repository) ListOptedInStaffEmails(ctx context.Context) ([]string, error) {
	query := `
		SELECT email
		FROM staff_users
		WHERE receive_warranty_emails = true;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list opted-in staff emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}

		emails = append(emails, email)
	}

	return emails, rows.Err()
}
