package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/models"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/db"
)

// InstallationRepositoryInterface defines the interface for installation repository operations
type InstallationRepositoryInterface interface {
	OrderExists(ctx context.Context, orderID uint64) (bool, error)
	Create(ctx context.Context, inst *models.Installation) error
	GetByID(ctx context.Context, id int64) (*models.Installation, error)
	Update(ctx context.Context, inst *models.Installation) error
	Delete(ctx context.Context, id int64) (bool, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*models.Installation, error)
}

// Schemas lists the tables this repository reads and writes, for db.SchemaGuard
var Schemas = []db.TableSchema{
	{
		Name: "installations",
		Columns: []db.ColumnType{
			{Name: "id", DataType: "bigint"},
			{Name: "order_id", DataType: "bigint"},
			{Name: "installation_date", DataType: "datetime"},
			{Name: "notes", DataType: "text", Nullable: true},
			{Name: "color", DataType: "varchar", Nullable: true},
			{Name: "created_at", DataType: "datetime"},
			{Name: "updated_at", DataType: "datetime", Nullable: true},
		},
	},
	{
		Name: "orders",
		Columns: []db.ColumnType{
			{Name: "id", DataType: "bigint"},
			{Name: "order_number", DataType: "varchar"},
			{Name: "installation_date", DataType: "datetime", Nullable: true},
			{Name: "installation_notes", DataType: "text", Nullable: true},
			{Name: "created_at", DataType: "datetime", Nullable: true},
			{Name: "updated_at", DataType: "datetime", Nullable: true},
		},
	},
}

const selectInstallation = `
		SELECT i.id, i.order_id, o.order_number, i.installation_date, i.notes, i.color, i.created_at, i.updated_at
		FROM installations i
		LEFT JOIN orders o ON o.id = i.order_id`

type InstallationRepository struct {
	db *sql.DB
}

func NewInstallationRepository(db *sql.DB) *InstallationRepository {
	return &InstallationRepository{db: db}
}

// OrderExists reports whether the order an installation refers to exists
func (r *InstallationRepository) OrderExists(ctx context.Context, orderID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM orders WHERE id = ?", orderID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check order: %w", err)
	}
	return true, nil
}

// Create inserts inst and fills in its ID
func (r *InstallationRepository) Create(ctx context.Context, inst *models.Installation) error {
	query := `
		INSERT INTO installations (order_id, installation_date, notes, color, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, inst.OrderID, inst.InstallationDate, inst.Notes, inst.Color, inst.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create installation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get installation id: %w", err)
	}
	inst.ID = id

	return nil
}

// GetByID retrieves a single installation; nil when it does not exist
func (r *InstallationRepository) GetByID(ctx context.Context, id int64) (*models.Installation, error) {
	row := r.db.QueryRowContext(ctx, selectInstallation+" WHERE i.id = ?", id)

	inst, err := scanInstallation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}

	return inst, nil
}

// Update rewrites the schedulable fields of inst
func (r *InstallationRepository) Update(ctx context.Context, inst *models.Installation) error {
	query := `
		UPDATE installations
		SET installation_date = ?, notes = ?, color = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, inst.InstallationDate, inst.Notes, inst.Color, inst.UpdatedAt, inst.ID)
	if err != nil {
		return fmt.Errorf("failed to update installation: %w", err)
	}

	return nil
}

// Delete removes an installation and reports whether it existed
func (r *InstallationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM installations WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete installation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete installation: %w", err)
	}

	return affected > 0, nil
}

// ListBetween returns installations with from <= installation_date < to,
// ordered by installation date. Orders that carry an installation_date but
// have no installation row are included with ID set to -order.id.
func (r *InstallationRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Installation, error) {
	query := selectInstallation + `
		WHERE i.installation_date >= ? AND i.installation_date < ?
		ORDER BY i.installation_date ASC, i.id ASC`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list installations: %w", err)
	}
	defer rows.Close()

	var installations []*models.Installation
	scheduled := make(map[uint64]struct{})
	for rows.Next() {
		inst, err := scanInstallation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installation: %w", err)
		}
		installations = append(installations, inst)
		scheduled[inst.OrderID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list installations: %w", err)
	}

	orders, err := r.listOrderInstallations(ctx, from, to)
	if err != nil {
		return nil, err
	}
	merged := len(orders) > 0
	for _, inst := range orders {
		if _, ok := scheduled[inst.OrderID]; ok {
			continue
		}
		installations = append(installations, inst)
	}

	if merged {
		// stable: on equal dates installation rows stay ahead of orders
		sort.SliceStable(installations, func(i, j int) bool {
			return installations[i].InstallationDate.Before(installations[j].InstallationDate)
		})
	}

	return installations, nil
}

// listOrderInstallations maps orders scheduled through orders.installation_date
// to virtual installations
func (r *InstallationRepository) listOrderInstallations(ctx context.Context, from, to time.Time) ([]*models.Installation, error) {
	query := `
		SELECT o.id, o.order_number, o.installation_date, o.installation_notes, o.created_at, o.updated_at
		FROM orders o
		WHERE o.installation_date IS NOT NULL AND o.installation_date >= ? AND o.installation_date < ?
		ORDER BY o.installation_date ASC, o.id ASC`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled orders: %w", err)
	}
	defer rows.Close()

	var installations []*models.Installation
	for rows.Next() {
		var inst models.Installation
		var orderNumber, notes sql.NullString
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&inst.OrderID, &orderNumber, &inst.InstallationDate, &notes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled order: %w", err)
		}

		inst.ID = -int64(inst.OrderID)
		if orderNumber.Valid {
			inst.OrderNumber = &orderNumber.String
		}
		if notes.Valid {
			inst.Notes = &notes.String
		}
		if createdAt.Valid {
			inst.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			inst.UpdatedAt = &updatedAt.Time
		}
		installations = append(installations, &inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scheduled orders: %w", err)
	}

	return installations, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInstallation(s scanner) (*models.Installation, error) {
	var inst models.Installation
	var orderNumber, notes, color sql.NullString
	var updatedAt sql.NullTime

	if err := s.Scan(
		&inst.ID,
		&inst.OrderID,
		&orderNumber,
		&inst.InstallationDate,
		&notes,
		&color,
		&inst.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if orderNumber.Valid {
		inst.OrderNumber = &orderNumber.String
	}
	if notes.Valid {
		inst.Notes = &notes.String
	}
	if color.Valid {
		inst.Color = &color.String
	}
	if updatedAt.Valid {
		inst.UpdatedAt = &updatedAt.Time
	}

	return &inst, nil
}
