package models

import "time"

// Installation is a scheduled on-site installation for an order
type Installation struct {
	ID               int64      `db:"id"` // negative for orders scheduled without an installation row
	OrderID          uint64     `db:"order_id"`
	OrderNumber      *string    `db:"order_number"` // joined from orders, read-only
	InstallationDate time.Time  `db:"installation_date"`
	Notes            *string    `db:"notes"`
	Color            *string    `db:"color"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// InstallationEvent is published whenever an installation changes
type InstallationEvent struct {
	Action           string `json:"action"` // created, updated, deleted
	ID               int64  `json:"id"`
	OrderID          uint64 `json:"order_id"`
	InstallationDate string `json:"installation_date"` // Jalali Y/m/d H:i
	Color            string `json:"color,omitempty"`
}

// Installation event actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
