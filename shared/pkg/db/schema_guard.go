package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ColumnType represents expected column schema
type ColumnType struct {
	Name     string
	DataType string
	Nullable bool
}

// TableSchema represents expected table structure
type TableSchema struct {
	Name    string
	Columns []ColumnType
}

// SchemaGuard validates database schema matches expectations
type SchemaGuard struct {
	db *sql.DB
}

// NewSchemaGuard creates a new schema guard
func NewSchemaGuard(db *sql.DB) *SchemaGuard {
	return &SchemaGuard{db: db}
}

const columnsQuery = `
		SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE()
		AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION
	`

// ValidateTable validates a table's schema
func (sg *SchemaGuard) ValidateTable(ctx context.Context, schema TableSchema) error {
	rows, err := sg.db.QueryContext(ctx, columnsQuery, schema.Name)
	if err != nil {
		return fmt.Errorf("failed to query table schema for %s: %w", schema.Name, err)
	}
	defer rows.Close()

	actualColumns := make(map[string]ColumnType)
	for rows.Next() {
		var colName, dataType, isNullable string
		if err := rows.Scan(&colName, &dataType, &isNullable); err != nil {
			return fmt.Errorf("failed to scan column info: %w", err)
		}
		actualColumns[colName] = ColumnType{
			Name:     colName,
			DataType: dataType,
			Nullable: isNullable == "YES",
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read table schema for %s: %w", schema.Name, err)
	}

	if len(actualColumns) == 0 {
		return fmt.Errorf("table %s does not exist or has no columns", schema.Name)
	}

	for _, expectedCol := range schema.Columns {
		actualCol, exists := actualColumns[expectedCol.Name]
		if !exists {
			return fmt.Errorf("table %s missing expected column: %s", schema.Name, expectedCol.Name)
		}

		if !matchesDataType(actualCol.DataType, expectedCol.DataType) {
			return fmt.Errorf("table %s column %s has type %s, expected %s",
				schema.Name, expectedCol.Name, actualCol.DataType, expectedCol.DataType)
		}

		if actualCol.Nullable != expectedCol.Nullable {
			return fmt.Errorf("table %s column %s nullable=%t, expected %t",
				schema.Name, expectedCol.Name, actualCol.Nullable, expectedCol.Nullable)
		}
	}

	return nil
}

// matchesDataType compares base types case-insensitively, so varchar matches varchar(191).
func matchesDataType(actual, expected string) bool {
	actual = strings.ToLower(actual)
	expected = strings.ToLower(expected)
	if i := strings.IndexByte(actual, '('); i >= 0 {
		actual = actual[:i]
	}
	return actual == expected
}

// ValidateTables validates multiple tables
func (sg *SchemaGuard) ValidateTables(ctx context.Context, schemas []TableSchema) error {
	for _, schema := range schemas {
		if err := sg.ValidateTable(ctx, schema); err != nil {
			return err
		}
	}
	return nil
}
