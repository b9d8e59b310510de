package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3306, User: "app", Password: "p@ss", Database: "tazein"}

	parsed, err := mysql.ParseDSN(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "tazein", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "utf8mb4_unicode_ci", parsed.Collation)
}

var installationsSchema = TableSchema{
	Name: "installations",
	Columns: []ColumnType{
		{Name: "id", DataType: "bigint"},
		{Name: "installation_date", DataType: "datetime"},
		{Name: "notes", DataType: "text", Nullable: true},
	},
}

func schemaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"COLUMN_NAME", "DATA_TYPE", "IS_NULLABLE"})
}

func TestSchemaGuard_ValidateTable(t *testing.T) {
	ctx := context.Background()

	t.Run("matching schema", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INFORMATION_SCHEMA.COLUMNS").WithArgs("installations").WillReturnRows(
			schemaRows().
				AddRow("id", "bigint", "NO").
				AddRow("order_id", "bigint", "NO").
				AddRow("installation_date", "datetime", "NO").
				AddRow("notes", "TEXT", "YES"),
		)

		require.NoError(t, NewSchemaGuard(db).ValidateTable(ctx, installationsSchema))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INFORMATION_SCHEMA.COLUMNS").WillReturnRows(schemaRows())

		err = NewSchemaGuard(db).ValidateTable(ctx, installationsSchema)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("missing column", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INFORMATION_SCHEMA.COLUMNS").WillReturnRows(
			schemaRows().AddRow("id", "bigint", "NO").AddRow("installation_date", "datetime", "NO"),
		)

		err = NewSchemaGuard(db).ValidateTable(ctx, installationsSchema)
		assert.ErrorContains(t, err, "missing expected column: notes")
	})

	t.Run("wrong type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INFORMATION_SCHEMA.COLUMNS").WillReturnRows(
			schemaRows().
				AddRow("id", "bigint", "NO").
				AddRow("installation_date", "varchar", "NO").
				AddRow("notes", "text", "YES"),
		)

		err = NewSchemaGuard(db).ValidateTable(ctx, installationsSchema)
		assert.ErrorContains(t, err, "installation_date has type varchar")
	})

	t.Run("nullability mismatch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INFORMATION_SCHEMA.COLUMNS").WillReturnRows(
			schemaRows().
				AddRow("id", "bigint", "NO").
				AddRow("installation_date", "datetime", "YES").
				AddRow("notes", "text", "YES"),
		)

		err = NewSchemaGuard(db).ValidateTable(ctx, installationsSchema)
		assert.ErrorContains(t, err, "nullable=true")
	})
}

func TestMatchesDataType(t *testing.T) {
	assert.True(t, matchesDataType("varchar(191)", "varchar"))
	assert.True(t, matchesDataType("DATETIME", "datetime"))
	assert.False(t, matchesDataType("tinytext", "text"))
	assert.False(t, matchesDataType("bigint", "int"))
}
