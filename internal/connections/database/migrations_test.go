package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taco-cloud/internal/config"
)

func TestApplyExecutesAllMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	names, err := Migrations()
	require.NoError(t, err)
	require.Equal(t, []string{"migrations/001_schema.sql", "migrations/002_ingredients.sql"}, names)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ingredient").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO ingredient").WillReturnResult(sqlmock.NewResult(0, 10))

	var applied []string
	require.NoError(t, Apply(context.Background(), db, func(name string) { applied = append(applied, name) }))
	assert.Equal(t, names, applied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStopsOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(".*").WillReturnError(errors.New("syntax error"))

	err = Apply(context.Background(), db, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_schema.sql")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Database: "d"})
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", dsn)
}
