package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taco-cloud/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestIngredientFindAll(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT id, name, type FROM ingredient").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow("COTO", "Corn Tortilla", "WRAP").
			AddRow("GRBF", "Ground Beef", "PROTEIN"))

	got, err := NewIngredientRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Ingredient{
		{ID: "COTO", Name: "Corn Tortilla", Type: domain.Wrap},
		{ID: "GRBF", Name: "Ground Beef", Type: domain.Protein},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIngredientFindAllEmpty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT id, name, type FROM ingredient").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}))

	got, err := NewIngredientRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTacoSave(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO taco").WithArgs("Veggie Taco").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))
	mock.ExpectExec("INSERT INTO taco_ingredients").WithArgs(int64(7), "COTO", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO taco_ingredients").WithArgs(int64(7), "TMTO", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := NewTacoRepository(db).Save(context.Background(),
		domain.Taco{Name: "Veggie Taco", Ingredients: []string{"COTO", "TMTO"}})
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, now, saved.CreatedAt)
	assert.Equal(t, []string{"COTO", "TMTO"}, saved.Ingredients)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTacoSaveRollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO taco").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
	mock.ExpectExec("INSERT INTO taco_ingredients").WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	_, err := NewTacoRepository(db).Save(context.Background(),
		domain.Taco{Name: "Bad Taco", Ingredients: []string{"XXXX"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XXXX")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTacoFindByID(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, name, created_at FROM taco WHERE id").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(int64(3), "Carnivore", now))
	mock.ExpectQuery("SELECT ingredient_id FROM taco_ingredients").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"ingredient_id"}).AddRow("FLTO").AddRow("CARN"))

	got, err := NewTacoRepository(db).FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Carnivore", got.Name)
	assert.Equal(t, []string{"FLTO", "CARN"}, got.Ingredients)
}

func TestTacoFindByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT id, name, created_at FROM taco WHERE id").WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := NewTacoRepository(db).FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTacoNotFound)
}

func TestTacoFindRecent(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, name, created_at FROM taco").WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(2), "Second", now).
			AddRow(int64(1), "First", now.Add(-time.Minute)))
	mock.ExpectQuery("SELECT ingredient_id FROM taco_ingredients").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"ingredient_id"}).AddRow("FLTO"))
	mock.ExpectQuery("SELECT ingredient_id FROM taco_ingredients").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"ingredient_id"}).AddRow("COTO"))

	got, err := NewTacoRepository(db).FindRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, []string{"COTO"}, got[1].Ingredients)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByUsername(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE username").WithArgs("habuma").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "fullname", "street", "city", "state", "zip", "phone_number"}).
			AddRow(int64(1), "habuma", "$2a$hash", "Craig Walls", "1234 North Street", "Cross Roads", "TX", "76227", "123-123-1234"))

	u, err := NewUserRepository(db).FindByUsername(context.Background(), "habuma")
	require.NoError(t, err)
	assert.Equal(t, "Craig Walls", u.Fullname)
	assert.Equal(t, "TX", u.State)
}

func TestUserFindByUsernameNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE username").WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := NewUserRepository(db).FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserSaveDuplicate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := NewUserRepository(db).Save(context.Background(), domain.User{Username: "habuma"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserSave(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("habuma", "hash", "Craig Walls", "", "", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	u, err := NewUserRepository(db).Save(context.Background(),
		domain.User{Username: "habuma", Password: "hash", Fullname: "Craig Walls"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
}

func TestOrderSave(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	order := domain.Order{
		UserID:       1,
		Delivery:     domain.Delivery{Name: "Craig", Street: "1 Main", City: "Dallas", State: "TX", Zip: "75001"},
		CCNumber:     "4111111111111111",
		CCExpiration: "10/29",
		CCCVV:        "123",
		Tacos:        []domain.Taco{{ID: 11, Name: "Veggie Taco"}, {ID: 12, Name: "Carnivore"}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO taco_order").
		WithArgs(int64(1), "Craig", "1 Main", "Dallas", "TX", "75001", "4111111111111111", "10/29", "123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "placed_at"}).AddRow(int64(42), now))
	mock.ExpectExec("INSERT INTO taco_order_tacos").WithArgs(int64(42), int64(11), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO taco_order_tacos").WithArgs(int64(42), int64(12), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := NewOrderRepository(db).Save(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, now, saved.PlacedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderSaveRollback(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO taco_order").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := NewOrderRepository(db).Save(context.Background(), domain.Order{})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
