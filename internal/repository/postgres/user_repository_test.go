package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserRepo создает мок БД и репозиторий для User
func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("успешное создание пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		user := &domain.User{
			Username:   "maria",
			Department: "field-ops",
			Role:       domain.RoleManager,
			IsActive:   true,
		}

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(5, now, nil)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("maria", "field-ops", "manager", true, sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, "u5", user.ID, "ID должен быть сконвертирован в строковый формат")
		assert.Nil(t, user.UpdatedAt, "updated_at должен быть nil при создании")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("пользователь найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "department", "role", "is_active", "created_at", "updated_at"}).
			AddRow(5, "maria", "field-ops", "manager", true, now, nil)
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs(5).
			WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), "u5")

		require.NoError(t, err)
		assert.Equal(t, "u5", user.ID)
		assert.Equal(t, "maria", user.Username)
		assert.Equal(t, domain.RoleManager, user.Role)
		assert.True(t, user.Role.IsElevated())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), "u999")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.Equal(t, "user not found", err.Error())
	})

	t.Run("невалидный ID", func(t *testing.T) {
		repo, _ := setupUserRepo(t)

		user, err := repo.GetByID(context.Background(), "not-an-id")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.Equal(t, "invalid user ID", err.Error())
	})
}

func TestUserRepository_GetAll(t *testing.T) {
	t.Run("возвращает пользователей в порядке id", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "department", "role", "is_active", "created_at", "updated_at"}).
			AddRow(1, "alice", "backend", "employee", true, now, nil).
			AddRow(2, "bob", "backend", "employee", true, now, nil).
			AddRow(3, "maria", "field-ops", "manager", true, now, now)
		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(rows)

		users, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "u1", users[0].ID)
		assert.Equal(t, "u3", users[2].ID)
		assert.Equal(t, domain.RoleEmployee, users[0].Role)
		assert.NotNil(t, users[2].UpdatedAt)
	})
}

func TestUserRepository_SetIsActive(t *testing.T) {
	t.Run("успешная деактивация", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec("UPDATE users").
			WithArgs(5, false, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetIsActive(context.Background(), "u5", false)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec("UPDATE users").
			WithArgs(999, true, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetIsActive(context.Background(), "u999", true)

		require.Error(t, err)
		assert.Equal(t, "user not found", err.Error())
	})
}
