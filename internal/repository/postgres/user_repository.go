package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func stringIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "u")
	return strconv.Atoi(idStr)
}

func intToStringID(id int) string {
	return fmt.Sprintf("u%d", id)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, department, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	var dbID int
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Department,
		string(user.Role),
		user.IsActive,
		now,
	).Scan(&dbID, &user.CreatedAt, &updatedAt)

	if err != nil {
		return err
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	} else {
		user.UpdatedAt = nil
	}

	user.ID = intToStringID(dbID)

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	dbID, err := stringIDToInt(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT id, name, department, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &domain.User{}
	var role string
	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(ctx, query, dbID).Scan(
		&dbID,
		&user.Username,
		&user.Department,
		&role,
		&user.IsActive,
		&user.CreatedAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	} else {
		user.UpdatedAt = nil
	}

	user.ID = intToStringID(dbID)
	user.Role = domain.Role(role)

	return user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, name, department, role, is_active, created_at, updated_at
		FROM users
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		var dbID int
		var role string
		var updatedAt sql.NullTime
		err := rows.Scan(
			&dbID,
			&user.Username,
			&user.Department,
			&role,
			&user.IsActive,
			&user.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			user.UpdatedAt = &updatedAt.Time
		} else {
			user.UpdatedAt = nil
		}
		user.ID = intToStringID(dbID)
		user.Role = domain.Role(role)
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) SetIsActive(ctx context.Context, userID string, isActive bool) error {
	dbID, err := stringIDToInt(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	query := `
		UPDATE users
		SET is_active = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, dbID, isActive, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}
