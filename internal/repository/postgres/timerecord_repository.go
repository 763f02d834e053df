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

type timeRecordRepository struct {
	executor DBExecutor
}

func NewTimeRecordRepository(db *sql.DB) *timeRecordRepository {
	return &timeRecordRepository{executor: db}
}

func NewTimeRecordRepositoryWithTx(tx *sql.Tx) *timeRecordRepository {
	return &timeRecordRepository{executor: tx}
}

func recordStringIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "tr-")
	return strconv.Atoi(idStr)
}

func recordIntToStringID(id int) string {
	return fmt.Sprintf("tr-%d", id)
}

const recordColumns = `id, user_id, clock_in, clock_out, break_start, break_end, is_terrain, work_summary, created_at, updated_at`

func scanRecord(row *sql.Row) (*domain.TimeRecord, error) {
	rec := &domain.TimeRecord{}
	var dbID, userDBID int
	var clockOut, breakStart, breakEnd, updatedAt sql.NullTime

	err := row.Scan(
		&dbID,
		&userDBID,
		&rec.ClockIn,
		&clockOut,
		&breakStart,
		&breakEnd,
		&rec.IsTerrain,
		&rec.WorkSummary,
		&rec.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("time record not found")
		}
		return nil, err
	}

	rec.ID = recordIntToStringID(dbID)
	rec.UserID = intToStringID(userDBID)
	if clockOut.Valid {
		rec.ClockOut = &clockOut.Time
	}
	if breakStart.Valid {
		rec.BreakStart = &breakStart.Time
	}
	if breakEnd.Valid {
		rec.BreakEnd = &breakEnd.Time
	}
	if updatedAt.Valid {
		rec.UpdatedAt = &updatedAt.Time
	}

	return rec, nil
}

func (r *timeRecordRepository) Create(ctx context.Context, rec *domain.TimeRecord) error {
	userDBID, err := stringIDToInt(rec.UserID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	query := `
		INSERT INTO time_records (user_id, clock_in, is_terrain, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	now := time.Now()
	var dbID int
	err = r.executor.QueryRowContext(
		ctx,
		query,
		userDBID,
		rec.ClockIn,
		rec.IsTerrain,
		now,
	).Scan(&dbID, &rec.CreatedAt)
	if err != nil {
		return err
	}

	rec.ID = recordIntToStringID(dbID)
	rec.UpdatedAt = nil

	return nil
}

func (r *timeRecordRepository) GetByID(ctx context.Context, id string) (*domain.TimeRecord, error) {
	dbID, err := recordStringIDToInt(id)
	if err != nil {
		return nil, errors.New("invalid time record ID")
	}

	query := `
		SELECT ` + recordColumns + `
		FROM time_records
		WHERE id = $1
	`

	return scanRecord(r.executor.QueryRowContext(ctx, query, dbID))
}

func (r *timeRecordRepository) GetOpenByUserID(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	userDBID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	// Частичный уникальный индекс гарантирует не больше одной открытой записи
	query := `
		SELECT ` + recordColumns + `
		FROM time_records
		WHERE user_id = $1 AND clock_out IS NULL
	`

	return scanRecord(r.executor.QueryRowContext(ctx, query, userDBID))
}

func (r *timeRecordRepository) GetLatestByUserID(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	userDBID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT ` + recordColumns + `
		FROM time_records
		WHERE user_id = $1
		ORDER BY clock_in DESC
		LIMIT 1
	`

	return scanRecord(r.executor.QueryRowContext(ctx, query, userDBID))
}

func (r *timeRecordRepository) SetClockOut(ctx context.Context, id string, at time.Time, workSummary string) error {
	dbID, err := recordStringIDToInt(id)
	if err != nil {
		return errors.New("invalid time record ID")
	}

	// Запись запечатывается только один раз: clock_out IS NULL в условии
	query := `
		UPDATE time_records
		SET clock_out = $2, work_summary = $3, updated_at = $2
		WHERE id = $1 AND clock_out IS NULL
	`

	result, err := r.executor.ExecContext(ctx, query, dbID, at, workSummary)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("time record not found")
	}

	return nil
}

func (r *timeRecordRepository) SetBreak(ctx context.Context, id string, breakStart, breakEnd *time.Time) error {
	dbID, err := recordStringIDToInt(id)
	if err != nil {
		return errors.New("invalid time record ID")
	}

	query := `
		UPDATE time_records
		SET break_start = $2, break_end = $3, updated_at = $4
		WHERE id = $1 AND clock_out IS NULL
	`

	result, err := r.executor.ExecContext(ctx, query, dbID, breakStart, breakEnd, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("time record not found")
	}

	return nil
}

func (r *timeRecordRepository) SetTerrain(ctx context.Context, id string, isTerrain bool) error {
	dbID, err := recordStringIDToInt(id)
	if err != nil {
		return errors.New("invalid time record ID")
	}

	query := `
		UPDATE time_records
		SET is_terrain = $2, updated_at = $3
		WHERE id = $1 AND clock_out IS NULL
	`

	result, err := r.executor.ExecContext(ctx, query, dbID, isTerrain, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("time record not found")
	}

	return nil
}
