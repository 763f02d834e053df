package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type snapshotRepository struct {
	executor DBExecutor
}

func NewSnapshotRepository(db *sql.DB) *snapshotRepository {
	return &snapshotRepository{executor: db}
}

// GetAllUserRecords возвращает всех активных пользователей вместе с их
// последней записью. Порядок стабильный - по id пользователя.
func (r *snapshotRepository) GetAllUserRecords(ctx context.Context) ([]*repository.UserRecord, error) {
	query := `
		SELECT u.id, u.name, u.department, u.role, u.is_active, u.created_at, u.updated_at,
		       tr.id, tr.clock_in, tr.clock_out, tr.break_start, tr.break_end,
		       tr.is_terrain, tr.work_summary, tr.created_at, tr.updated_at
		FROM users u
		LEFT JOIN LATERAL (
			SELECT id, clock_in, clock_out, break_start, break_end, is_terrain, work_summary, created_at, updated_at
			FROM time_records
			WHERE user_id = u.id
			ORDER BY clock_in DESC
			LIMIT 1
		) tr ON TRUE
		WHERE u.is_active = TRUE
		ORDER BY u.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*repository.UserRecord
	for rows.Next() {
		user := &domain.User{}
		var userDBID int
		var role string
		var userUpdatedAt sql.NullTime

		var recDBID sql.NullInt64
		var clockIn, clockOut, breakStart, breakEnd, recCreatedAt, recUpdatedAt sql.NullTime
		var isTerrain sql.NullBool
		var workSummary sql.NullString

		err := rows.Scan(
			&userDBID,
			&user.Username,
			&user.Department,
			&role,
			&user.IsActive,
			&user.CreatedAt,
			&userUpdatedAt,
			&recDBID,
			&clockIn,
			&clockOut,
			&breakStart,
			&breakEnd,
			&isTerrain,
			&workSummary,
			&recCreatedAt,
			&recUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		user.ID = intToStringID(userDBID)
		user.Role = domain.Role(role)
		if userUpdatedAt.Valid {
			user.UpdatedAt = &userUpdatedAt.Time
		}

		entry := &repository.UserRecord{User: user}

		if recDBID.Valid {
			rec := &domain.TimeRecord{
				ID:          recordIntToStringID(int(recDBID.Int64)),
				UserID:      user.ID,
				ClockIn:     clockIn.Time,
				IsTerrain:   isTerrain.Bool,
				WorkSummary: workSummary.String,
				CreatedAt:   recCreatedAt.Time,
			}
			if clockOut.Valid {
				rec.ClockOut = &clockOut.Time
			}
			if breakStart.Valid {
				rec.BreakStart = &breakStart.Time
			}
			if breakEnd.Valid {
				rec.BreakEnd = &breakEnd.Time
			}
			if recUpdatedAt.Valid {
				rec.UpdatedAt = &recUpdatedAt.Time
			}
			entry.Record = rec
		}

		result = append(result, entry)
	}

	return result, rows.Err()
}
