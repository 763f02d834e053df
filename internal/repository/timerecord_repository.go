package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type TimeRecordRepository interface {
	Create(ctx context.Context, rec *domain.TimeRecord) error
	GetByID(ctx context.Context, id string) (*domain.TimeRecord, error)
	GetOpenByUserID(ctx context.Context, userID string) (*domain.TimeRecord, error)
	GetLatestByUserID(ctx context.Context, userID string) (*domain.TimeRecord, error)
	SetClockOut(ctx context.Context, id string, at time.Time, workSummary string) error
	SetBreak(ctx context.Context, id string, breakStart, breakEnd *time.Time) error
	SetTerrain(ctx context.Context, id string, isTerrain bool) error
}
