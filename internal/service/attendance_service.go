package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type AttendanceService interface {
	// ClockIn открывает новую рабочую сессию
	ClockIn(ctx context.Context, userID string, isTerrain bool) (*domain.TimeRecord, error)

	// ClockOut запечатывает открытую сессию; workSummary сохраняется как есть
	ClockOut(ctx context.Context, userID, workSummary string) (*domain.TimeRecord, error)

	StartBreak(ctx context.Context, userID string) (*domain.TimeRecord, error)
	EndBreak(ctx context.Context, userID string) (*domain.TimeRecord, error)
	ToggleTerrain(ctx context.Context, userID string) (*domain.TimeRecord, error)

	// GetStatus возвращает производный статус пользователя на текущий момент
	GetStatus(ctx context.Context, userID string) (*domain.AttendanceStatus, error)
}
