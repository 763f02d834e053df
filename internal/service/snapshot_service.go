package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type SnapshotService interface {
	// GetTeamSnapshot собирает снимок всей команды; только для manager/admin
	GetTeamSnapshot(ctx context.Context, requesterID string) (*domain.TeamSnapshot, error)

	// GetActiveUsers возвращает участников в состоянии WORKING или ON_BREAK
	GetActiveUsers(ctx context.Context, requesterID string) ([]domain.TeamMemberStatus, error)

	// GetNotClockedInUsers возвращает участников без открытой сессии
	GetNotClockedInUsers(ctx context.Context, requesterID string) ([]domain.TeamMemberStatus, error)
}
