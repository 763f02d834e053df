package repository

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	SetIsActive(ctx context.Context, userID string, isActive bool) error
}
