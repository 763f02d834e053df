package repository

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

// UserRecord - пользователь вместе с его последней записью (nil, если записей нет).
// Сырье для Team Snapshot: статусы и агрегаты из него считает доменный слой.
type UserRecord struct {
	User   *domain.User
	Record *domain.TimeRecord
}

type SnapshotRepository interface {
	GetAllUserRecords(ctx context.Context) ([]*UserRecord, error)
}
