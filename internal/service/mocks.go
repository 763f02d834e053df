package service

import (
	"context"
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTimeRecordRepository struct {
	mock.Mock
}

func (m *MockTimeRecordRepository) Create(ctx context.Context, rec *domain.TimeRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockTimeRecordRepository) GetByID(ctx context.Context, id string) (*domain.TimeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockTimeRecordRepository) GetOpenByUserID(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockTimeRecordRepository) GetLatestByUserID(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockTimeRecordRepository) SetClockOut(ctx context.Context, id string, at time.Time, workSummary string) error {
	args := m.Called(ctx, id, at, workSummary)
	return args.Error(0)
}

func (m *MockTimeRecordRepository) SetBreak(ctx context.Context, id string, breakStart, breakEnd *time.Time) error {
	args := m.Called(ctx, id, breakStart, breakEnd)
	return args.Error(0)
}

func (m *MockTimeRecordRepository) SetTerrain(ctx context.Context, id string, isTerrain bool) error {
	args := m.Called(ctx, id, isTerrain)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetIsActive(ctx context.Context, userID string, isActive bool) error {
	args := m.Called(ctx, userID, isActive)
	return args.Error(0)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) GetAllUserRecords(ctx context.Context) ([]*repository.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.UserRecord), args.Error(1)
}
