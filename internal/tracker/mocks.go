package tracker

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type MockRemoteClient struct {
	mock.Mock
}

func (m *MockRemoteClient) ClockIn(ctx context.Context, isTerrain bool) (*domain.TimeRecord, error) {
	args := m.Called(ctx, isTerrain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockRemoteClient) ClockOut(ctx context.Context, workSummary string) (*domain.TimeRecord, error) {
	args := m.Called(ctx, workSummary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockRemoteClient) StartBreak(ctx context.Context) (*domain.TimeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockRemoteClient) EndBreak(ctx context.Context) (*domain.TimeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockRemoteClient) ToggleTerrain(ctx context.Context) (*domain.TimeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeRecord), args.Error(1)
}

func (m *MockRemoteClient) GetStatus(ctx context.Context) (*domain.AttendanceStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceStatus), args.Error(1)
}

func (m *MockRemoteClient) GetTeamSnapshot(ctx context.Context) (*domain.TeamSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamSnapshot), args.Error(1)
}
