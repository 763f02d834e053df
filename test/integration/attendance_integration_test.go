//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/team-attendance/internal/config"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository/postgres"
	"github.com/bagdasarian/team-attendance/internal/service"
)

func defaultAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		AllowBreaks:          true,
		RequireDocumentation: false,
	}
}

func TestFullShiftLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	recordRepo := postgres.NewTimeRecordRepository(db)
	userRepo := postgres.NewUserRepository(db)

	attendanceService := service.NewAttendanceService(recordRepo, userRepo, defaultAttendanceConfig())

	// 1. Создаём сотрудника
	user := &domain.User{Username: "Hakob", Department: "support", Role: domain.RoleEmployee, IsActive: true}
	require.NoError(t, userRepo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	// 2. Clock-in открывает смену
	rec, err := attendanceService.ClockIn(ctx, user.ID, false)
	require.NoError(t, err)
	assert.True(t, rec.IsOpen())
	assert.False(t, rec.IsTerrain)

	status, err := attendanceService.GetStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, status.IsClockedIn)
	assert.False(t, status.IsOnBreak)

	// 3. Перерыв: начало и конец
	rec, err = attendanceService.StartBreak(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, rec.IsOnBreak())

	rec, err = attendanceService.EndBreak(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, rec.IsOnBreak())
	require.NotNil(t, rec.BreakStart)
	require.NotNil(t, rec.BreakEnd)

	// 4. Полевой режим переключается, не трогая перерыв
	rec, err = attendanceService.ToggleTerrain(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, rec.IsTerrain)
	require.NotNil(t, rec.BreakEnd, "завершенный перерыв должен сохраниться")

	// 5. Clock-out запечатывает запись вместе с итогом
	rec, err = attendanceService.ClockOut(ctx, user.ID, "Закрыл две заявки")
	require.NoError(t, err)
	assert.False(t, rec.IsOpen())
	assert.Equal(t, "Закрыл две заявки", rec.WorkSummary)

	status, err = attendanceService.GetStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, status.IsClockedIn)
	assert.Equal(t, 0, status.CurrentDurationMinutes)
}

func TestSecondOpenRecordRejected(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	recordRepo := postgres.NewTimeRecordRepository(db)
	userRepo := postgres.NewUserRepository(db)

	attendanceService := service.NewAttendanceService(recordRepo, userRepo, defaultAttendanceConfig())

	user := &domain.User{Username: "Anna", Role: domain.RoleEmployee, IsActive: true}
	require.NoError(t, userRepo.Create(ctx, user))

	first, err := attendanceService.ClockIn(ctx, user.ID, false)
	require.NoError(t, err)

	// Повторный clock-in отклоняется сервисом
	_, err = attendanceService.ClockIn(ctx, user.ID, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Даже в обход сервиса вторую открытую запись не пропускает
	// частичный уникальный индекс
	second := &domain.TimeRecord{UserID: user.ID, ClockIn: first.ClockIn}
	err = recordRepo.Create(ctx, second)
	require.Error(t, err)
}

func TestClockOutRequiresSummaryWhenConfigured(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	recordRepo := postgres.NewTimeRecordRepository(db)
	userRepo := postgres.NewUserRepository(db)

	cfg := defaultAttendanceConfig()
	cfg.RequireDocumentation = true
	attendanceService := service.NewAttendanceService(recordRepo, userRepo, cfg)

	user := &domain.User{Username: "Karen", Role: domain.RoleEmployee, IsActive: true}
	require.NoError(t, userRepo.Create(ctx, user))

	_, err := attendanceService.ClockIn(ctx, user.ID, false)
	require.NoError(t, err)

	// Пустой итог отклоняется, смена остаётся открытой
	_, err = attendanceService.ClockOut(ctx, user.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrConfigurationViolation)

	status, err := attendanceService.GetStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, status.IsClockedIn)

	// С заполненным итогом закрытие проходит
	rec, err := attendanceService.ClockOut(ctx, user.ID, "Выезд на объект")
	require.NoError(t, err)
	assert.False(t, rec.IsOpen())
}

func TestTeamSnapshotAuthorization(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	recordRepo := postgres.NewTimeRecordRepository(db)
	userRepo := postgres.NewUserRepository(db)
	snapshotRepo := postgres.NewSnapshotRepository(db)

	attendanceService := service.NewAttendanceService(recordRepo, userRepo, defaultAttendanceConfig())
	snapshotService := service.NewSnapshotService(snapshotRepo, userRepo)

	employee := &domain.User{Username: "Hakob", Department: "support", Role: domain.RoleEmployee, IsActive: true}
	manager := &domain.User{Username: "Anna", Department: "support", Role: domain.RoleManager, IsActive: true}
	require.NoError(t, userRepo.Create(ctx, employee))
	require.NoError(t, userRepo.Create(ctx, manager))

	_, err := attendanceService.ClockIn(ctx, employee.ID, true)
	require.NoError(t, err)

	// Сотруднику снимок команды недоступен
	_, err = snapshotService.GetTeamSnapshot(ctx, employee.ID)
	assert.ErrorIs(t, err, domain.ErrAuthorizationFailure)

	// Менеджер видит всю команду и агрегаты
	snapshot, err := snapshotService.GetTeamSnapshot(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, snapshot.Members, 2)
	assert.Equal(t, 1, snapshot.Stats.ActiveCount)
	assert.Equal(t, 1, snapshot.Stats.ClockedOutCount)

	active, err := snapshotService.GetActiveUsers(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, employee.ID, active[0].UserID)
	assert.True(t, active[0].Status.IsTerrain)

	notClockedIn, err := snapshotService.GetNotClockedInUsers(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, notClockedIn, 1)
	assert.Equal(t, manager.ID, notClockedIn[0].UserID)
}
