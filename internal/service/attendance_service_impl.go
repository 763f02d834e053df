package service

import (
	"context"
	"strings"
	"time"

	"github.com/bagdasarian/team-attendance/internal/config"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type attendanceService struct {
	recordRepo repository.TimeRecordRepository
	userRepo   repository.UserRepository
	cfg        config.AttendanceConfig
}

// NewAttendanceService создает новый экземпляр AttendanceService
func NewAttendanceService(
	recordRepo repository.TimeRecordRepository,
	userRepo repository.UserRepository,
	cfg config.AttendanceConfig,
) AttendanceService {
	return &attendanceService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
		cfg:        cfg,
	}
}

// openRecord возвращает открытую запись пользователя или nil, если её нет.
// Заодно проверяет существование пользователя.
func (s *attendanceService) openRecord(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	_, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err.Error() == "user not found" {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	rec, err := s.recordRepo.GetOpenByUserID(ctx, userID)
	if err != nil {
		if err.Error() == "time record not found" {
			return nil, nil
		}
		return nil, err
	}

	return rec, nil
}

// ClockIn создает новую открытую запись; предусловие - отсутствие открытой.
// Сервер авторитетен: даже если клиент считал себя CLOCKED_OUT, повторный
// clock-in отклоняется здесь как INVALID_TRANSITION.
func (s *attendanceService) ClockIn(ctx context.Context, userID string, isTerrain bool) (*domain.TimeRecord, error) {
	open, err := s.openRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(domain.StateOfRecord(open), domain.CommandClockIn); err != nil {
		return nil, err
	}

	rec := &domain.TimeRecord{
		UserID:    userID,
		ClockIn:   time.Now(),
		IsTerrain: isTerrain,
	}

	if err := s.recordRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// ClockOut запечатывает открытую запись. Активный перерыв закрывается тем же
// моментом, чтобы сохранился инвариант break_end > break_start внутри сессии.
func (s *attendanceService) ClockOut(ctx context.Context, userID, workSummary string) (*domain.TimeRecord, error) {
	open, err := s.openRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(domain.StateOfRecord(open), domain.CommandClockOut); err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(workSummary)
	if s.cfg.RequireDocumentation && summary == "" {
		return nil, domain.NewConfigurationViolationError("work summary is required before clock-out")
	}

	now := time.Now()
	if open.IsOnBreak() {
		if err := s.recordRepo.SetBreak(ctx, open.ID, open.BreakStart, &now); err != nil {
			return nil, err
		}
	}

	if err := s.recordRepo.SetClockOut(ctx, open.ID, now, summary); err != nil {
		return nil, err
	}

	return s.recordRepo.GetByID(ctx, open.ID)
}

// StartBreak открывает перерыв внутри рабочей сессии. Запись хранит только
// последний интервал: новый перерыв затирает предыдущий завершенный.
func (s *attendanceService) StartBreak(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	if !s.cfg.AllowBreaks {
		return nil, domain.NewConfigurationViolationError("breaks are disabled for this organization")
	}

	open, err := s.openRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(domain.StateOfRecord(open), domain.CommandStartBreak); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.recordRepo.SetBreak(ctx, open.ID, &now, nil); err != nil {
		return nil, err
	}

	return s.recordRepo.GetByID(ctx, open.ID)
}

func (s *attendanceService) EndBreak(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	open, err := s.openRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(domain.StateOfRecord(open), domain.CommandEndBreak); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.recordRepo.SetBreak(ctx, open.ID, open.BreakStart, &now); err != nil {
		return nil, err
	}

	return s.recordRepo.GetByID(ctx, open.ID)
}

// ToggleTerrain переключает режим работы "в поле". Чистое переключение флага:
// состояние перерыва и его временные метки не затрагиваются.
func (s *attendanceService) ToggleTerrain(ctx context.Context, userID string) (*domain.TimeRecord, error) {
	open, err := s.openRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(domain.StateOfRecord(open), domain.CommandToggleTerrain); err != nil {
		return nil, err
	}

	if err := s.recordRepo.SetTerrain(ctx, open.ID, !open.IsTerrain); err != nil {
		return nil, err
	}

	return s.recordRepo.GetByID(ctx, open.ID)
}

func (s *attendanceService) GetStatus(ctx context.Context, userID string) (*domain.AttendanceStatus, error) {
	_, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err.Error() == "user not found" {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	rec, err := s.recordRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		if err.Error() != "time record not found" {
			return nil, err
		}
		rec = nil
	}

	status := domain.StatusFromRecord(userID, rec, time.Now())
	return &status, nil
}
