package service

import (
	"context"
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type snapshotService struct {
	snapshotRepo repository.SnapshotRepository
	userRepo     repository.UserRepository
}

// NewSnapshotService создает новый экземпляр SnapshotService
func NewSnapshotService(snapshotRepo repository.SnapshotRepository, userRepo repository.UserRepository) SnapshotService {
	return &snapshotService{
		snapshotRepo: snapshotRepo,
		userRepo:     userRepo,
	}
}

// requireElevated проверяет, что запросивший имеет роль manager или admin
func (s *snapshotService) requireElevated(ctx context.Context, requesterID string) error {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if err.Error() == "user not found" {
			return domain.NewNotFoundError("user with id " + requesterID)
		}
		return err
	}

	if !requester.Role.IsElevated() {
		return domain.ErrAuthorizationFailure
	}

	return nil
}

// members строит статусы всех активных пользователей на момент now
func (s *snapshotService) members(ctx context.Context, now time.Time) ([]domain.TeamMemberStatus, error) {
	entries, err := s.snapshotRepo.GetAllUserRecords(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]domain.TeamMemberStatus, 0, len(entries))
	for _, entry := range entries {
		members = append(members, domain.TeamMemberStatus{
			UserID:     entry.User.ID,
			Username:   entry.User.Username,
			Department: entry.User.Department,
			Role:       entry.User.Role,
			Status:     domain.StatusFromRecord(entry.User.ID, entry.Record, now),
		})
	}

	return members, nil
}

func (s *snapshotService) GetTeamSnapshot(ctx context.Context, requesterID string) (*domain.TeamSnapshot, error) {
	if err := s.requireElevated(ctx, requesterID); err != nil {
		return nil, err
	}

	now := time.Now()
	members, err := s.members(ctx, now)
	if err != nil {
		return nil, err
	}

	return &domain.TeamSnapshot{
		TakenAt: now,
		Members: members,
		Stats:   domain.AggregateTeam(members),
	}, nil
}

func (s *snapshotService) GetActiveUsers(ctx context.Context, requesterID string) ([]domain.TeamMemberStatus, error) {
	if err := s.requireElevated(ctx, requesterID); err != nil {
		return nil, err
	}

	members, err := s.members(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	active := make([]domain.TeamMemberStatus, 0, len(members))
	for _, member := range members {
		if member.Status.IsClockedIn {
			active = append(active, member)
		}
	}

	return active, nil
}

func (s *snapshotService) GetNotClockedInUsers(ctx context.Context, requesterID string) ([]domain.TeamMemberStatus, error) {
	if err := s.requireElevated(ctx, requesterID); err != nil {
		return nil, err
	}

	members, err := s.members(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	notClockedIn := make([]domain.TeamMemberStatus, 0, len(members))
	for _, member := range members {
		if !member.Status.IsClockedIn {
			notClockedIn = append(notClockedIn, member)
		}
	}

	return notClockedIn, nil
}
