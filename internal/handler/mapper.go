package handler

import (
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func domainRecordToHTTP(rec *domain.TimeRecord) TimeRecordResponse {
	return TimeRecordResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		ClockIn:     rec.ClockIn.Format(time.RFC3339),
		ClockOut:    formatTimePtr(rec.ClockOut),
		BreakStart:  formatTimePtr(rec.BreakStart),
		BreakEnd:    formatTimePtr(rec.BreakEnd),
		IsTerrain:   rec.IsTerrain,
		WorkSummary: rec.WorkSummary,
	}
}

func domainStatusToHTTP(status *domain.AttendanceStatus) AttendanceStatusResponse {
	resp := AttendanceStatusResponse{
		UserID:                 status.UserID,
		IsClockedIn:            status.IsClockedIn,
		IsOnBreak:              status.IsOnBreak,
		IsTerrain:              status.IsTerrain,
		CurrentDurationMinutes: status.CurrentDurationMinutes,
	}
	if status.CurrentEntry != nil {
		entry := domainRecordToHTTP(status.CurrentEntry)
		resp.CurrentEntry = &entry
	}
	return resp
}

func domainMembersToHTTP(members []domain.TeamMemberStatus) []TeamMemberStatusResponse {
	result := make([]TeamMemberStatusResponse, 0, len(members))
	for _, member := range members {
		status := member.Status
		result = append(result, TeamMemberStatusResponse{
			UserID:     member.UserID,
			Username:   member.Username,
			Department: member.Department,
			Role:       string(member.Role),
			Status:     domainStatusToHTTP(&status),
		})
	}
	return result
}

func domainSnapshotToHTTP(snapshot *domain.TeamSnapshot) TeamSnapshotResponse {
	return TeamSnapshotResponse{
		TakenAt: snapshot.TakenAt.Format(time.RFC3339),
		Members: domainMembersToHTTP(snapshot.Members),
		Stats: TeamStatsResponse{
			ActiveCount:     snapshot.Stats.ActiveCount,
			OnBreakCount:    snapshot.Stats.OnBreakCount,
			ClockedOutCount: snapshot.Stats.ClockedOutCount,
			TotalMinutes:    snapshot.Stats.TotalMinutes,
			AverageHours:    snapshot.Stats.AverageHours,
		},
	}
}
