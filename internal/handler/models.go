package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ClockInRequest struct {
	UserID    string `json:"user_id"`
	IsTerrain bool   `json:"is_terrain"`
}

type ClockOutRequest struct {
	UserID      string `json:"user_id"`
	WorkSummary string `json:"work_summary,omitempty"`
}

type CommandRequest struct {
	UserID string `json:"user_id"`
}

type TimeRecordResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    *string `json:"clock_out,omitempty"`
	BreakStart  *string `json:"break_start,omitempty"`
	BreakEnd    *string `json:"break_end,omitempty"`
	IsTerrain   bool    `json:"is_terrain"`
	WorkSummary string  `json:"work_summary,omitempty"`
}

type TimeRecordEnvelope struct {
	Record TimeRecordResponse `json:"record"`
}

type AttendanceStatusResponse struct {
	UserID                 string              `json:"user_id"`
	IsClockedIn            bool                `json:"is_clocked_in"`
	IsOnBreak              bool                `json:"is_on_break"`
	IsTerrain              bool                `json:"is_terrain"`
	CurrentEntry           *TimeRecordResponse `json:"current_entry,omitempty"`
	CurrentDurationMinutes int                 `json:"current_duration_minutes"`
}

type TeamMemberStatusResponse struct {
	UserID     string                   `json:"user_id"`
	Username   string                   `json:"username"`
	Department string                   `json:"department"`
	Role       string                   `json:"role"`
	Status     AttendanceStatusResponse `json:"status"`
}

type TeamStatsResponse struct {
	ActiveCount     int     `json:"active_count"`
	OnBreakCount    int     `json:"on_break_count"`
	ClockedOutCount int     `json:"clocked_out_count"`
	TotalMinutes    int     `json:"total_minutes"`
	AverageHours    float64 `json:"average_hours"`
}

type TeamSnapshotResponse struct {
	TakenAt string                     `json:"taken_at"`
	Members []TeamMemberStatusResponse `json:"members"`
	Stats   TeamStatsResponse          `json:"stats"`
}

type TeamMembersResponse struct {
	Members []TeamMemberStatusResponse `json:"members"`
}
