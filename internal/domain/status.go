package domain

import "time"

// AttendanceStatus - производное состояние одного пользователя.
// Не хранится в БД: пересчитывается из последнего TimeRecord и текущего времени.
type AttendanceStatus struct {
	UserID                 string
	IsClockedIn            bool
	IsOnBreak              bool
	IsTerrain              bool
	CurrentEntry           *TimeRecord
	CurrentDurationMinutes int
}

// TeamMemberStatus - статус участника команды вместе с метаданными пользователя
type TeamMemberStatus struct {
	UserID     string
	Username   string
	Department string
	Role       Role
	Status     AttendanceStatus
}

// TeamStats - агрегаты по снимку команды
type TeamStats struct {
	ActiveCount     int
	OnBreakCount    int
	ClockedOutCount int
	TotalMinutes    int
	AverageHours    float64
}

// TeamSnapshot - снимок состояния всей команды на момент TakenAt.
// Пересобирается целиком при каждом опросе, локально никогда не мутируется.
type TeamSnapshot struct {
	TakenAt time.Time
	Members []TeamMemberStatus
	Stats   TeamStats
}

// StatusFromRecord строит AttendanceStatus из последней записи пользователя.
// rec == nil или закрытая запись означают состояние "не на смене".
func StatusFromRecord(userID string, rec *TimeRecord, now time.Time) AttendanceStatus {
	status := AttendanceStatus{UserID: userID}

	if !rec.IsOpen() {
		return status
	}

	status.IsClockedIn = true
	status.IsOnBreak = rec.IsOnBreak()
	status.IsTerrain = rec.IsTerrain
	status.CurrentEntry = rec
	status.CurrentDurationMinutes = ElapsedMinutes(rec.ClockIn, now)

	return status
}
