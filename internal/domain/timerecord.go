package domain

import "time"

// TimeRecord - одна рабочая сессия: от clock-in до clock-out.
// После установки ClockOut запись считается закрытой и больше не меняется.
type TimeRecord struct {
	ID          string
	UserID      string
	ClockIn     time.Time
	ClockOut    *time.Time
	BreakStart  *time.Time
	BreakEnd    *time.Time
	IsTerrain   bool
	WorkSummary string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// IsOpen сообщает, открыта ли сессия (clock_out ещё не установлен)
func (r *TimeRecord) IsOpen() bool {
	return r != nil && r.ClockOut == nil
}

// IsOnBreak сообщает, идёт ли сейчас перерыв внутри открытой сессии
func (r *TimeRecord) IsOnBreak() bool {
	return r.IsOpen() && r.BreakStart != nil && r.BreakEnd == nil
}
