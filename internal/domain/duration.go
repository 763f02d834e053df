package domain

import "time"

// ElapsedMinutes считает целые минуты от clock-in до now.
// Функция чистая: часами владеет вызывающая сторона, не калькулятор.
// Перерывы из результата НЕ вычитаются - elapsed считается по стенным
// часам с момента clock-in независимо от состояния перерыва.
func ElapsedMinutes(clockIn, now time.Time) int {
	if now.Before(clockIn) {
		return 0
	}
	return int(now.Sub(clockIn) / time.Minute)
}

// BreakMinutes считает длину последнего интервала перерыва в записи.
// Для активного перерыва верхней границей служит now. Только для
// отображения: в ElapsedMinutes это значение нигде не участвует.
func BreakMinutes(rec *TimeRecord, now time.Time) int {
	if rec == nil || rec.BreakStart == nil {
		return 0
	}

	end := now
	if rec.BreakEnd != nil {
		end = *rec.BreakEnd
	}
	if end.Before(*rec.BreakStart) {
		return 0
	}
	return int(end.Sub(*rec.BreakStart) / time.Minute)
}

// AggregateTeam считает агрегаты по снимку статусов команды.
// Пустой снимок дает нулевые агрегаты, а не деление на ноль.
func AggregateTeam(members []TeamMemberStatus) TeamStats {
	stats := TeamStats{}

	for _, member := range members {
		switch StateOf(member.Status) {
		case StateWorking:
			stats.ActiveCount++
		case StateOnBreak:
			stats.OnBreakCount++
		default:
			stats.ClockedOutCount++
		}
		stats.TotalMinutes += member.Status.CurrentDurationMinutes
	}

	if len(members) > 0 {
		stats.AverageHours = float64(stats.TotalMinutes) / 60.0 / float64(len(members))
	}

	return stats
}
