package tracker

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bagdasarian/team-attendance/internal/config"
	"github.com/bagdasarian/team-attendance/internal/domain"
)

// RemoteClient - транспорт до сервера учета времени.
// Реализуется client.Client, в тестах подменяется моком.
type RemoteClient interface {
	ClockIn(ctx context.Context, isTerrain bool) (*domain.TimeRecord, error)
	ClockOut(ctx context.Context, workSummary string) (*domain.TimeRecord, error)
	StartBreak(ctx context.Context) (*domain.TimeRecord, error)
	EndBreak(ctx context.Context) (*domain.TimeRecord, error)
	ToggleTerrain(ctx context.Context) (*domain.TimeRecord, error)
	GetStatus(ctx context.Context) (*domain.AttendanceStatus, error)
	GetTeamSnapshot(ctx context.Context) (*domain.TeamSnapshot, error)
}

// Tracker - локальное зеркало состояния смены одного пользователя.
//
// Команды проходят три барьера до обращения к транспорту: автомат состояний,
// конфигурационные ограничения и флаг inFlight (одна команда за раз, вторая
// отклоняется с COMMAND_IN_FLIGHT). Ответы применяются по номеру, взятому в
// момент отправки запроса: ответ со старым номером отбрасывается, чтобы
// отставший опрос не перетер результат более поздней команды.
//
// Любая ошибка транспорта оставляет локальное состояние нетронутым.
type Tracker struct {
	client RemoteClient
	cfg    config.AttendanceConfig
	userID string
	clock  func() time.Time

	mu            sync.Mutex
	status        domain.AttendanceStatus
	team          *domain.TeamSnapshot
	inFlight      bool
	seq           uint64
	statusApplied uint64
	teamApplied   uint64
}

func NewTracker(client RemoteClient, userID string, cfg config.AttendanceConfig) *Tracker {
	return &Tracker{
		client: client,
		cfg:    cfg,
		userID: userID,
		clock:  time.Now,
		status: domain.AttendanceStatus{UserID: userID},
	}
}

// nextSeq выдает номер запроса в момент отправки, не в момент ответа
func (t *Tracker) nextSeq() uint64 {
	t.seq++
	return t.seq
}

// beginCommand резервирует слот команды: проверяет inFlight и предусловие
// автомата под одной блокировкой, чтобы между проверкой и отправкой не
// вклинилась другая команда
func (t *Tracker) beginCommand(cmd domain.Command) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight {
		return 0, domain.ErrCommandInFlight
	}
	if err := domain.ValidateTransition(domain.StateOf(t.status), cmd); err != nil {
		return 0, err
	}

	t.inFlight = true
	return t.nextSeq(), nil
}

func (t *Tracker) finishCommand(seq uint64, rec *domain.TimeRecord, err error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.inFlight = false
	if err != nil {
		return err
	}
	if seq >= t.statusApplied {
		t.statusApplied = seq
		t.status = domain.StatusFromRecord(t.userID, rec, t.clock())
	}
	return nil
}

func (t *Tracker) dispatch(ctx context.Context, cmd domain.Command, call func(context.Context) (*domain.TimeRecord, error)) error {
	seq, err := t.beginCommand(cmd)
	if err != nil {
		return err
	}

	rec, err := call(ctx)
	return t.finishCommand(seq, rec, err)
}

func (t *Tracker) ClockIn(ctx context.Context, isTerrain bool) error {
	return t.dispatch(ctx, domain.CommandClockIn, func(ctx context.Context) (*domain.TimeRecord, error) {
		return t.client.ClockIn(ctx, isTerrain)
	})
}

func (t *Tracker) ClockOut(ctx context.Context, workSummary string) error {
	workSummary = strings.TrimSpace(workSummary)
	if t.cfg.RequireDocumentation && workSummary == "" {
		return domain.NewConfigurationViolationError("work summary is required on clock-out")
	}

	return t.dispatch(ctx, domain.CommandClockOut, func(ctx context.Context) (*domain.TimeRecord, error) {
		return t.client.ClockOut(ctx, workSummary)
	})
}

func (t *Tracker) StartBreak(ctx context.Context) error {
	if !t.cfg.AllowBreaks {
		return domain.NewConfigurationViolationError("breaks are disabled by configuration")
	}

	return t.dispatch(ctx, domain.CommandStartBreak, func(ctx context.Context) (*domain.TimeRecord, error) {
		return t.client.StartBreak(ctx)
	})
}

func (t *Tracker) EndBreak(ctx context.Context) error {
	return t.dispatch(ctx, domain.CommandEndBreak, func(ctx context.Context) (*domain.TimeRecord, error) {
		return t.client.EndBreak(ctx)
	})
}

func (t *Tracker) ToggleTerrain(ctx context.Context) error {
	return t.dispatch(ctx, domain.CommandToggleTerrain, func(ctx context.Context) (*domain.TimeRecord, error) {
		return t.client.ToggleTerrain(ctx)
	})
}

// Refresh сверяет локальный статус с сервером. Ответ, отставший от уже
// примененной команды, молча отбрасывается.
func (t *Tracker) Refresh(ctx context.Context) error {
	t.mu.Lock()
	seq := t.nextSeq()
	t.mu.Unlock()

	status, err := t.client.GetStatus(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		return err
	}
	if seq < t.statusApplied {
		return nil
	}
	t.statusApplied = seq
	t.status = *status
	return nil
}

// RefreshTeam обновляет снимок команды; снимок заменяется целиком
func (t *Tracker) RefreshTeam(ctx context.Context) error {
	t.mu.Lock()
	seq := t.nextSeq()
	t.mu.Unlock()

	snapshot, err := t.client.GetTeamSnapshot(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		return err
	}
	if seq < t.teamApplied {
		return nil
	}
	t.teamApplied = seq
	t.team = snapshot
	return nil
}

func (t *Tracker) Status() domain.AttendanceStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *Tracker) Team() *domain.TeamSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.team
}

func (t *Tracker) State() domain.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.StateOf(t.status)
}

// ElapsedMinutes пересчитывает длительность смены от clock-in до now.
// Между опросами значение растет локально, без обращения к серверу.
func (t *Tracker) ElapsedMinutes(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status.CurrentEntry == nil || !t.status.CurrentEntry.IsOpen() {
		return 0
	}
	return domain.ElapsedMinutes(t.status.CurrentEntry.ClockIn, now)
}
