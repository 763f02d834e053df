package domain

type State string

const (
	StateClockedOut State = "CLOCKED_OUT"
	StateWorking    State = "WORKING"
	StateOnBreak    State = "ON_BREAK"
)

type Command string

const (
	CommandClockIn       Command = "CLOCK_IN"
	CommandClockOut      Command = "CLOCK_OUT"
	CommandStartBreak    Command = "START_BREAK"
	CommandEndBreak      Command = "END_BREAK"
	CommandToggleTerrain Command = "TOGGLE_TERRAIN"
)

// StateOf выводит состояние автомата из производного статуса.
// Флаг terrain ортогонален состоянию и здесь не участвует.
func StateOf(status AttendanceStatus) State {
	switch {
	case !status.IsClockedIn:
		return StateClockedOut
	case status.IsOnBreak:
		return StateOnBreak
	default:
		return StateWorking
	}
}

// StateOfRecord выводит состояние из последней записи пользователя
func StateOfRecord(rec *TimeRecord) State {
	switch {
	case !rec.IsOpen():
		return StateClockedOut
	case rec.IsOnBreak():
		return StateOnBreak
	default:
		return StateWorking
	}
}

// ValidateTransition проверяет предусловие команды в состоянии state.
// Вне предусловия возвращает INVALID_TRANSITION; состояние при этом не меняется.
func ValidateTransition(state State, cmd Command) error {
	switch cmd {
	case CommandClockIn:
		if state != StateClockedOut {
			return NewInvalidTransitionError("clock-in requires state CLOCKED_OUT, current state is " + string(state))
		}
	case CommandClockOut:
		if state != StateWorking && state != StateOnBreak {
			return NewInvalidTransitionError("clock-out requires an open session, current state is " + string(state))
		}
	case CommandStartBreak:
		if state != StateWorking {
			return NewInvalidTransitionError("start-break requires state WORKING, current state is " + string(state))
		}
	case CommandEndBreak:
		if state != StateOnBreak {
			return NewInvalidTransitionError("end-break requires state ON_BREAK, current state is " + string(state))
		}
	case CommandToggleTerrain:
		if state != StateWorking && state != StateOnBreak {
			return NewInvalidTransitionError("toggle-terrain requires an open session, current state is " + string(state))
		}
	default:
		return NewInvalidTransitionError("unknown command " + string(cmd))
	}
	return nil
}

// NextState возвращает состояние после применения команды.
// ToggleTerrain состояние не меняет: флаг terrain живет отдельно.
func NextState(state State, cmd Command) (State, error) {
	if err := ValidateTransition(state, cmd); err != nil {
		return state, err
	}

	switch cmd {
	case CommandClockIn:
		return StateWorking, nil
	case CommandClockOut:
		return StateClockedOut, nil
	case CommandStartBreak:
		return StateOnBreak, nil
	case CommandEndBreak:
		return StateWorking, nil
	default:
		return state, nil
	}
}
