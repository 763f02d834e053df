package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidTransition - команда недопустима в текущем состоянии
	// (локальная проверка или отказ сервера, код один и тот же)
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: "command is not legal in the current attendance state",
	}

	// ErrTransportFailure - сетевая ошибка или таймаут, локальное состояние не тронуто
	ErrTransportFailure = &DomainError{
		Code:    "TRANSPORT_FAILURE",
		Message: "remote call failed, attendance state unchanged",
	}

	// ErrConfigurationViolation - команда запрещена конфигурацией
	// (перерывы выключены, обязательный work_summary не заполнен)
	ErrConfigurationViolation = &DomainError{
		Code:    "CONFIGURATION_VIOLATION",
		Message: "command is forbidden by attendance configuration",
	}

	// ErrAuthorizationFailure - командные эндпоинты запрошены без роли manager/admin
	ErrAuthorizationFailure = &DomainError{
		Code:    "AUTHORIZATION_FAILURE",
		Message: "team snapshot requires manager or admin role",
	}

	// ErrCommandInFlight - вторая команда отклонена, пока не завершилась первая.
	// Выставляется только на клиенте, до транспортного уровня не доходит.
	ErrCommandInFlight = &DomainError{
		Code:    "COMMAND_IN_FLIGHT",
		Message: "another attendance command is still in flight",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewInvalidTransitionError создает ошибку INVALID_TRANSITION с контекстом перехода
func NewInvalidTransitionError(detail string) *DomainError {
	return &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: detail,
	}
}

// NewConfigurationViolationError создает ошибку CONFIGURATION_VIOLATION с контекстом
func NewConfigurationViolationError(detail string) *DomainError {
	return &DomainError{
		Code:    "CONFIGURATION_VIOLATION",
		Message: detail,
	}
}

// NewTransportFailureError оборачивает сетевую ошибку в TRANSPORT_FAILURE
func NewTransportFailureError(cause error) *DomainError {
	return &DomainError{
		Code:    "TRANSPORT_FAILURE",
		Message: fmt.Sprintf("remote call failed: %v", cause),
	}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}
