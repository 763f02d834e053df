package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/handler"
)

// Client - удаленный клиент учета рабочего времени: по одной операции на
// каждый переход плюс чтение статуса и командного снимка. Клиент никогда не
// изобретает TimeRecord локально - любое состояние приходит от сервера.
//
// Ошибки сервера возвращаются тем же DomainError-кодом, что и локальные
// проверки, чтобы у вызывающей стороны была одна поверхность ошибок.
// Сетевые сбои оборачиваются в TRANSPORT_FAILURE и не меняют никакого
// состояния; автоматических повторов нет - повторный clock-in после
// таймаута мог бы открыть вторую запись.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

func New(baseURL, userID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		userID:     userID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) UserID() string {
	return c.userID
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

func parseTimePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func httpRecordToDomain(resp handler.TimeRecordResponse) (*domain.TimeRecord, error) {
	clockIn, err := parseTime(resp.ClockIn)
	if err != nil {
		return nil, fmt.Errorf("invalid clock_in in response: %w", err)
	}

	rec := &domain.TimeRecord{
		ID:          resp.ID,
		UserID:      resp.UserID,
		ClockIn:     clockIn,
		IsTerrain:   resp.IsTerrain,
		WorkSummary: resp.WorkSummary,
	}

	if rec.ClockOut, err = parseTimePtr(resp.ClockOut); err != nil {
		return nil, fmt.Errorf("invalid clock_out in response: %w", err)
	}
	if rec.BreakStart, err = parseTimePtr(resp.BreakStart); err != nil {
		return nil, fmt.Errorf("invalid break_start in response: %w", err)
	}
	if rec.BreakEnd, err = parseTimePtr(resp.BreakEnd); err != nil {
		return nil, fmt.Errorf("invalid break_end in response: %w", err)
	}

	return rec, nil
}

func httpStatusToDomain(resp handler.AttendanceStatusResponse) (*domain.AttendanceStatus, error) {
	status := &domain.AttendanceStatus{
		UserID:                 resp.UserID,
		IsClockedIn:            resp.IsClockedIn,
		IsOnBreak:              resp.IsOnBreak,
		IsTerrain:              resp.IsTerrain,
		CurrentDurationMinutes: resp.CurrentDurationMinutes,
	}

	if resp.CurrentEntry != nil {
		rec, err := httpRecordToDomain(*resp.CurrentEntry)
		if err != nil {
			return nil, err
		}
		status.CurrentEntry = rec
	}

	return status, nil
}

func httpMembersToDomain(members []handler.TeamMemberStatusResponse) ([]domain.TeamMemberStatus, error) {
	result := make([]domain.TeamMemberStatus, 0, len(members))
	for _, member := range members {
		status, err := httpStatusToDomain(member.Status)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.TeamMemberStatus{
			UserID:     member.UserID,
			Username:   member.Username,
			Department: member.Department,
			Role:       domain.Role(member.Role),
			Status:     *status,
		})
	}
	return result, nil
}

// decodeError превращает тело ошибки сервера в DomainError с тем же кодом.
// Нечитаемое тело означает сломанный транспорт, а не доменную ошибку.
func decodeError(resp *http.Response) error {
	var errResp handler.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Code == "" {
		return domain.NewTransportFailureError(fmt.Errorf("unexpected response status %d", resp.StatusCode))
	}
	return &domain.DomainError{
		Code:    errResp.Error.Code,
		Message: errResp.Error.Message,
	}
}

func (c *Client) postRecord(ctx context.Context, path string, payload any) (*domain.TimeRecord, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewTransportFailureError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeError(resp)
	}

	var envelope handler.TimeRecordEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, domain.NewTransportFailureError(err)
	}

	return httpRecordToDomain(envelope.Record)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	query := url.Values{"user_id": {c.userID}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewTransportFailureError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewTransportFailureError(err)
	}

	return nil
}

func (c *Client) ClockIn(ctx context.Context, isTerrain bool) (*domain.TimeRecord, error) {
	return c.postRecord(ctx, "/attendance/clockIn", handler.ClockInRequest{
		UserID:    c.userID,
		IsTerrain: isTerrain,
	})
}

func (c *Client) ClockOut(ctx context.Context, workSummary string) (*domain.TimeRecord, error) {
	return c.postRecord(ctx, "/attendance/clockOut", handler.ClockOutRequest{
		UserID:      c.userID,
		WorkSummary: workSummary,
	})
}

func (c *Client) StartBreak(ctx context.Context) (*domain.TimeRecord, error) {
	return c.postRecord(ctx, "/attendance/startBreak", handler.CommandRequest{UserID: c.userID})
}

func (c *Client) EndBreak(ctx context.Context) (*domain.TimeRecord, error) {
	return c.postRecord(ctx, "/attendance/endBreak", handler.CommandRequest{UserID: c.userID})
}

func (c *Client) ToggleTerrain(ctx context.Context) (*domain.TimeRecord, error) {
	return c.postRecord(ctx, "/attendance/toggleTerrain", handler.CommandRequest{UserID: c.userID})
}

func (c *Client) GetStatus(ctx context.Context) (*domain.AttendanceStatus, error) {
	var resp handler.AttendanceStatusResponse
	if err := c.get(ctx, "/attendance/status", &resp); err != nil {
		return nil, err
	}
	return httpStatusToDomain(resp)
}

func (c *Client) GetTeamSnapshot(ctx context.Context) (*domain.TeamSnapshot, error) {
	var resp handler.TeamSnapshotResponse
	if err := c.get(ctx, "/attendance/team", &resp); err != nil {
		return nil, err
	}

	takenAt, err := parseTime(resp.TakenAt)
	if err != nil {
		return nil, fmt.Errorf("invalid taken_at in response: %w", err)
	}

	members, err := httpMembersToDomain(resp.Members)
	if err != nil {
		return nil, err
	}

	return &domain.TeamSnapshot{
		TakenAt: takenAt,
		Members: members,
		Stats: domain.TeamStats{
			ActiveCount:     resp.Stats.ActiveCount,
			OnBreakCount:    resp.Stats.OnBreakCount,
			ClockedOutCount: resp.Stats.ClockedOutCount,
			TotalMinutes:    resp.Stats.TotalMinutes,
			AverageHours:    resp.Stats.AverageHours,
		},
	}, nil
}

func (c *Client) GetActiveUsers(ctx context.Context) ([]domain.TeamMemberStatus, error) {
	var resp handler.TeamMembersResponse
	if err := c.get(ctx, "/attendance/active", &resp); err != nil {
		return nil, err
	}
	return httpMembersToDomain(resp.Members)
}

func (c *Client) GetNotClockedInUsers(ctx context.Context) ([]domain.TeamMemberStatus, error) {
	var resp handler.TeamMembersResponse
	if err := c.get(ctx, "/attendance/notClockedIn", &resp); err != nil {
		return nil, err
	}
	return httpMembersToDomain(resp.Members)
}
