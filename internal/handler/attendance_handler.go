package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	rec, err := h.attendanceService.ClockIn(r.Context(), req.UserID, req.IsTerrain)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(TimeRecordEnvelope{
		Record: domainRecordToHTTP(rec),
	})
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	rec, err := h.attendanceService.ClockOut(r.Context(), req.UserID, req.WorkSummary)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TimeRecordEnvelope{
		Record: domainRecordToHTTP(rec),
	})
}

func (h *Handler) StartBreak(w http.ResponseWriter, r *http.Request) {
	h.handleCommand(w, r, h.attendanceService.StartBreak)
}

func (h *Handler) EndBreak(w http.ResponseWriter, r *http.Request) {
	h.handleCommand(w, r, h.attendanceService.EndBreak)
}

func (h *Handler) ToggleTerrain(w http.ResponseWriter, r *http.Request) {
	h.handleCommand(w, r, h.attendanceService.ToggleTerrain)
}

// handleCommand обслуживает команды без параметров, кроме user_id
func (h *Handler) handleCommand(
	w http.ResponseWriter,
	r *http.Request,
	command func(ctx context.Context, userID string) (*domain.TimeRecord, error),
) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	rec, err := command(r.Context(), req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TimeRecordEnvelope{
		Record: domainRecordToHTTP(rec),
	})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id parameter is required",
		})
		return
	}

	status, err := h.attendanceService.GetStatus(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainStatusToHTTP(status))
}
