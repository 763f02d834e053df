package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

// requesterID извлекает идентификатор запросившего; аутентификация
// внешняя, ядру достаточно знать, от чьего имени пришел запрос
func requesterID(r *http.Request) (string, error) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		return "", &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id parameter is required",
		}
	}
	return userID, nil
}

func (h *Handler) GetTeamSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	snapshot, err := h.snapshotService.GetTeamSnapshot(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainSnapshotToHTTP(snapshot))
}

func (h *Handler) GetActiveUsers(w http.ResponseWriter, r *http.Request) {
	h.handleMembers(w, r, h.snapshotService.GetActiveUsers)
}

func (h *Handler) GetNotClockedInUsers(w http.ResponseWriter, r *http.Request) {
	h.handleMembers(w, r, h.snapshotService.GetNotClockedInUsers)
}

func (h *Handler) handleMembers(
	w http.ResponseWriter,
	r *http.Request,
	query func(ctx context.Context, requesterID string) ([]domain.TeamMemberStatus, error),
) {
	userID, err := requesterID(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	members, err := query(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TeamMembersResponse{
		Members: domainMembersToHTTP(members),
	})
}
