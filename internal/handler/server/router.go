package server

import (
	"net/http"

	"github.com/bagdasarian/team-attendance/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /attendance/clockIn", h.ClockIn)
	mux.HandleFunc("POST /attendance/clockOut", h.ClockOut)
	mux.HandleFunc("POST /attendance/startBreak", h.StartBreak)
	mux.HandleFunc("POST /attendance/endBreak", h.EndBreak)
	mux.HandleFunc("POST /attendance/toggleTerrain", h.ToggleTerrain)
	mux.HandleFunc("GET /attendance/status", h.GetStatus)
	mux.HandleFunc("GET /attendance/team", h.GetTeamSnapshot)
	mux.HandleFunc("GET /attendance/active", h.GetActiveUsers)
	mux.HandleFunc("GET /attendance/notClockedIn", h.GetNotClockedInUsers)
}
