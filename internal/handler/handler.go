package handler

import "github.com/bagdasarian/team-attendance/internal/service"

type Handler struct {
	attendanceService service.AttendanceService
	snapshotService   service.SnapshotService
}

func NewHandler(
	attendanceService service.AttendanceService,
	snapshotService service.SnapshotService,
) *Handler {
	return &Handler{
		attendanceService: attendanceService,
		snapshotService:   snapshotService,
	}
}
