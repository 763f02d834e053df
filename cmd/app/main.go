package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/team-attendance/internal/config"
	"github.com/bagdasarian/team-attendance/internal/db"
	"github.com/bagdasarian/team-attendance/internal/handler"
	"github.com/bagdasarian/team-attendance/internal/handler/server"
	"github.com/bagdasarian/team-attendance/internal/repository/postgres"
	"github.com/bagdasarian/team-attendance/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	recordRepo := postgres.NewTimeRecordRepository(database)
	userRepo := postgres.NewUserRepository(database)
	snapshotRepo := postgres.NewSnapshotRepository(database)

	attendanceService := service.NewAttendanceService(recordRepo, userRepo, cfg.Attendance)
	snapshotService := service.NewSnapshotService(snapshotRepo, userRepo)

	h := handler.NewHandler(attendanceService, snapshotService)
	srv := server.NewServer(h, cfg.Server.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
