package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/bagdasarian/team-attendance/internal/client"
	"github.com/bagdasarian/team-attendance/internal/config"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/tracker"
)

var (
	serverURL = flag.String("server", "http://localhost:8080", "base URL of the attendance server")
	userID    = flag.String("user", "", "acting user id, e.g. u1")
	terrain   = flag.Bool("terrain", false, "clock in directly into terrain mode")
	summary   = flag.String("summary", "", "work summary attached on clock-out")
	watch     = flag.Bool("watch", false, "keep polling and reprinting (status and team only)")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: attendancectl [flags] <command>

Commands:
  clockin    open a shift
  clockout   close the shift, with --summary if documentation is required
  break      start a break
  endbreak   end the current break
  terrain    toggle terrain mode
  status     print own attendance status
  team       print the team snapshot (manager/admin only)

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *userID == "" {
		log.Fatal("--user is required")
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	c := client.New(*serverURL, *userID, 10*time.Second)
	tr := tracker.NewTracker(c, *userID, cfg.Attendance)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, tr, flag.Arg(0)); err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
}

func run(ctx context.Context, tr *tracker.Tracker, command string) error {
	// перед командой локальное зеркало сверяется с сервером, иначе
	// автомат отклонил бы команду из стартового CLOCKED_OUT
	if err := tr.Refresh(ctx); err != nil {
		return err
	}

	switch command {
	case "clockin":
		if err := tr.ClockIn(ctx, *terrain); err != nil {
			return err
		}
	case "clockout":
		if err := tr.ClockOut(ctx, *summary); err != nil {
			return err
		}
	case "break":
		if err := tr.StartBreak(ctx); err != nil {
			return err
		}
	case "endbreak":
		if err := tr.EndBreak(ctx); err != nil {
			return err
		}
	case "terrain":
		if err := tr.ToggleTerrain(ctx); err != nil {
			return err
		}
	case "status":
		if *watch {
			return watchStatus(ctx, tr)
		}
	case "team":
		if err := tr.RefreshTeam(ctx); err != nil {
			return err
		}
		printTeam(tr.Team())
		return nil
	default:
		usage()
		os.Exit(2)
	}

	printStatus(tr)
	return nil
}

func watchStatus(ctx context.Context, tr *tracker.Tracker) error {
	printStatus(tr)

	sync := tracker.NewSynchronizer(tr, 5*time.Second, false)
	go sync.Run(ctx)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			printStatus(tr)
		}
	}
}

func printStatus(tr *tracker.Tracker) {
	status := tr.Status()

	fmt.Printf("user:    %s\n", status.UserID)
	fmt.Printf("state:   %s\n", tr.State())
	if status.IsClockedIn {
		fmt.Printf("terrain: %v\n", status.IsTerrain)
		fmt.Printf("elapsed: %d min\n", tr.ElapsedMinutes(time.Now()))
	}
}

func printTeam(team *domain.TeamSnapshot) {
	if team == nil {
		return
	}

	fmt.Printf("snapshot taken at %s\n\n", team.TakenAt.Format(time.RFC3339))
	for _, member := range team.Members {
		fmt.Printf("  %-12s %-10s %-12s %s, %d min\n",
			member.Username,
			member.Department,
			member.Role,
			domain.StateOf(member.Status),
			member.Status.CurrentDurationMinutes,
		)
	}
	fmt.Printf("\nactive %d, on break %d, clocked out %d, total %d min, avg %.2f h\n",
		team.Stats.ActiveCount,
		team.Stats.OnBreakCount,
		team.Stats.ClockedOutCount,
		team.Stats.TotalMinutes,
		team.Stats.AverageHours,
	)
}
