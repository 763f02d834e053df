package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

func TestSynchronizer_Run(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("первый опрос выполняется сразу после запуска", func(t *testing.T) {
		client := new(MockRemoteClient)
		tr := newTestTracker(client, defaultConfig())

		client.On("GetStatus", mock.Anything).Return(workingStatus(clockIn), nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			NewSynchronizer(tr, time.Minute, false).Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool {
			return tr.State() == domain.StateWorking
		}, time.Second, 10*time.Millisecond)

		cancel()
		<-done
	})

	t.Run("опрос команды включается флагом withTeam", func(t *testing.T) {
		client := new(MockRemoteClient)
		tr := newTestTracker(client, defaultConfig())

		client.On("GetStatus", mock.Anything).Return(workingStatus(clockIn), nil)
		client.On("GetTeamSnapshot", mock.Anything).Return(&domain.TeamSnapshot{
			TakenAt: clockIn,
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			NewSynchronizer(tr, time.Minute, true).Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool {
			return tr.Team() != nil
		}, time.Second, 10*time.Millisecond)

		cancel()
		<-done
	})

	t.Run("неудачный опрос не роняет цикл", func(t *testing.T) {
		client := new(MockRemoteClient)
		tr := newTestTracker(client, defaultConfig())

		client.On("GetStatus", mock.Anything).Return(nil, domain.ErrTransportFailure)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			NewSynchronizer(tr, 10*time.Millisecond, false).Run(ctx)
			close(done)
		}()

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, domain.StateClockedOut, tr.State())

		cancel()
		<-done
	})
}
