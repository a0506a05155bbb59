package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joshishrau/FacilityFlow/internal/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestDispatcher_Tick_DeliversPending(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	d := New(deliverer, 50*time.Millisecond, log)

	deliverer.EXPECT().DeliverPending(mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	d.Start(ctx)

	assert.GreaterOrEqual(t, len(deliverer.Calls), 1)
}

func TestDispatcher_Tick_HandlesError(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	d := New(deliverer, 50*time.Millisecond, log)

	deliverer.EXPECT().DeliverPending(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	d.Start(ctx)

	assert.GreaterOrEqual(t, len(deliverer.Calls), 1)
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	d := New(deliverer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}

func TestDispatcher_MultipleTicks(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	d := New(deliverer, 30*time.Millisecond, log)

	deliverer.EXPECT().DeliverPending(mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	d.Start(ctx)

	calls := len(deliverer.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
