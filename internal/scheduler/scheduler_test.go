package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anderssondelao/eventos-locales-app/internal/metrics"
	"github.com/anderssondelao/eventos-locales-app/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

type recorderStub struct {
	sizes []int
}

func (r *recorderStub) SetRepositorySize(n int) {
	r.sizes = append(r.sizes, n)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RecordsSize(t *testing.T) {
	counter := mocks.NewMockEventCounter(t)
	rec := &recorderStub{}
	log := newTestLogger(t)

	s := New(counter, rec, 50*time.Millisecond, log)

	counter.EXPECT().Count(mock.Anything).Return(3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(counter.Calls), 1)
	if assert.NotEmpty(t, rec.sizes) {
		assert.Equal(t, 3, rec.sizes[0])
	}
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	counter := mocks.NewMockEventCounter(t)
	rec := &recorderStub{}
	log := newTestLogger(t)

	s := New(counter, rec, 50*time.Millisecond, log)

	counter.EXPECT().Count(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(counter.Calls), 1)
	assert.Empty(t, rec.sizes)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	counter := mocks.NewMockEventCounter(t)
	log := newTestLogger(t)

	s := New(counter, metrics.New(), time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	counter := mocks.NewMockEventCounter(t)
	log := newTestLogger(t)

	s := New(counter, metrics.New(), 30*time.Millisecond, log)

	counter.EXPECT().Count(mock.Anything).Return(1, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(counter.Calls), 3)
}
