package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	ran := 0
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("count-again", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})

	// A failing job must not stop the others
	s.RunOnce(context.Background())

	assert.Equal(t, 2, ran)
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		close(done)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}
