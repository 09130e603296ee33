package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	s.AddJob("fail", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	// A failing job never stops the others.
	assert.Equal(t, int32(2), ran.Load())
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Int32
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	s.Start()
	s.Stop()

	// The startup run fires before the first interval elapses.
	assert.Equal(t, int32(1), ran.Load())
}
