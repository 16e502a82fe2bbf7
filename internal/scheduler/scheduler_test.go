package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls int32
}

func (s *countingSweeper) Sweep() int {
	atomic.AddInt32(&s.calls, 1)
	return 0
}

func TestScheduler_RunsSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	s := New(sweeper, time.Second)

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&sweeper.calls) >= 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestScheduler_NoSweeper(t *testing.T) {
	s := New(nil, time.Minute)
	require.NoError(t, s.Start())
	s.Stop()
}
