package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Sweeper evicts expired entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}

// Scheduler periodically evicts expired cache entries. It never refetches
// data; refreshing only happens on an explicit user fetch.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sweeper   Sweeper
	interval  time.Duration
}

// New creates a new Scheduler.
func New(sweeper Sweeper, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		sweeper:   sweeper,
		interval:  interval,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.sweeper == nil {
		log.Println("scheduler: no cache configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(s.runSweep)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) runSweep() {
	if n := s.sweeper.Sweep(); n > 0 {
		log.Printf("scheduler: evicted %d expired cache entries", n)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
