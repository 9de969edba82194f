// Package scheduler drives the periodic clock that refreshes "now" for
// time-derived views.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/studinest/internal/logging"
)

// DefaultInterval is how often listeners are told the time.
const DefaultInterval = time.Minute

// TickFunc receives the refreshed time.
type TickFunc func(now time.Time)

// Scheduler calls its listeners on a fixed interval and on day rollover.
type Scheduler struct {
	cron     *cron.Cron
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastTick time.Time
	entry    cron.EntryID
	onTick   []TickFunc
	onNewDay []TickFunc
	running  bool
}

// NewScheduler creates a scheduler ticking every interval. A non-positive
// interval uses DefaultInterval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		interval: interval,
		now:      time.Now,
	}
}

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// OnTick registers fn to run on every tick.
func (s *Scheduler) OnTick(fn TickFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = append(s.onTick, fn)
}

// OnNewDay registers fn to run on the first tick of a new calendar day.
func (s *Scheduler) OnNewDay(fn TickFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onNewDay = append(s.onNewDay, fn)
}

// Start begins ticking. Listeners are not called immediately.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.lastTick = s.now()
	s.mu.Unlock()

	spec := fmt.Sprintf("@every %s", s.interval)
	id, err := s.cron.AddFunc(spec, func() { s.Tick(s.now()) })
	if err != nil {
		return fmt.Errorf("failed to add clock tick: %w", err)
	}

	s.mu.Lock()
	s.entry = id
	s.running = true
	s.mu.Unlock()

	s.cron.Start()
	logging.DebugLog("scheduler started", "interval", s.interval.String())
	return nil
}

// Stop stops ticking and waits for a running tick to finish. The tick is
// unregistered, so a later Start adds exactly one again.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	s.mu.Lock()
	if s.entry != 0 {
		s.cron.Remove(s.entry)
		s.entry = 0
	}
	s.running = false
	s.mu.Unlock()
	logging.DebugLog("scheduler stopped")
}

// Tick delivers now to the listeners.
func (s *Scheduler) Tick(now time.Time) {
	s.mu.Lock()
	newDay := !s.lastTick.IsZero() && !sameDay(s.lastTick, now)
	s.lastTick = now
	ticks := append([]TickFunc(nil), s.onTick...)
	days := append([]TickFunc(nil), s.onNewDay...)
	s.mu.Unlock()

	if newDay {
		logging.DebugLog("day rolled over", "day", now.Format("2006-01-02"))
		for _, fn := range days {
			fn(now)
		}
	}
	for _, fn := range ticks {
		fn(now)
	}
}

// LastTick returns the time of the most recent tick.
func (s *Scheduler) LastTick() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTick
}

// NextRun returns the next scheduled tick, or the zero time when stopped.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	next := entries[0].Next
	for _, e := range entries[1:] {
		if e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
