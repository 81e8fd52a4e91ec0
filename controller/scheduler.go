// File: scheduler.go
// Role: Pacing cadences that trigger session ticks.
// Concurrency:
//   - Cadence.Stop is non-blocking and idempotent. A tick already running
//     when Stop is called completes; no new tick starts afterwards.

package controller

import (
	"sync"
	"time"
)

// Scheduler starts periodic cadences.
type Scheduler interface {
	// Schedule calls tick every interval until the returned Cadence is stopped.
	Schedule(interval time.Duration, tick func()) Cadence
}

// Cadence is one running periodic trigger.
type Cadence interface {
	Stop()
}

// TickerScheduler schedules ticks on a time.Ticker in a dedicated goroutine.
// Ticks of one cadence never overlap.
type TickerScheduler struct{}

// Schedule implements Scheduler.
func (TickerScheduler) Schedule(interval time.Duration, tick func()) Cadence {
	c := &tickerCadence{done: make(chan struct{})}
	go c.loop(interval, tick)

	return c
}

type tickerCadence struct {
	done chan struct{}
	once sync.Once
}

func (c *tickerCadence) loop(interval time.Duration, tick func()) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			// Stop may race with the ticker; done wins.
			select {
			case <-c.done:
				return
			default:
			}
			tick()
		}
	}
}

func (c *tickerCadence) Stop() {
	c.once.Do(func() { close(c.done) })
}

// ManualScheduler fires ticks only when Fire is called, on the caller's
// goroutine. It makes session behavior deterministic in tests and lets a UI
// drive runs from its own frame loop.
type ManualScheduler struct {
	mu        sync.Mutex
	cadences  []*manualCadence
	intervals []time.Duration
}

// NewManualScheduler returns an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (m *ManualScheduler) Schedule(interval time.Duration, tick func()) Cadence {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &manualCadence{tick: tick}
	m.cadences = append(m.cadences, c)
	m.intervals = append(m.intervals, interval)

	return c
}

// Fire ticks every active cadence once and returns how many fired.
func (m *ManualScheduler) Fire() int {
	var fired int
	for _, c := range m.active() {
		if c.fire() {
			fired++
		}
	}

	return fired
}

// FireN calls Fire up to n times, stopping early when nothing is active.
// It returns the number of ticks delivered.
func (m *ManualScheduler) FireN(n int) int {
	var total int
	for i := 0; i < n; i++ {
		fired := m.Fire()
		if fired == 0 {
			break
		}
		total += fired
	}

	return total
}

// Active returns the number of cadences not yet stopped.
func (m *ManualScheduler) Active() int {
	return len(m.active())
}

// Intervals returns the interval of every cadence ever scheduled, in order.
func (m *ManualScheduler) Intervals() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]time.Duration(nil), m.intervals...)
}

func (m *ManualScheduler) active() []*manualCadence {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.cadences[:0]
	for _, c := range m.cadences {
		if !c.stopped() {
			live = append(live, c)
		}
	}
	m.cadences = live

	return append([]*manualCadence(nil), live...)
}

type manualCadence struct {
	mu   sync.Mutex
	stop bool
	tick func()
}

func (c *manualCadence) Stop() {
	c.mu.Lock()
	c.stop = true
	c.mu.Unlock()
}

func (c *manualCadence) stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stop
}

func (c *manualCadence) fire() bool {
	if c.stopped() {
		return false
	}
	c.tick()

	return true
}
