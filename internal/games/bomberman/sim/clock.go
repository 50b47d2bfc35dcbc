package sim

import (
	"sync"
	"time"
)

// Clock supplies wall time for cooldowns and level transitions.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock reads the system clock.
var RealClock Clock = realClock{}

// Timer is a pending fuse that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler schedules fuses with time.AfterFunc.
var RealScheduler Scheduler = realScheduler{}

// fuseQueue collects expired fuses from timer goroutines until the next
// tick drains them. It is the only state shared across goroutines.
type fuseQueue struct {
	mu  sync.Mutex
	ids []BombID
}

func (q *fuseQueue) push(id BombID) {
	q.mu.Lock()
	q.ids = append(q.ids, id)
	q.mu.Unlock()
}

func (q *fuseQueue) drain() []BombID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.ids) == 0 {
		return nil
	}
	ids := q.ids
	q.ids = nil
	return ids
}

// cooldown gates repeated damage within a fixed window.
type cooldown struct {
	window time.Duration
	last   time.Time
	armed  bool
}

// ready reports whether the window since the last reset has elapsed.
func (c *cooldown) ready(now time.Time) bool {
	return !c.armed || now.Sub(c.last) >= c.window
}

func (c *cooldown) reset(now time.Time) {
	c.last = now
	c.armed = true
}

func (c *cooldown) clear() {
	c.armed = false
}
