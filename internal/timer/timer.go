package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lancerhq/lancer/internal/models"
)

// Zero is what the display shows when no session is active.
const Zero = "00:00:00"

// Format renders an elapsed duration as zero-padded HH:MM:SS. Hours
// keep counting past two digits rather than wrapping at 24.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Ticker derives a live elapsed-time display from the active work
// session. One ticking goroutine exists per process no matter how many
// views subscribe; Run is a no-op after the first call.
type Ticker struct {
	mu       sync.Mutex
	active   *models.WorkSession
	subs     []chan string
	interval time.Duration

	runOnce sync.Once
}

// New returns a ticker on the standard one-second cadence.
func New() *Ticker {
	return newWithInterval(time.Second)
}

func newWithInterval(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Run drives the tick loop until ctx is cancelled. Only the first
// caller gets the loop; later calls return immediately.
func (t *Ticker) Run(ctx context.Context) {
	started := false
	t.runOnce.Do(func() { started = true })
	if !started {
		return
	}

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tick.C:
			t.publish(t.displayAt(now))
		}
	}
}

// SetActive replaces the active session (nil = none) and publishes the
// new display immediately so views don't wait out a tick.
func (t *Ticker) SetActive(ws *models.WorkSession) {
	t.mu.Lock()
	t.active = ws
	t.mu.Unlock()
	t.publish(t.displayAt(time.Now()))
}

// Display returns the current formatted elapsed time.
func (t *Ticker) Display() string {
	return t.displayAt(time.Now())
}

func (t *Ticker) displayAt(now time.Time) string {
	t.mu.Lock()
	ws := t.active
	t.mu.Unlock()

	if ws == nil {
		return Zero
	}
	return Format(now.Sub(ws.StartTime))
}

// Subscribe returns a stream of display updates, one per tick. Slow
// readers drop updates instead of stalling the loop.
func (t *Ticker) Subscribe() <-chan string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ch := make(chan string, 1)
	t.subs = append(t.subs, ch)
	return ch
}

func (t *Ticker) publish(display string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, ch := range t.subs {
		select {
		case ch <- display:
		default:
		}
	}
}
