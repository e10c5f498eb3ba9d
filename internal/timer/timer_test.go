package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lancerhq/lancer/internal/models"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{61 * time.Second, "00:01:01"},
		{3661 * time.Second, "01:01:01"}, // 1h 1m 1s
		{25 * time.Hour, "25:00:00"},     // no wrap at 24
		{100*time.Hour + 5*time.Second, "100:00:05"},
		{-3 * time.Second, "00:00:00"}, // clock skew clamps to zero
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.d))
	}
}

func TestDisplayTracksActiveSession(t *testing.T) {
	tk := New()
	now := time.Now()

	assert.Equal(t, Zero, tk.displayAt(now))

	tk.SetActive(&models.WorkSession{
		ID:        1,
		StartTime: now.Add(-3661 * time.Second),
		Status:    models.SessionActive,
	})
	assert.Equal(t, "01:01:01", tk.displayAt(now))

	// Session ends; next reading resets.
	tk.SetActive(nil)
	assert.Equal(t, Zero, tk.displayAt(now))
}

func TestSubscribersSeeTicks(t *testing.T) {
	tk := newWithInterval(5 * time.Millisecond)
	sub := tk.Subscribe()

	tk.SetActive(&models.WorkSession{StartTime: time.Now().Add(-time.Hour)})
	// SetActive publishes immediately.
	assert.Equal(t, "01:00:00", <-sub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tk.Run(ctx)
		close(done)
	}()

	select {
	case got := <-sub:
		assert.Regexp(t, `^\d{2,}:\d{2}:\d{2}$`, got)
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}

	cancel()
	<-done
}

func TestRunIsSingleton(t *testing.T) {
	tk := newWithInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tk.Run(ctx)

	// Wait until the loop is demonstrably ticking before racing it.
	sub := tk.Subscribe()
	tk.SetActive(&models.WorkSession{StartTime: time.Now()})
	<-sub
	select {
	case <-sub:
	case <-time.After(time.Second):
		t.Fatal("tick loop never started")
	}

	// A second Run must return immediately instead of starting another
	// tick loop.
	second := make(chan struct{})
	go func() {
		tk.Run(context.Background())
		close(second)
	}()

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("second Run call did not return")
	}
}
