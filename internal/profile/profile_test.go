package profile

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerReport(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	p := newWithClock(slog.New(slog.NewTextHandler(io.Discard, nil)), clock.now)

	stop := p.Time("Read")
	clock.advance(250 * time.Millisecond)
	stop()

	stop = p.Time("Parse")
	clock.advance(750 * time.Millisecond)
	stop()

	if got := len(p.recorded()); got != 2 {
		t.Fatalf("got %d blocks, want 2", got)
	}
	if got := p.Total(); got != time.Second {
		t.Fatalf("Total() = %v, want 1s", got)
	}

	var out bytes.Buffer
	if err := p.Report(&out); err != nil {
		t.Fatalf("Report: %v", err)
	}

	for _, want := range []string{
		"Total time: 1000ms",
		"  Read: 250ms (25.00%)",
		"  Parse: 750ms (75.00%)",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report missing %q:\n%s", want, out.String())
		}
	}
}

func TestPercentOfZeroTotal(t *testing.T) {
	if got := percent(time.Second, 0); got != "0.00%" {
		t.Errorf("percent(1s, 0) = %q", got)
	}
}
