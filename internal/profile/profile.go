package profile

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

type Block struct {
	Name    string
	Elapsed time.Duration
}

// Profiler records named, sequential timing blocks of one run.
type Profiler struct {
	now    func() time.Time
	start  time.Time
	blocks []Block
	log    *slog.Logger
}

func New(log *slog.Logger) *Profiler {
	return newWithClock(log, time.Now)
}

func newWithClock(log *slog.Logger, now func() time.Time) *Profiler {
	if log == nil {
		log = slog.Default()
	}
	return &Profiler{now: now, start: now(), log: log}
}

// Time starts a block; call the returned func to close it.
//
//	defer p.Time("parse")()
func (p *Profiler) Time(name string) func() {
	start := p.now()
	return func() {
		elapsed := p.now().Sub(start)
		p.blocks = append(p.blocks, Block{Name: name, Elapsed: elapsed})
		p.log.Debug("profile.block", "name", name, "elapsed", elapsed)
	}
}

func (p *Profiler) recorded() []Block {
	return p.blocks
}

func (p *Profiler) Total() time.Duration {
	return p.now().Sub(p.start)
}

func (p *Profiler) Report(w io.Writer) error {
	total := p.Total()
	if _, err := fmt.Fprintf(w, "\nTotal time: %dms\n", total.Milliseconds()); err != nil {
		return err
	}
	for _, b := range p.blocks {
		if _, err := fmt.Fprintf(w, "  %s: %s (%s)\n", b.Name, b.Elapsed, percent(b.Elapsed, total)); err != nil {
			return err
		}
	}
	return nil
}

func percent(part, total time.Duration) string {
	if total <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}
