package game

import (
	"context"
	"time"
)

// DriverOptions configures the fall cadence, expressed in ticks per one-row
// drop. Zero values fall back to the defaults.
type DriverOptions struct {
	SlowTicksPerDrop int
	FastTicksPerDrop int
}

const (
	defaultSlowTicksPerDrop = 10
	defaultFastTicksPerDrop = 1
)

// moveCommand is one buffered rotate or shift input.
type moveCommand struct {
	rotate    bool
	clockwise bool
	leftwards bool
}

// DriverStats reports accumulated tick execution statistics.
type DriverStats struct {
	Ticks  int64
	Phases []PhaseStats
}

// PhaseStats holds execution statistics for one tick phase.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPhaseStats(name string) *phaseStatsInternal {
	return &phaseStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *phaseStatsInternal) record(d time.Duration) {
	p.executionCount++
	p.lastDuration = d
	p.totalDuration += d
	if d < p.minDuration {
		p.minDuration = d
	}
	if d > p.maxDuration {
		p.maxDuration = d
	}
}

// Driver sequences a State the way the engine contract expects: within one
// tick, at most one buffered rotate/shift is applied, then at most one
// gravity evaluation. Inputs queued between ticks are buffered rather than
// applied immediately, so hosts can feed events from their own loop without
// racing the gravity step. Like the State it wraps, a Driver belongs to a
// single goroutine.
type Driver struct {
	state *State
	moves []moveCommand

	slowTicks int
	fastTicks int
	wantTicks int
	haveTicks int

	ticks        int64
	inputStats   *phaseStatsInternal
	gravityStats *phaseStatsInternal
}

// NewDriver wraps state in a tick driver starting at the slow fall cadence.
func NewDriver(state *State, opts DriverOptions) *Driver {
	if opts.SlowTicksPerDrop <= 0 {
		opts.SlowTicksPerDrop = defaultSlowTicksPerDrop
	}
	if opts.FastTicksPerDrop <= 0 {
		opts.FastTicksPerDrop = defaultFastTicksPerDrop
	}
	return &Driver{
		state:        state,
		slowTicks:    opts.SlowTicksPerDrop,
		fastTicks:    opts.FastTicksPerDrop,
		wantTicks:    opts.SlowTicksPerDrop,
		inputStats:   newPhaseStats("input"),
		gravityStats: newPhaseStats("gravity"),
	}
}

// State returns the driven engine state.
func (d *Driver) State() *State {
	return d.state
}

// QueueRotate buffers a rotation input for the next tick.
func (d *Driver) QueueRotate(clockwise bool) {
	d.moves = append(d.moves, moveCommand{rotate: true, clockwise: clockwise})
}

// QueueShift buffers a horizontal move input for the next tick.
func (d *Driver) QueueShift(leftwards bool) {
	d.moves = append(d.moves, moveCommand{leftwards: leftwards})
}

// SetFastFall switches the gravity cadence between the fast and slow
// thresholds. The driver drops back to slow on its own whenever a piece
// lands, so anything worth watching happens at a readable speed.
func (d *Driver) SetFastFall(fast bool) {
	if fast {
		d.wantTicks = d.fastTicks
	} else {
		d.wantTicks = d.slowTicks
	}
}

// Tick runs one driver step: the oldest buffered input, then gravity when
// the cadence is due.
func (d *Driver) Tick() {
	d.ticks++

	if len(d.moves) > 0 {
		move := d.moves[0]
		d.moves = d.moves[:copy(d.moves, d.moves[1:])]

		start := time.Now()
		if move.rotate {
			d.state.TryRotate(move.clockwise)
		} else {
			d.state.TryShift(move.leftwards)
		}
		d.inputStats.record(time.Since(start))
	}

	d.haveTicks++
	if d.haveTicks < d.wantTicks {
		return
	}
	d.haveTicks = 0

	start := time.Now()
	fell := d.state.TryDrop()
	d.gravityStats.record(time.Since(start))
	if !fell {
		d.wantTicks = d.slowTicks
	}
}

// Run ticks the driver at the given interval until the context is cancelled
// or the game ends.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Tick()
			if !d.state.Alive() {
				return
			}
		}
	}
}

// Stats returns statistics about tick execution.
func (d *Driver) Stats() *DriverStats {
	stats := &DriverStats{
		Ticks:  d.ticks,
		Phases: make([]PhaseStats, 0, 2),
	}
	for _, internal := range []*phaseStatsInternal{d.inputStats, d.gravityStats} {
		avg := time.Duration(0)
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
		}
		stats.Phases = append(stats.Phases, PhaseStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
	}
	return stats
}
