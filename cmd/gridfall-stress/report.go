package main

import (
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games       int
	BoardWidth  int
	BoardHeight int
	Seed        uint64
	MaxTicks    int

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	RowsCleared    Counter
	TopOuts        int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := make([]time.Duration, len(s.Samples))
	copy(sorted, s.Samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	s.P50 = sorted[len(sorted)*50/100]
	s.P99 = sorted[len(sorted)*99/100]
}

// Counter aggregates one per-game integer result.
type Counter struct {
	Min     int
	Max     int
	Total   int
	Avg     float64
	Samples []int
}

func (c *Counter) Finalize() {
	if len(c.Samples) == 0 {
		return
	}

	c.Min = c.Samples[0]
	c.Max = c.Samples[0]
	for _, sample := range c.Samples {
		if sample < c.Min {
			c.Min = sample
		}
		if sample > c.Max {
			c.Max = sample
		}
		c.Total += sample
	}
	c.Avg = float64(c.Total) / float64(len(c.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Gridfall Stress Test Report

## Test Configuration
- **Games Played:** {{.Games}}
- **Board:** {{.BoardWidth}}x{{.BoardHeight}}
- **Seed:** {{.Seed}}
- **Tick Cap Per Game:** {{.MaxTicks}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **P50:** {{.TickTime.P50}}
  - **P99:** {{.TickTime.P99}}
  - **Max:** {{.TickTime.Max}}

## Game Results
- **Top-Outs:** {{.TopOuts}} of {{.Games}}
- **Rows Cleared:**
  - **Total:** {{.RowsCleared.Total}}
  - **Avg Per Game:** {{printf "%.2f" .RowsCleared.Avg}}
  - **Min:** {{.RowsCleared.Min}}
  - **Max:** {{.RowsCleared.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
