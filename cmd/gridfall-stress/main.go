package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/gridfall/game"
)

func main() {
	games := flag.Int("games", 100, "The number of games to play to completion.")
	boardWidth := flag.Int("width", 8, "Board width in cells.")
	boardHeight := flag.Int("height", 24, "Board height in cells.")
	seed := flag.Uint64("seed", 1, "Seed for piece generation and the scripted inputs.")
	maxTicks := flag.Int("max-ticks", 1_000_000, "Safety cap on ticks per game.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting gridfall stress test...")

	report := &Report{
		Games:          *games,
		BoardWidth:     *boardWidth,
		BoardHeight:    *boardHeight,
		Seed:           *seed,
		MaxTicks:       *maxTicks,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	// One source drives both piece generation and the random inputs, so a
	// seed reproduces the whole run.
	rng := game.NewSource(*seed, *seed^0x9e3779b97f4a7c15)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Playing %d games on a %dx%d board...\n", *games, *boardWidth, *boardHeight)
	startTime := time.Now()

	for i := 0; i < *games; i++ {
		state := game.New(*boardHeight, *boardWidth, rng)
		driver := game.NewDriver(state, game.DriverOptions{SlowTicksPerDrop: 1})

		ticks := 0
		for state.Alive() && ticks < *maxTicks {
			switch rng.IntN(0, 5) {
			case 0:
				driver.QueueShift(true)
			case 1:
				driver.QueueShift(false)
			case 2:
				driver.QueueRotate(true)
			case 3:
				driver.QueueRotate(false)
			}

			tickStart := time.Now()
			driver.Tick()
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			ticks++
		}

		report.TotalTicks += int64(ticks)
		report.RowsCleared.Samples = append(report.RowsCleared.Samples, int(state.RowsCleared()))
		if !state.Alive() {
			report.TopOuts++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.RowsCleared.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
