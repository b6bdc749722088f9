package main

import "flag"

// Command-line flags that control optional rendering, simulation, and runtime
// behavior.
var (
	// workersFlag sizes the worker pool that computes generation steps.
	workersFlag = flag.Int("workers", 0, "worker goroutines for the step engine (0 = all CPUs)")

	// fillFlag sets the initial live-cell probability for Randomize.
	fillFlag = flag.Float64("fill", defaultFill, "initial live-cell probability (0-1)")

	// seedFlag pins the randomize seed for reproducible runs.
	seedFlag = flag.Int64("seed", 0, "seed for the initial grid (0 = seed from the clock)")

	// cellSizeFlag controls how many window pixels one cell occupies.
	cellSizeFlag = flag.Int("cell-size", defaultCellSize, "window pixels per cell")

	// debugFlag enables the simulation metrics panel.
	debugFlag = flag.Bool("debug", false, "show the simulation metrics panel")

	// muteFlag disables the title-screen music.
	muteFlag = flag.Bool("mute", false, "disable title music")

	// skipTitleFlag jumps straight into the simulation.
	skipTitleFlag = flag.Bool("skip-title", false, "start the simulation immediately, skipping the title screen")

	// recordDefaultPGO captures a CPU profile of the running simulation to default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "capture default.pgo while the simulation runs")
)
