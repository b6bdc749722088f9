package main

import (
	"errors"
	"flag"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeaccel/life"
	"lifeaccel/pool"
)

func main() {
	flag.Parse()

	workers := *workersFlag
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	p, err := pool.New(workers)
	if err != nil {
		log.Fatalf("Worker pool setup failed: %v", err)
	}
	defer p.Shutdown()

	cellSize := *cellSizeFlag
	if cellSize < 1 {
		log.Fatalf("Cell size must be positive, got %d", cellSize)
	}
	rows := windowH / cellSize
	cols := windowW / cellSize

	var opts []life.Option
	if *seedFlag != 0 {
		opts = append(opts, life.WithSeed(*seedFlag))
	}
	engine, err := life.NewEngine(rows, cols, p, opts...)
	if err != nil {
		log.Fatalf("Engine setup failed: %v", err)
	}
	if err := engine.Randomize(*fillFlag); err != nil {
		log.Fatalf("Randomize failed: %v", err)
	}
	log.Printf("LifeAccel: %dx%d cells, %d workers", rows, cols, p.Workers())

	ebiten.SetWindowSize(cols*cellSize, rows*cellSize)
	ebiten.SetWindowTitle("LifeAccel — Conway's Game of Life")
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(newGame(engine)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
