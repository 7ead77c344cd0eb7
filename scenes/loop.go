package scenes

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives a duel at a fixed tick rate from a single goroutine.
// Realtime loops wait on a ticker; otherwise ticks run back to back.
type GameLoop struct {
	duel     *Duel
	tickRate int
	realtime bool
	maxTicks int
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop for duel. maxTicks of 0 runs until the match
// is decided or Stop is called.
func NewGameLoop(duel *Duel, tickRate int, realtime bool, maxTicks int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		duel:     duel,
		tickRate: tickRate,
		realtime: realtime,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the match ends, the tick budget is spent or Stop is
// called, and returns the result at that point.
func (g *GameLoop) Run() Result {
	var ticks <-chan time.Time
	if g.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		ticks = ticker.C
	}

	log.Printf("Game loop started at %d ticks/second (realtime: %v)", g.tickRate, g.realtime)

	for ticked := 0; g.maxTicks == 0 || ticked < g.maxTicks; ticked++ {
		if g.realtime {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return g.duel.Result()
			case <-ticks:
			}
		} else {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return g.duel.Result()
			default:
			}
		}

		g.tick()
		if g.duel.Finished() {
			break
		}
	}
	log.Println("Game loop finished")
	return g.duel.Result()
}

// Stop ends Run at the next tick. It is safe to call more than once and
// from another goroutine.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.duel.Update(1 / float64(g.tickRate))
}
