// Command simulate steps a level headlessly and logs the player's
// trajectory. It is useful for checking tuning changes without a window.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/automoto/ascension/components"
	"github.com/automoto/ascension/config"
	"github.com/automoto/ascension/simulation"
)

func main() {
	levelPath := flag.String("level", "", "TMX level to load (empty = built-in demo)")
	configPath := flag.String("config", "", "YAML tuning overrides")
	ticks := flag.Int("ticks", 600, "Number of steps to run (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Steps per second (0 = as fast as possible)")
	logEvery := flag.Int("log-every", 30, "Log the player every N steps")
	walk := flag.Int("walk", 1, "Held direction: -1 left, 0 none, 1 right")
	jumpEvery := flag.Int("jump-every", 90, "Press jump every N steps (0 = never)")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		w   *simulation.World
		err error
	)
	if *levelPath == "" {
		w = simulation.NewDemo()
	} else if w, err = simulation.NewFromFile(*levelPath); err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	loop := NewLoop(w, *tickRate)
	loop.Script = Script{Walk: *walk, JumpEvery: *jumpEvery}
	loop.LogEvery = *logEvery
	loop.Limit = *ticks

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating %d steps (tick rate: %d/s)", *ticks, *tickRate)
	loop.Run()
}

// Script is the canned input fed to the player.
type Script struct {
	Walk      int
	JumpEvery int
}

func (s Script) apply(p *components.PlayerData, tick int) {
	p.KeyLeft = s.Walk < 0
	p.KeyRight = s.Walk > 0
	p.KeyJump = s.JumpEvery > 0 && tick%s.JumpEvery == 0
}

// Loop drives a world either on a ticker or as fast as possible.
type Loop struct {
	world    *simulation.World
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	Script   Script
	LogEvery int
	Limit    int
}

func NewLoop(w *simulation.World, tickRate int) *Loop {
	return &Loop{
		world:    w,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run steps until Limit is reached or Stop is called.
func (l *Loop) Run() {
	step := config.Physics.MaxStep
	if l.tickRate > 0 {
		step = time.Second / time.Duration(l.tickRate)
	}

	var tickC <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(step)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for tick := 0; l.Limit <= 0 || tick < l.Limit; tick++ {
		if tickC != nil {
			select {
			case <-l.stopChan:
				log.Println("Simulation stopped")
				return
			case <-tickC:
			}
		} else {
			select {
			case <-l.stopChan:
				log.Println("Simulation stopped")
				return
			default:
			}
		}
		l.tick(tick, step)
	}
	l.report()
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick(tick int, step time.Duration) {
	p, ok := l.world.Player()
	if ok {
		l.Script.apply(components.Player.Get(p), tick)
	}

	l.world.Step(step)
	contacts := len(l.world.CollisionLog().Events) / 2
	l.world.CollisionLog().Clear()

	if ok && l.LogEvery > 0 && tick%l.LogEvery == 0 {
		m := components.Motion.Get(p)
		ph := components.Physics.Get(p)
		log.Printf("tick %5d pos=(%.0f, %.0f) vel=(%.1f, %.1f) inAir=%v contacts=%d",
			tick, m.Position.X, m.Position.Y, ph.Velocity.X, ph.Velocity.Y, ph.InAir, contacts)
	}
}

func (l *Loop) report() {
	p, ok := l.world.Player()
	if !ok {
		log.Println("Simulation finished (no player)")
		return
	}
	pl := components.Player.Get(p)
	h := components.Health.Get(p)
	m := components.Motion.Get(p)
	log.Printf("Simulation finished at (%.0f, %.0f): health=%d/%d dead=%v",
		m.Position.X, m.Position.Y, h.Current, h.Max, pl.Dead)
}
