// Command demo runs a traffic-light active object, the same shape as
// the traffic-light walkthrough in original_source/farc's README, driven
// by a YAML scenario file describing tick interval and cycle count —
// the Go analogue of the teacher's cmd/demo, which hardcoded those as
// constants.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/comalice/qpgo"
	"github.com/comalice/qpgo/internal/production"
	"github.com/comalice/qpgo/realtime"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Scenario configures one run of the traffic-light demo.
type Scenario struct {
	Name         string        `yaml:"name"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Cycles       int           `yaml:"cycles"`
}

func defaultScenario() Scenario {
	return Scenario{Name: "traffic-light", TickInterval: 2 * time.Second, Cycles: 12}
}

func loadScenario(path string) (Scenario, error) {
	sc := defaultScenario()
	if path == "" {
		return sc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.TickInterval <= 0 {
		return sc, fmt.Errorf("scenario %s: tick_interval must be positive", path)
	}
	return sc, nil
}

const sigTimer qpgo.Signal = 100

// buildTrafficLight wires the three-state red/green/yellow cycle from
// original_source/farc's README traffic-light example, logging every
// handler call via qpgo.WithLogging.
func buildTrafficLight(log zerolog.Logger) *qpgo.State {
	b := qpgo.NewBuilder()
	red := b.State("red")
	green := b.State("green")
	yellow := b.State("yellow")

	b.Bind("red", qpgo.WithLogging(log, "red", func(h *qpgo.HSM, e qpgo.Event) qpgo.Directive {
		switch e.Signal {
		case qpgo.SigEntry, qpgo.SigExit:
			return qpgo.DirHandled()
		case sigTimer:
			return qpgo.DirTran(green)
		}
		return qpgo.DirSuper(h.Top())
	}))

	b.Bind("green", qpgo.WithLogging(log, "green", func(h *qpgo.HSM, e qpgo.Event) qpgo.Directive {
		switch e.Signal {
		case qpgo.SigEntry, qpgo.SigExit:
			return qpgo.DirHandled()
		case sigTimer:
			return qpgo.DirTran(yellow)
		}
		return qpgo.DirSuper(h.Top())
	}))

	b.Bind("yellow", qpgo.WithLogging(log, "yellow", func(h *qpgo.HSM, e qpgo.Event) qpgo.Directive {
		switch e.Signal {
		case qpgo.SigEntry, qpgo.SigExit:
			return qpgo.DirHandled()
		case sigTimer:
			return qpgo.DirTran(red)
		}
		return qpgo.DirSuper(h.Top())
	}))

	return b.Bind("initial", func(h *qpgo.HSM, e qpgo.Event) qpgo.Directive {
		return qpgo.DirTran(red)
	})
}

func trafficLightTree() *production.Node {
	return &production.Node{Name: "traffic", Children: []*production.Node{
		{Name: "red"}, {Name: "green"}, {Name: "yellow"},
	}}
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario file (tick_interval, cycles)")
	flag.Parse()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load scenario")
	}
	log.Info().Str("scenario", sc.Name).Dur("tick_interval", sc.TickInterval).Int("cycles", sc.Cycles).Msg("starting demo")

	fw := qpgo.NewFramework()
	fw.Log = log

	traceCh := make(chan production.TraceEntry, 64)
	observer := production.NewChannelObserver(traceCh)
	fw.Observer = observer

	light := qpgo.NewActiveObject("traffic-light", 0, buildTrafficLight(log))
	if err := fw.Add(light, qpgo.EventInit); err != nil {
		log.Fatal().Err(err).Msg("add traffic light")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)

	var ticks atomic.Uint64
	loop := realtime.NewLoop(fw, sc.TickInterval)
	loop.OnPanic = func(r any) { log.Error().Interface("recovered", r).Msg("tick panicked") }
	loop.OnTick = func() {
		fw.Post(qpgo.Event{Signal: sigTimer}, light)
		if ticks.Add(1) >= uint64(sc.Cycles) {
			log.Info().Msg("cycle budget reached, shutting down")
			cancel()
		}
	}

	vis := production.Visualizer{}
	tree := trafficLightTree()

	go func() {
		for entry := range traceCh {
			if entry.Signal != qpgo.SigEntry {
				continue
			}
			dot := vis.ExportDOT(tree, []string{entry.StateName}, []production.Edge{
				{From: "red", To: "green", Label: "timer"},
				{From: "green", To: "yellow", Label: "timer"},
				{From: "yellow", To: "red", Label: "timer"},
			})
			fmt.Println(dot)
		}
	}()

	loop.Start(ctx)
	<-ctx.Done()
	log.Info().Msg("shutting down")
	loop.Stop()

	if err := fw.Stop(); err != nil {
		log.Fatal().Err(err).Msg("stop")
	}
	observer.Close()
	for _, info := range fw.PrintInfo() {
		log.Info().Str("ao", info.Name).Str("state", info.State).Msg("final state")
	}
}
