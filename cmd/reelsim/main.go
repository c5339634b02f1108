// Command reelsim runs the reel on the host and draws the strip in the
// terminal.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"demoreel-go/bus"
	"demoreel-go/services/config"
	"demoreel-go/services/diag"
	"demoreel-go/services/reel"
	"demoreel-go/services/reel/platform"
)

func main() {
	var (
		board   = platform.Board
		leds    int
		fps     uint32
		reverse bool
	)
	pflag.StringVarP(&board, "board", "b", board, "embedded config profile (sim, pico, esp32-devkit)")
	pflag.IntVar(&leds, "leds", 0, "override strip length")
	pflag.Uint32Var(&fps, "fps", 0, "override frame rate")
	pflag.BoolVar(&reverse, "reverse-browse", false, "encoder turned back selects the previous pattern")
	pflag.Parse()

	cfg, err := config.Load(board)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reelsim:", err)
		os.Exit(1)
	}
	if leds > 0 {
		cfg.Strip.LEDs = leds
	}
	if fps > 0 {
		cfg.Strip.FPS = fps
	}
	cfg.ReverseBrowse = cfg.ReverseBrowse || reverse
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "reelsim:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(64)
	log := newLineLog(6)
	host := platform.NewHost(cfg, log)

	_ = diag.New(log, 0).Start(ctx, b.NewConnection("diag"))
	svc, err := reel.New(b.NewConnection("reel"), cfg, host.Resources())
	if err != nil {
		fmt.Fprintln(os.Stderr, "reelsim:", err)
		os.Exit(1)
	}
	go func() { _ = svc.Run(ctx) }()

	state := b.NewConnection("tui").Subscribe(reel.TopicState)
	p := tea.NewProgram(newModel(host, state, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
