package main

import (
	"context"
	"time"

	"demoreel-go/bus"
	"demoreel-go/services/config"
	"demoreel-go/services/diag"
	"demoreel-go/services/reel"
	"demoreel-go/services/reel/platform"
	"demoreel-go/x/timex"
)

func main() {
	ctx := context.Background()
	b := bus.NewBus(16)

	// Publishes the retained config for anything that subscribes later.
	cfg, err := config.NewConfigService(platform.Board).Start(ctx, b.NewConnection("config"))
	if err != nil {
		cfg = config.Defaults()
		cfg.Device = platform.Board
	}

	// Let USB CDC enumerate and the strip supply settle.
	time.Sleep(timex.Ms(cfg.BootDelayMs))
	println("[main] boot", cfg.Device)
	if err != nil {
		println("[main] config:", err.Error(), "- using defaults")
	}

	res, err := platform.Setup(cfg)
	if err != nil {
		println("[main] platform:", err.Error())
		select {}
	}

	every := time.Duration(cfg.StatsEverySec) * time.Second
	_ = diag.New(res.Console, every).Start(ctx, b.NewConnection("diag"))

	// Never returns on device.
	_ = reel.Run(ctx, b.NewConnection("reel"), cfg, res)
	select {}
}
