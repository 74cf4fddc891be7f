package main

import (
	"fmt"
	"os"

	"worklog/internal/cli"
	"worklog/internal/config"
	"worklog/internal/services"
	"worklog/internal/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	st, err := config.CreateStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	container := services.NewContainer(st, cfg.DailyLimitMillis())
	settingsMgr := settings.NewManager(st)

	app := cli.NewApp(container, settingsMgr, cfg)
	if err := app.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
