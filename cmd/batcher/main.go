package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/gas-batcher/pkg/app"
	"github.com/chainsafe/gas-batcher/pkg/app/batcher"
	"github.com/chainsafe/gas-batcher/pkg/config"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = batcher.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Batcher exited: %v\n", err)
		os.Exit(1)
	}
}
