//go:build ignore

// This script issues a bearer token for the auto-process endpoint.
// Run with: go run scripts/generate-cron-token.go -config config.yaml -ttl 1h

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/gas-batcher/pkg/auth"
	"github.com/chainsafe/gas-batcher/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	subject := flag.String("sub", "cron", "Token subject")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	v, err := auth.NewCronValidator(cfg.Auth.CronSecret, cfg.Auth.CronIssuer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "auth.cron_secret must be set: %v\n", err)
		os.Exit(1)
	}

	token, err := v.IssueToken(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Use it with:")
	fmt.Fprintln(os.Stderr, "  curl -X POST -H \"Authorization: Bearer <token>\" http://localhost:8080/batch/auto-process")
}
