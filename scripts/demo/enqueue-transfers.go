//go:build ignore

// Enqueue Transfers Script
//
// Queues a handful of native transfers against a running API server and
// prints the resulting analytics.
//
// Usage:
//   go run scripts/demo/enqueue-transfers.go -url http://localhost:8080 \
//     -from 0x... -to 0x... -count 6 -amount 1000000000000000
//
// Flags:
//   -url      API server base URL
//   -from     Sender address (required)
//   -to       Recipient address (required)
//   -count    Number of transfers to queue
//   -amount   Amount per transfer in wei
//   -dapp     Analytics scope to print afterwards

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var (
	baseURL = flag.String("url", "http://localhost:8080", "API server base URL")
	from    = flag.String("from", "", "Sender address (required)")
	to      = flag.String("to", "", "Recipient address (required)")
	count   = flag.Int("count", 5, "Number of transfers to queue")
	amount  = flag.String("amount", "1000000000000000", "Amount per transfer in wei")
	dappID  = flag.String("dapp", "default", "Analytics scope")
)

func main() {
	flag.Parse()

	if *from == "" || *to == "" {
		fmt.Println("ERROR: -from and -to are required")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 30 * time.Second}

	for i := 0; i < *count; i++ {
		body, _ := json.Marshal(map[string]any{
			"userAddress": *from,
			"toAddress":   *to,
			"amount":      *amount,
		})
		resp, err := client.Post(*baseURL+"/batch", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("ERROR: enqueue %d: %v\n", i+1, err)
			os.Exit(1)
		}
		out, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		fmt.Printf("[%d] %s %s\n", i+1, resp.Status, bytes.TrimSpace(out))
	}

	resp, err := client.Get(*baseURL + "/analytics?dappId=" + *dappID)
	if err != nil {
		fmt.Printf("ERROR: analytics: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("\nAnalytics (%s): %s\n", *dappID, bytes.TrimSpace(out))
}
