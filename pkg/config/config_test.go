package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
network:
  rpc_url: https://node.example:8080
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Network.RequestTimeout != 15*time.Second {
		t.Fatalf("expected request timeout 15s, got %s", cfg.Network.RequestTimeout)
	}
	if cfg.Batch.DefaultScope != "default" {
		t.Fatalf("expected default scope %q, got %q", "default", cfg.Batch.DefaultScope)
	}
	if cfg.Batch.MaxBatchSize != 50 || cfg.Batch.MinTransactionCount != 5 {
		t.Fatalf("unexpected batch defaults: %+v", cfg.Batch)
	}
	if cfg.Wallet.GasLimit != 21000 {
		t.Fatalf("expected wallet gas limit 21000, got %d", cfg.Wallet.GasLimit)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
network:
  rpc_url: https://node.example:8080
`)
	t.Setenv("NETWORK_RPC_URL", "https://override.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Network.RPCURL != "https://override.example" {
		t.Fatalf("expected env override, got %q", cfg.Network.RPCURL)
	}
}

func TestLoad_MissingRPCURL(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing network.rpc_url")
	}
}

func TestLoad_MinCountAboveMaxBatch(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
network:
  rpc_url: https://node.example
batch:
  max_batch_size: 3
  min_transaction_count: 4
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error when min_transaction_count exceeds max_batch_size")
	}
}
