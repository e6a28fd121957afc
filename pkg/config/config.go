package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the gas batcher configuration shared by the API server,
// the batcher worker and the migration runner.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Network    NetworkConfig    `mapstructure:"network"`
	Wallet     WalletConfig     `mapstructure:"wallet"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Shutdown   ShutdownConfig   `mapstructure:"shutdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// NetworkConfig contains the JSON-RPC endpoint of the network node.
type NetworkConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// WalletConfig holds the operator signing key used for batch execution.
// An empty private key means no wallet is connected.
type WalletConfig struct {
	ConnectProjectID string `mapstructure:"connect_project_id"`
	PrivateKey       string `mapstructure:"private_key"`
	GasLimit         uint64 `mapstructure:"gas_limit"`
	TokenGasLimit    uint64 `mapstructure:"token_gas_limit"`
}

// BatchConfig contains lifecycle and auto-processing settings
type BatchConfig struct {
	DefaultScope        string        `mapstructure:"default_scope"`
	MaxBatchSize        int           `mapstructure:"max_batch_size"`
	MinTransactionCount int           `mapstructure:"min_transaction_count"`
	AutoProcessInterval time.Duration `mapstructure:"auto_process_interval"`
	RunTimeout          time.Duration `mapstructure:"run_timeout"`
	DueScheduleLimit    int           `mapstructure:"due_schedule_limit"`
}

// AuthConfig guards the externally triggered auto-process endpoint.
type AuthConfig struct {
	CronSecret string `mapstructure:"cron_secret"`
	CronIssuer string `mapstructure:"cron_issuer"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MetricsPort int  `mapstructure:"metrics_port"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from file and environment variables.
// Environment variables use the upper-cased key with dots replaced by
// underscores, e.g. NETWORK_RPC_URL or WALLET_PRIVATE_KEY.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.request_timeout", "60s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.database", "gas_batcher")

	// Network defaults
	v.SetDefault("network.request_timeout", "15s")

	// Wallet defaults
	v.SetDefault("wallet.gas_limit", 21000)
	v.SetDefault("wallet.token_gas_limit", 100000)

	// Batch defaults
	v.SetDefault("batch.default_scope", "default")
	v.SetDefault("batch.max_batch_size", 50)
	v.SetDefault("batch.min_transaction_count", 5)
	v.SetDefault("batch.auto_process_interval", "1m")
	v.SetDefault("batch.run_timeout", "2m")
	v.SetDefault("batch.due_schedule_limit", 20)

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("monitoring.metrics_port", 9090)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")

	// Shutdown defaults
	v.SetDefault("shutdown.timeout", "30s")
}

func validate(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if config.Network.RPCURL == "" {
		return fmt.Errorf("network.rpc_url is required")
	}
	if config.Batch.MaxBatchSize <= 0 {
		return fmt.Errorf("batch.max_batch_size must be positive")
	}
	if config.Batch.MinTransactionCount <= 0 {
		return fmt.Errorf("batch.min_transaction_count must be positive")
	}
	if config.Batch.MinTransactionCount > config.Batch.MaxBatchSize {
		return fmt.Errorf("batch.min_transaction_count cannot exceed batch.max_batch_size")
	}
	if config.Batch.DefaultScope == "" {
		return fmt.Errorf("batch.default_scope is required")
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
