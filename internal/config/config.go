package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment,
// an optional config file, and flags.
type Config struct {
	Env               string        `mapstructure:"env"`
	RunAddress        string        `mapstructure:"run_address"`
	DatabaseURI       string        `mapstructure:"database_uri"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	ReconcileInterval time.Duration `mapstructure:"reconcile_interval"`
	MetricsEnabled    bool          `mapstructure:"metrics_enabled"`
	WorkerID          int64         `mapstructure:"worker_id"`
}

const (
	defaultEnv               = "production"
	defaultRunAddress        = ":8080"
	defaultShutdownTimeout   = 10 * time.Second
	defaultReconcileInterval = time.Minute
	defaultWorkerID          = 1
)

// Load parses configuration from flags, environment and optional config file.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("env", defaultEnv)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("database_uri", "")
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("reconcile_interval", defaultReconcileInterval)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("worker_id", defaultWorkerID)

	v.SetEnvPrefix("SLOTDESK")
	v.AutomaticEnv()

	if path, ok := os.LookupEnv("SLOTDESK_CONFIG"); ok && path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	fs := flag.NewFlagSet("slotdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	fs.DurationVar(&cfg.ReconcileInterval, "reconcile-interval", cfg.ReconcileInterval, "Interval between slot ledger audits")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Expose prometheus metrics endpoint")
	fs.Int64Var(&cfg.WorkerID, "worker-id", cfg.WorkerID, "Worker id used in order number generation")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.ReconcileInterval <= 0 {
		cfg.ReconcileInterval = defaultReconcileInterval
	}
	if cfg.WorkerID < 0 {
		cfg.WorkerID = defaultWorkerID
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return &cfg, nil
}
