package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "HESTIA"

// legacyEnv maps configuration keys to the environment variables the
// deployment already provides.
var legacyEnv = map[string]string{
	"store.host": "ZOOKEEPER_CLUSTER_IP",
	"store.port": "ZOOKEEPER_CLUSTER_PORT",
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-format":        "log-format",
	"log-level":         "log-level",
	"server-mode":       "server.mode",
	"http-port":         "server.http-port",
	"context-path":      "server.context-path",
	"store-driver":      "store.driver",
	"store-host":        "store.host",
	"store-port":        "store.port",
	"store-database":    "store.database",
	"store-user":        "store.user",
	"store-password":    "store.password",
	"store-sslmode":     "store.sslmode",
	"store-path":        "store.path",
	"store-table":       "store.table",
	"store-retry-delay": "store.retry-delay",
	"import-workers":    "import.workers",
}

// New returns a configuration with every default applied.
func New() *Configuration {
	c := &Configuration{}
	defaults.MustSet(c)
	return c
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := New()
	fs.String("log-format", d.LogFormat, "log format: console or json")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.String("server-mode", d.Server.ServerMode, "server mode: dev or prod")
	fs.Int("http-port", d.Server.HTTPPort, "HTTP listen port")
	fs.String("context-path", d.Server.ContextPath, "base path of the HTTP API")
	fs.String("store-driver", d.Store.Driver, "backing store driver: postgres or duckdb")
	fs.String("store-host", d.Store.Host, "coordination service host")
	fs.Int("store-port", d.Store.Port, "coordination service port")
	fs.String("store-database", d.Store.Database, "database name")
	fs.String("store-user", d.Store.User, "database user")
	fs.String("store-password", d.Store.Password, "database password")
	fs.String("store-sslmode", d.Store.SSLMode, "postgres sslmode")
	fs.String("store-path", d.Store.Path, "duckdb file, empty for in-memory")
	fs.String("store-table", d.Store.Table, "table holding the tasks")
	fs.Duration("store-retry-delay", d.Store.RetryDelay, "delay before the single connection retry")
	fs.Int("import-workers", d.Import.NumWorkers, "number of concurrent import writers")
}

// BindFlags binds the flags registered by RegisterFlags to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// BindEnv makes every configuration key readable from HESTIA_* variables,
// plus the legacy coordination service variables.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for _, key := range flagKeys {
		names := []string{key}
		if legacy, ok := legacyEnv[key]; ok {
			names = append(names, legacy, envPrefix+"_"+strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(key)))
		}
		if err := v.BindEnv(names...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, then v.
func Load(v *viper.Viper) (*Configuration, error) {
	if err := BindEnv(v); err != nil {
		return nil, err
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}
