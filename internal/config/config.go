package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

type Configuration struct {
	Server    Server `mapstructure:"server"`
	Store     Store  `mapstructure:"store"`
	Import    Import `mapstructure:"import"`
	LogFormat string `mapstructure:"log-format" default:"console"`
	LogLevel  string `mapstructure:"log-level" default:"info"`
}

type Server struct {
	ServerMode  string `mapstructure:"mode" default:"dev"`
	HTTPPort    int    `mapstructure:"http-port" default:"8000"`
	ContextPath string `mapstructure:"context-path" default:"/api/v1"`
}

// Store locates the backing store. Host and Port are the coordination
// service endpoint; they are mandatory for the network driver, which is the
// default. The embedded engine is used only when selected explicitly.
type Store struct {
	Driver     string        `mapstructure:"driver" default:"postgres"`
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	Database   string        `mapstructure:"database" default:"hestia"`
	User       string        `mapstructure:"user" default:"hestia"`
	Password   string        `mapstructure:"password"`
	SSLMode    string        `mapstructure:"sslmode" default:"disable"`
	Path       string        `mapstructure:"path"`
	Table      string        `mapstructure:"table" default:"TASK"`
	RetryDelay time.Duration `mapstructure:"retry-delay" default:"1s"`
}

type Import struct {
	NumWorkers int `mapstructure:"workers" default:"4"`
}

func (s Store) Validate() error {
	switch s.Driver {
	case DriverDuckDB:
		return nil
	case DriverPostgres:
		var errs []error
		if s.Host == "" {
			errs = append(errs, errors.New("store host is not set (ZOOKEEPER_CLUSTER_IP)"))
		}
		if s.Port <= 0 {
			errs = append(errs, errors.New("store port is not set (ZOOKEEPER_CLUSTER_PORT)"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("unknown store driver %q", s.Driver)
	}
}

// DSN returns the data source name for the configured driver.
func (s Store) DSN() string {
	if s.Driver == DriverDuckDB {
		return s.Path
	}
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		s.Host, s.Port, s.Database, s.User, s.Password, s.SSLMode)
}

// Address is the endpoint used in log lines.
func (s Store) Address() string {
	if s.Driver == DriverDuckDB {
		if s.Path == "" {
			return "duckdb::memory:"
		}
		return "duckdb:" + s.Path
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DebugMap returns the configuration as a map safe to log.
func (c Configuration) DebugMap() map[string]any {
	password := ""
	if c.Store.Password != "" {
		password = "(sensitive)"
	}
	return map[string]any{
		"server": map[string]any{
			"mode":         c.Server.ServerMode,
			"http-port":    c.Server.HTTPPort,
			"context-path": c.Server.ContextPath,
		},
		"store": map[string]any{
			"driver":      c.Store.Driver,
			"host":        c.Store.Host,
			"port":        c.Store.Port,
			"database":    c.Store.Database,
			"user":        c.Store.User,
			"password":    password,
			"sslmode":     c.Store.SSLMode,
			"path":        c.Store.Path,
			"table":       c.Store.Table,
			"retry-delay": c.Store.RetryDelay.String(),
		},
		"import": map[string]any{
			"workers": c.Import.NumWorkers,
		},
		"log-format": c.LogFormat,
		"log-level":  c.LogLevel,
	}
}
