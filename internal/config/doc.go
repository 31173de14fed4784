// Package config defines the configuration structure for hestia-task.
//
// Configuration is organized into logical sections (Server, Store, Import)
// plus logging settings. Defaults come from `default` struct tags applied by
// creasty/defaults; values are then overlaid by viper from flags and the
// environment.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP front end settings
//	├── Store          - Backing store location
//	├── Import         - Bulk import settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Store Configuration
//
//	┌────────────┬──────────┬──────────────────────────────┬─────────────────────────────────────┐
//	│ Field      │ Default  │ Environment                  │ Description                         │
//	├────────────┼──────────┼──────────────────────────────┼─────────────────────────────────────┤
//	│ Driver     │"postgres"│ HESTIA_STORE_DRIVER          │ "postgres" or "duckdb" (embedded)   │
//	│ Host       │ ""       │ ZOOKEEPER_CLUSTER_IP         │ Coordination service host           │
//	│ Port       │ 0        │ ZOOKEEPER_CLUSTER_PORT       │ Coordination service port           │
//	│ Database   │ "hestia" │ HESTIA_STORE_DATABASE        │ Database name (postgres)            │
//	│ User       │ "hestia" │ HESTIA_STORE_USER            │ Database user (postgres)            │
//	│ Password   │ ""       │ HESTIA_STORE_PASSWORD        │ Database password (postgres)        │
//	│ SSLMode    │ "disable"│ HESTIA_STORE_SSLMODE         │ sslmode (postgres)                  │
//	│ Path       │ ""       │ HESTIA_STORE_PATH            │ DuckDB file, empty for in-memory    │
//	│ Table      │ "TASK"   │ HESTIA_STORE_TABLE           │ Table holding the tasks             │
//	│ RetryDelay │ 1s       │ HESTIA_STORE_RETRY_DELAY     │ Delay before the connection retry   │
//	└────────────┴──────────┴──────────────────────────────┴─────────────────────────────────────┘
//
// Host and Port are mandatory for the postgres driver, so the default
// configuration fails on the first connection attempt until the coordination
// service is configured. Store.Validate reports them missing; the connection
// manager turns that into a fatal ConnectionError. The embedded DuckDB engine
// must be selected with --store-driver duckdb.
//
// # Server Configuration
//
//	┌─────────────┬───────────┬────────────────────────────────────────┐
//	│ Field       │ Default   │ Description                            │
//	├─────────────┼───────────┼────────────────────────────────────────┤
//	│ ServerMode  │ "dev"     │ Server mode: "prod" or "dev"           │
//	│ HTTPPort    │ 8000      │ HTTP server listen port                │
//	│ ContextPath │ "/api/v1" │ Prefix of the /Task routes             │
//	└─────────────┴───────────┴────────────────────────────────────────┘
//
// # Debug Logging
//
// DebugMap returns a map suitable for structured logging with the password masked:
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
