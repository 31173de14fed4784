package store

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/fhirfactory/hestia-task/internal/config"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

// connectTries is the number of attempts made to build the shared handle.
const connectTries = 2

// Dialer opens a connection to the backing store described by cfg.
type Dialer func(ctx context.Context, cfg config.Store) (*widecol.Connection, error)

// Dial opens the store with the driver named in cfg.
func Dial(ctx context.Context, cfg config.Store) (*widecol.Connection, error) {
	dialect, err := widecol.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	return widecol.Open(ctx, dialect, cfg.DSN())
}

type ConnectionOption func(*ConnectionManager)

// WithDialer replaces Dial.
func WithDialer(d Dialer) ConnectionOption {
	return func(m *ConnectionManager) {
		m.dial = d
	}
}

// ConnectionManager owns the process wide connection. The connection is
// built on first use and shared by every caller afterwards.
type ConnectionManager struct {
	cfg  config.Store
	dial Dialer
	mu   sync.Mutex
	conn *widecol.Connection
}

func NewConnectionManager(cfg config.Store, opts ...ConnectionOption) *ConnectionManager {
	m := &ConnectionManager{cfg: cfg, dial: Dial}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connection returns the shared connection, building it if needed. A build
// makes at most two attempts; an invalid configuration fails without a retry.
// Every failure is a ConnectionError.
func (m *ConnectionManager) Connection(ctx context.Context) (*widecol.Connection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return m.conn, nil
	}

	log := zap.S().Named("connection")

	conn, err := backoff.Retry(ctx, func() (*widecol.Connection, error) {
		if err := m.cfg.Validate(); err != nil {
			return nil, backoff.Permanent(err)
		}
		return m.dial(ctx, m.cfg)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(m.cfg.RetryDelay)),
		backoff.WithMaxTries(connectTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warnw("connection attempt failed, retrying", "address", m.cfg.Address(), "retry_in", next, "error", err)
		}),
	)
	if err != nil {
		log.Errorw("failed to connect to backing store", "address", m.cfg.Address(), "error", err)
		return nil, srvErrors.NewConnectionError(err)
	}

	log.Infow("connected to backing store", "driver", m.cfg.Driver, "address", m.cfg.Address())
	m.conn = conn
	return conn, nil
}

// Close releases the shared connection, if one was built.
func (m *ConnectionManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}
