package widecol

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/fhirfactory/hestia-task/pkg/widecol/migrations"
)

// Connection is a handle to the backing store. It is safe for concurrent use;
// callers obtain short-lived Table handles from it per operation.
type Connection struct {
	db      *sql.DB
	dialect Dialect
	// ddl serializes catalog writes issued through this handle. Embedded
	// engines reject concurrent catalog transactions instead of queueing them.
	ddl sync.Mutex
}

// Open opens a pool for dsn, verifies it is reachable and bootstraps the catalog.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Connection, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach %s: %w", dialect.Driver, err)
	}

	conn, err := NewConnection(ctx, db, dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return conn, nil
}

// NewConnection wraps an already opened pool.
func NewConnection(ctx context.Context, db *sql.DB, dialect Dialect) (*Connection, error) {
	if err := migrations.Run(ctx, db, dialect.Placeholder); err != nil {
		return nil, fmt.Errorf("failed to bootstrap catalog: %w", err)
	}
	zap.S().Named("widecol").Debugw("connection ready", "driver", dialect.Driver)
	return &Connection{db: db, dialect: dialect}, nil
}

func (c *Connection) Admin() *Admin {
	return &Admin{conn: c}
}

// Table acquires a handle on the named table. The handle pins one pooled
// connection until Close is called.
func (c *Connection) Table(ctx context.Context, name string) (*Table, error) {
	desc, err := c.Admin().DescribeTable(ctx, name)
	if err != nil {
		return nil, err
	}

	sqlConn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	families := make(map[string]struct{}, len(desc.Families))
	for _, f := range desc.Families {
		families[f] = struct{}{}
	}

	return &Table{
		name:     desc.Name,
		physical: physicalName(desc.Name),
		families: families,
		conn:     sqlConn,
		dialect:  c.dialect,
	}, nil
}

func (c *Connection) Close() error {
	return c.db.Close()
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateName(kind, name string) error {
	if !identifier.MatchString(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidName, kind, name)
	}
	return nil
}

// physicalName returns the quoted name of the cell table backing a logical table.
// The logical name must have passed validateName.
func physicalName(name string) string {
	return `"cells_` + name + `"`
}
