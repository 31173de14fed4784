package store

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

// Connector hands out the shared connection.
type Connector interface {
	Connection(ctx context.Context) (*widecol.Connection, error)
}

// TaskStore reads and writes rows of the task table.
type TaskStore struct {
	conns       Connector
	table       string
	group       singleflight.Group
	provisioned atomic.Bool
}

func NewTaskStore(conns Connector, table string) *TaskStore {
	return &TaskStore{conns: conns, table: table}
}

func (s *TaskStore) Table() string {
	return s.table
}

// CreateTableIfAbsent creates the task table with the INFO and DATA families
// unless it already exists. Losing a creation race is not an error.
// Concurrent callers share one creation, which outlives the cancellation of
// any single caller; a canceled caller stops waiting with ctx.Err().
func (s *TaskStore) CreateTableIfAbsent(ctx context.Context) error {
	if s.provisioned.Load() {
		return nil
	}

	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(s.table, func() (any, error) {
		conn, err := s.conns.Connection(shared)
		if err != nil {
			return nil, err
		}

		admin := conn.Admin()
		exists, err := admin.TableExists(shared, s.table)
		if err != nil {
			return nil, srvErrors.NewInfrastructureError("check table", err)
		}
		if !exists {
			err = admin.CreateTable(shared, widecol.TableDescriptor{Name: s.table, Families: Families})
			switch {
			case errors.Is(err, widecol.ErrTableExists):
				zap.S().Named("task_store").Debugw("table created concurrently", "table", s.table)
			case err != nil:
				return nil, srvErrors.NewInfrastructureError("create table", err)
			default:
				zap.S().Named("task_store").Infow("table created", "table", s.table, "families", Families)
			}
		}

		s.provisioned.Store(true)
		return nil, nil
	})

	select {
	case r := <-ch:
		return r.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Put upserts the columns of one row, creating the table on first use.
func (s *TaskStore) Put(ctx context.Context, put *widecol.Put) error {
	if err := s.CreateTableIfAbsent(ctx); err != nil {
		return err
	}
	return s.withTable(ctx, func(t *widecol.Table) error {
		return writeError("put", t.Put(ctx, put))
	})
}

// PutAll upserts several rows. Each row succeeds or fails on its own.
func (s *TaskStore) PutAll(ctx context.Context, puts []*widecol.Put) error {
	if len(puts) == 0 {
		return nil
	}
	if err := s.CreateTableIfAbsent(ctx); err != nil {
		return err
	}
	return s.withTable(ctx, func(t *widecol.Table) error {
		return writeError("put all", t.PutAll(ctx, puts))
	})
}

// Get returns the row stored under key, or a ResourceNotFoundError when the
// row has no columns.
func (s *TaskStore) Get(ctx context.Context, key string) (*widecol.Result, error) {
	var result *widecol.Result
	err := s.withTable(ctx, func(t *widecol.Table) error {
		r, err := t.Get(ctx, key)
		if err != nil {
			return srvErrors.NewInfrastructureError("get", err)
		}
		result = r
		return nil
	})
	if errors.Is(err, widecol.ErrTableNotFound) || (err == nil && result.IsEmpty()) {
		return nil, srvErrors.NewResourceNotFoundError("Task", key)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Scan returns the rows selected by scan. A table that was never written
// holds no rows.
func (s *TaskStore) Scan(ctx context.Context, scan *widecol.Scan) ([]*widecol.Result, error) {
	var results []*widecol.Result
	err := s.withTable(ctx, func(t *widecol.Table) error {
		r, err := t.Scan(ctx, scan)
		if err != nil {
			return srvErrors.NewInfrastructureError("scan", err)
		}
		results = r
		return nil
	})
	if errors.Is(err, widecol.ErrTableNotFound) {
		return nil, nil
	}
	return results, err
}

// Delete always fails: rows of the task table are never removed.
func (s *TaskStore) Delete(_ context.Context, key string) error {
	zap.S().Named("task_store").Warnw("delete rejected", "key", key)
	return srvErrors.NewUnsupportedOperationError("delete")
}

// withTable runs fn with a table handle that is released when fn returns.
func (s *TaskStore) withTable(ctx context.Context, fn func(*widecol.Table) error) error {
	conn, err := s.conns.Connection(ctx)
	if err != nil {
		return err
	}

	t, err := conn.Table(ctx, s.table)
	if err != nil {
		if errors.Is(err, widecol.ErrTableNotFound) {
			return err
		}
		return srvErrors.NewInfrastructureError("open table", err)
	}
	defer func() {
		if cerr := t.Close(); cerr != nil {
			zap.S().Named("task_store").Warnw("failed to release table", "table", s.table, "error", cerr)
		}
	}()

	return fn(t)
}

func writeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, widecol.ErrNoSuchFamily), errors.Is(err, widecol.ErrEmptyPut):
		return srvErrors.NewMalformedInputError("invalid row", err)
	default:
		return srvErrors.NewInfrastructureError(op, err)
	}
}
