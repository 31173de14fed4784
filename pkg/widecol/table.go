package widecol

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Scan describes a filtered range read over a table.
type Scan struct {
	filter   Filter
	limit    uint64
	reversed bool
}

func NewScan() *Scan {
	return &Scan{}
}

func (s *Scan) SetFilter(f Filter) *Scan {
	s.filter = f
	return s
}

// SetLimit caps the number of rows returned. Zero means no cap.
func (s *Scan) SetLimit(n uint64) *Scan {
	s.limit = n
	return s
}

// SetReversed orders rows by descending key.
func (s *Scan) SetReversed(reversed bool) *Scan {
	s.reversed = reversed
	return s
}

// Table is a per-operation handle on one table. It is not safe for
// concurrent use and must be closed.
type Table struct {
	name     string
	physical string
	families map[string]struct{}
	conn     *sql.Conn
	dialect  Dialect
}

func (t *Table) Name() string {
	return t.name
}

// Put upserts the cells of one row. Columns not in p are left untouched.
func (t *Table) Put(ctx context.Context, p *Put) error {
	if p.Len() == 0 {
		return fmt.Errorf("%w: row %q", ErrEmptyPut, p.Row())
	}
	for _, c := range p.cells {
		if _, ok := t.families[c.Family]; !ok {
			return fmt.Errorf("%w: %s in table %s", ErrNoSuchFamily, c.Family, t.name)
		}
	}

	query, args, err := t.putQuery(p)
	if err != nil {
		return err
	}
	_, err = t.conn.ExecContext(ctx, query, args...)
	return err
}

// DuckDB reads a bare CURRENT_TIMESTAMP in DO UPDATE SET as a column name.
const upsertCellSuffix = `ON CONFLICT (row_key, family, qualifier) DO UPDATE SET
	value = EXCLUDED.value,
	updated_at = now()`

func (t *Table) putQuery(p *Put) (string, []any, error) {
	ins := t.dialect.builder().
		Insert(t.physical).
		Columns("row_key", "family", "qualifier", "value")
	for _, c := range p.cells {
		ins = ins.Values(p.Row(), c.Family, c.Qualifier, string(c.Value))
	}
	return ins.Suffix(upsertCellSuffix).ToSql()
}

// PutAll applies each put independently. Rows are not written atomically
// as a group; the returned error joins the failures of individual rows.
func (t *Table) PutAll(ctx context.Context, puts []*Put) error {
	var errs []error
	for _, p := range puts {
		if err := t.Put(ctx, p); err != nil {
			errs = append(errs, fmt.Errorf("row %q: %w", p.Row(), err))
		}
	}
	return errors.Join(errs...)
}

// Get reads every cell of row. A row that does not exist yields an empty Result.
func (t *Table) Get(ctx context.Context, row string) (*Result, error) {
	query, args, err := t.dialect.builder().
		Select("family", "qualifier", "value").
		From(t.physical).
		Where(sq.Eq{"row_key": row}).
		OrderBy("family", "qualifier").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := t.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &Result{row: row}
	for rows.Next() {
		var (
			c     Cell
			value string
		)
		if err := rows.Scan(&c.Family, &c.Qualifier, &value); err != nil {
			return nil, err
		}
		c.Value = []byte(value)
		result.cells = append(result.cells, c)
	}
	return result, rows.Err()
}

// Scan returns the rows matching s in key order. Each row carries all of its cells.
func (t *Table) Scan(ctx context.Context, s *Scan) ([]*Result, error) {
	query, args, err := t.scanQuery(s)
	if err != nil {
		return nil, err
	}

	rows, err := t.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		results []*Result
		current *Result
	)
	for rows.Next() {
		var (
			row   string
			c     Cell
			value string
		)
		if err := rows.Scan(&row, &c.Family, &c.Qualifier, &value); err != nil {
			return nil, err
		}
		c.Value = []byte(value)
		if current == nil || current.row != row {
			current = &Result{row: row}
			results = append(results, current)
		}
		current.cells = append(current.cells, c)
	}
	return results, rows.Err()
}

// scanQuery selects every cell of the rows whose keys pass the filter. The
// limit applies to distinct keys, not cells.
func (t *Table) scanQuery(s *Scan) (string, []any, error) {
	direction := "ASC"
	if s.reversed {
		direction = "DESC"
	}

	keys := sq.Select("row_key").Distinct().From(t.physical)
	if s.filter != nil {
		if pred := s.filter.where(t); pred != nil {
			keys = keys.Where(pred)
		}
	}
	keys = keys.OrderBy("row_key " + direction)
	if s.limit > 0 {
		keys = keys.Limit(s.limit)
	}

	return t.dialect.builder().
		Select("row_key", "family", "qualifier", "value").
		From(t.physical).
		Where(sq.Expr("row_key IN (?)", keys)).
		OrderBy("row_key "+direction, "family", "qualifier").
		ToSql()
}

// Close releases the pinned connection back to the pool.
func (t *Table) Close() error {
	return t.conn.Close()
}
