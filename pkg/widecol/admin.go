package widecol

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// TableDescriptor names a table and its column families.
type TableDescriptor struct {
	Name     string
	Families []string
}

// Admin performs catalog operations.
type Admin struct {
	conn *Connection
}

func (a *Admin) TableExists(ctx context.Context, name string) (bool, error) {
	query, args, err := a.conn.dialect.builder().
		Select("COUNT(*)").
		From("wc_tables").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := a.conn.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (a *Admin) DescribeTable(ctx context.Context, name string) (*TableDescriptor, error) {
	if err := validateName("table", name); err != nil {
		return nil, err
	}

	query, args, err := a.conn.dialect.builder().
		Select("family").
		From("wc_column_families").
		Where(sq.Eq{"table_name": name}).
		OrderBy("family").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	desc := &TableDescriptor{Name: name}
	for rows.Next() {
		var family string
		if err := rows.Scan(&family); err != nil {
			return nil, err
		}
		desc.Families = append(desc.Families, family)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(desc.Families) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return desc, nil
}

// CreateTable registers the table and its families and creates its cell
// storage in one transaction. It returns ErrTableExists when the table is
// already registered, including when another creator won a race.
func (a *Admin) CreateTable(ctx context.Context, desc TableDescriptor) error {
	if err := validateName("table", desc.Name); err != nil {
		return err
	}
	if len(desc.Families) == 0 {
		return fmt.Errorf("table %s: at least one column family is required", desc.Name)
	}
	families := make([]string, 0, len(desc.Families))
	seen := make(map[string]bool, len(desc.Families))
	for _, f := range desc.Families {
		if err := validateName("family", f); err != nil {
			return err
		}
		if !seen[f] {
			seen[f] = true
			families = append(families, f)
		}
	}

	a.conn.ddl.Lock()
	defer a.conn.ddl.Unlock()

	err := a.createTable(ctx, desc.Name, families)
	if err == nil {
		return nil
	}

	// The insert into wc_tables is the only statement that can collide with
	// a concurrent creator, so the outcome is decided by the catalog.
	if exists, existsErr := a.TableExists(ctx, desc.Name); existsErr == nil && exists {
		return fmt.Errorf("%w: %s", ErrTableExists, desc.Name)
	}
	return fmt.Errorf("failed to create table %s: %w", desc.Name, err)
}

func (a *Admin) createTable(ctx context.Context, name string, families []string) error {
	b := a.conn.dialect.builder()

	tx, err := a.conn.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := b.Insert("wc_tables").Columns("name").Values(name).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	ins := b.Insert("wc_column_families").Columns("table_name", "family")
	for _, f := range families {
		ins = ins.Values(name, f)
	}
	query, args, err = ins.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(createCellTable, physicalName(name))); err != nil {
		return err
	}

	return tx.Commit()
}

const createCellTable = `
	CREATE TABLE IF NOT EXISTS %s (
		row_key VARCHAR NOT NULL,
		family VARCHAR NOT NULL,
		qualifier VARCHAR NOT NULL,
		value VARCHAR NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (row_key, family, qualifier)
	)`
