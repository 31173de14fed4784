// Package widecol implements a small wide-column table client on top of a
// SQL engine reachable through database/sql.
//
// A logical table owns a fixed set of column families. Each row is a key
// plus any number of family:qualifier→value cells; a row exists as soon as
// it has one cell. Writes are cell-level upserts, so a Put never removes
// cells it does not mention.
//
// # Physical Layout
//
//	┌──────────────────────┬───────────────────────────────────────────────┐
//	│  Table               │  Purpose                                      │
//	├──────────────────────┼───────────────────────────────────────────────┤
//	│  schema_migrations   │  Catalog migration version tracking           │
//	│  wc_tables           │  One row per logical table                    │
//	│  wc_column_families  │  (table_name, family) pairs                   │
//	│  cells_<TABLE>       │  (row_key, family, qualifier, value) per cell │
//	└──────────────────────┴───────────────────────────────────────────────┘
//
// # Handles
//
//	conn, err := widecol.Open(ctx, widecol.DuckDB, "")
//	admin := conn.Admin()
//	err = admin.CreateTable(ctx, widecol.TableDescriptor{Name: "TASK", Families: []string{"INFO", "DATA"}})
//
//	table, err := conn.Table(ctx, "TASK")
//	defer table.Close()
//
// A Connection is shared and safe for concurrent use. A Table pins one pooled
// connection and is meant to live for a single operation.
//
// # Filters
//
// Scans take a Filter. DependentColumnFilter keeps rows whose cell at
// family:qualifier satisfies a Comparator; FilterList combines filters with
// MustPassAll (AND) or MustPassOne (OR):
//
//	filters := widecol.NewFilterList(widecol.MustPassAll,
//	    widecol.DependentColumnFilter("INFO", "STATUS", widecol.RegexStringComparator("^completed$")),
//	    widecol.DependentColumnFilter("INFO", "LOC", widecol.RegexStringComparator(`^Location/42$`)),
//	)
//	rows, err := table.Scan(ctx, widecol.NewScan().SetFilter(filters).SetLimit(10).SetReversed(true))
//
// Filters compile to row_key IN (...) sub-selects; the limit applies to rows,
// not cells.
//
// # Dialects
//
//	┌──────────┬─────────────┬────────────────────────────┐
//	│ Dialect  │ Placeholder │ Regex predicate            │
//	├──────────┼─────────────┼────────────────────────────┤
//	│ DuckDB   │ ?           │ regexp_matches(value, ?)   │
//	│ Postgres │ $n          │ value ~ $n                 │
//	└──────────┴─────────────┴────────────────────────────┘
package widecol
