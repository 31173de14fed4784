package widecol

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect captures the few places where the SQL engines differ.
type Dialect struct {
	// Driver is the database/sql driver name.
	Driver      string
	Placeholder sq.PlaceholderFormat
	// regexpMatch is a format with one %s for the column; the pattern is bound as an argument.
	regexpMatch string
}

var (
	DuckDB = Dialect{
		Driver:      "duckdb",
		Placeholder: sq.Question,
		regexpMatch: "regexp_matches(%s, ?)",
	}

	Postgres = Dialect{
		Driver:      "postgres",
		Placeholder: sq.Dollar,
		regexpMatch: "%s ~ ?",
	}
)

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DuckDB.Driver:
		return DuckDB, nil
	case Postgres.Driver:
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported driver %q", driver)
	}
}

func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder)
}

func (d Dialect) regexp(column string) string {
	return fmt.Sprintf(d.regexpMatch, column)
}
