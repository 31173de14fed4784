package widecol

import (
	sq "github.com/Masterminds/squirrel"
)

// Filter restricts the rows returned by a Scan.
type Filter interface {
	// where returns the predicate on row_key for table t, or nil for no restriction.
	where(t *Table) sq.Sqlizer
}

// Comparator decides whether a cell value matches.
type Comparator interface {
	predicate(d Dialect, column string) sq.Sqlizer
}

type regexComparator struct {
	pattern string
}

// RegexStringComparator matches values containing a match of pattern.
// Anchor the pattern to compare whole values.
func RegexStringComparator(pattern string) Comparator {
	return regexComparator{pattern: pattern}
}

func (c regexComparator) predicate(d Dialect, column string) sq.Sqlizer {
	return sq.Expr(d.regexp(column), c.pattern)
}

type binaryComparator struct {
	value []byte
}

// BinaryComparator matches values byte-equal to value.
func BinaryComparator(value []byte) Comparator {
	return binaryComparator{value: value}
}

func (c binaryComparator) predicate(_ Dialect, column string) sq.Sqlizer {
	return sq.Eq{column: string(c.value)}
}

type dependentColumnFilter struct {
	family     string
	qualifier  string
	comparator Comparator
}

// DependentColumnFilter keeps rows whose family:qualifier cell exists and
// satisfies the comparator. Rows without the cell never match.
func DependentColumnFilter(family, qualifier string, comparator Comparator) Filter {
	return dependentColumnFilter{family: family, qualifier: qualifier, comparator: comparator}
}

func (f dependentColumnFilter) where(t *Table) sq.Sqlizer {
	return sq.Expr("row_key IN (?)", sq.Select("row_key").
		From(t.physical).
		Where(sq.Eq{"family": f.family, "qualifier": f.qualifier}).
		Where(f.comparator.predicate(t.dialect, "value")))
}

type Operator int

const (
	// MustPassAll - a row qualifies only if every filter matches (AND)
	MustPassAll Operator = iota
	// MustPassOne - a row qualifies if any filter matches (OR)
	MustPassOne
)

// FilterList combines filters with a single operator. Lists may be nested.
type FilterList struct {
	op      Operator
	filters []Filter
}

func NewFilterList(op Operator, filters ...Filter) *FilterList {
	return &FilterList{op: op, filters: filters}
}

func (l *FilterList) AddFilter(f Filter) {
	l.filters = append(l.filters, f)
}

func (l *FilterList) Len() int {
	return len(l.filters)
}

func (l *FilterList) where(t *Table) sq.Sqlizer {
	parts := make([]sq.Sqlizer, 0, len(l.filters))
	for _, f := range l.filters {
		if p := f.where(t); p != nil {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	if l.op == MustPassOne {
		return sq.Or(parts)
	}
	return sq.And(parts)
}
