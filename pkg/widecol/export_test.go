package widecol

// NewStatementTable returns a table handle without a connection, for
// inspecting generated statements.
func NewStatementTable(d Dialect, name string) *Table {
	return &Table{name: name, physical: physicalName(name), dialect: d}
}

func (t *Table) PutQuery(p *Put) (string, []any, error) {
	return t.putQuery(p)
}

func (t *Table) ScanQuery(s *Scan) (string, []any, error) {
	return t.scanQuery(s)
}
