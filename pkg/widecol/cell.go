package widecol

// Cell is one family:qualifier→value entry of a row.
type Cell struct {
	Family    string
	Qualifier string
	Value     []byte
}

// Put collects the cells of a single-row upsert. Adding the same column
// twice keeps the last value.
type Put struct {
	row   string
	cells []Cell
	index map[string]int
}

func NewPut(row string) *Put {
	return &Put{row: row, index: make(map[string]int)}
}

func (p *Put) AddColumn(family, qualifier string, value []byte) *Put {
	key := family + ":" + qualifier
	if i, ok := p.index[key]; ok {
		p.cells[i].Value = value
		return p
	}
	p.index[key] = len(p.cells)
	p.cells = append(p.cells, Cell{Family: family, Qualifier: qualifier, Value: value})
	return p
}

func (p *Put) Row() string {
	return p.row
}

func (p *Put) Len() int {
	return len(p.cells)
}

func (p *Put) Cells() []Cell {
	return append([]Cell(nil), p.cells...)
}

func (p *Put) Value(family, qualifier string) ([]byte, bool) {
	i, ok := p.index[family+":"+qualifier]
	if !ok {
		return nil, false
	}
	return p.cells[i].Value, true
}

// Result holds the cells read for one row, ordered by family then qualifier.
type Result struct {
	row   string
	cells []Cell
}

func (r *Result) Row() string {
	return r.row
}

func (r *Result) IsEmpty() bool {
	return len(r.cells) == 0
}

func (r *Result) Size() int {
	return len(r.cells)
}

func (r *Result) Cells() []Cell {
	return append([]Cell(nil), r.cells...)
}

func (r *Result) Value(family, qualifier string) ([]byte, bool) {
	for _, c := range r.cells {
		if c.Family == family && c.Qualifier == qualifier {
			return c.Value, true
		}
	}
	return nil, false
}
