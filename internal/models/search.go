package models

// Direction orders search results by row key.
type Direction string

const (
	DirectionUnspecified Direction = ""
	DirectionAscending   Direction = "asc"
	DirectionDescending  Direction = "desc"
)

// TaskSearchParams are the optional attributes of a task search. Blank
// fields are ignored. Limit is kept as text as received from the caller.
type TaskSearchParams struct {
	Status    string
	Location  string
	Code      string
	PartOf    string
	BasedOn   string
	Owner     string
	Focus     string
	Limit     string
	Direction Direction
}
