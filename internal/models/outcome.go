package models

// StoreOutcome is the result of a write.
type StoreOutcome string

const (
	// StoreOutcomeGood - the task was stored
	StoreOutcomeGood StoreOutcome = "good"
	// StoreOutcomeBad - the input was rejected, retrying will not help
	StoreOutcomeBad StoreOutcome = "bad"
	// StoreOutcomeFailed - the infrastructure failed, the caller may retry
	StoreOutcomeFailed StoreOutcome = "failed"
)

func (o StoreOutcome) Value() string {
	return string(o)
}
