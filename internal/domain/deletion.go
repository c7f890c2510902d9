package domain

// DeletionOutcome enumerates the result of a delete attempt.
type DeletionOutcome string

const (
	DeletionDeleted    DeletionOutcome = "deleted"
	DeletionNotDeleted DeletionOutcome = "not_deleted"
)

// DeletionResult reports whether a delete succeeded. A blocked deletion
// (dependent rows, storage failure during the attempt) is a normal business
// outcome carried on the value channel, not an error.
type DeletionResult struct {
	Result  DeletionOutcome `json:"result"`
	Message string          `json:"message,omitempty"`
}

// Deleted returns a successful deletion result.
func Deleted() DeletionResult {
	return DeletionResult{Result: DeletionDeleted}
}

// NotDeleted returns a refused deletion result with a user-facing reason.
func NotDeleted(reason string) DeletionResult {
	return DeletionResult{Result: DeletionNotDeleted, Message: reason}
}
