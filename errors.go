package rangesum

// Error is an error type for the rangesum module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrCompleted signals that a builder has already materialized an index and
// it's illegal to further add values.
const ErrCompleted = Error("forbidden to add values; index has been completed")

// ErrCapacityExceeded is flagged when an input sequence does not fit into
// the inline storage of a fixed table.
const ErrCapacityExceeded = Error("input exceeds fixed storage capacity")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")
