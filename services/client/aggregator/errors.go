package aggregator

import "fmt"

// LimitExceededError signals that the aggregation gave up after issuing the
// maximum allowed number of page requests without reaching the end of data
type LimitExceededError struct {
	Requests uint32
}

// Error returns the string representation of the error
func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("aggregation limit exceeded after %d page requests", e.Requests)
}
