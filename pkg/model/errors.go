package model

import "fmt"

// Resource identifies which collection an index accessor was aimed at.
type Resource string

// Resources addressable by index.
const (
	ResourceRoom   Resource = "room"
	ResourceDevice Resource = "device"
)

// AccessError reports an index outside a collection's current bounds.
// It is the only error kind produced by the model: construction, append,
// device mutation, and report generation are total operations.
type AccessError struct {
	// Resource is the collection that was indexed.
	Resource Resource

	// Index is the requested index.
	Index int

	// Len is the collection length at the time of the access.
	Len int
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Resource, e.Index, e.Len)
}

// checkIndex validates i against a collection of length n.
// Returns nil when 0 <= i < n.
func checkIndex(resource Resource, i, n int) error {
	if i < 0 || i >= n {
		return &AccessError{Resource: resource, Index: i, Len: n}
	}
	return nil
}
