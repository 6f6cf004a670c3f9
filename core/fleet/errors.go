package fleet

import "errors"

var (
	// ErrNotFound reports an operation referencing an id absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition reports an attempt to move a service order
	// backward or to skip a lifecycle state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrOrderClosed reports a mutation against an order already in Cerrada.
	ErrOrderClosed = errors.New("service order already closed")
)
