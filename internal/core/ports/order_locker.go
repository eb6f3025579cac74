package ports

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// OrderLocker serializes status transitions per order: at most one
// transition request for the same order may be in flight at a time.
// Group delivery acquires all its locks through LockAll so that the
// all-or-nothing guard cannot race per-order transitions.
type OrderLocker interface {
	// Lock blocks until the per-order lock is acquired and returns
	// the function releasing it.
	Lock(orderID kernel.UUID) (unlock func())

	// LockAll acquires the locks for every given order and returns a
	// single function releasing all of them. Acquisition follows a
	// stable global ordering of the IDs so overlapping groups cannot
	// deadlock each other.
	LockAll(orderIDs []kernel.UUID) (unlock func())
}
