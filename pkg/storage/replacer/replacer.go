// Package replacer implements the eviction policy over a buffer pool
// instance's frame ids. It knows nothing about pages, pin counts, or
// disk I/O — only which frame ids are currently eligible for eviction,
// and in what order to give them up.
package replacer

// Replacer is the abstract contract over frame ids in [0, capacity).
// All methods are safe for concurrent use.
type Replacer interface {
	// Victim removes and returns the eviction-preferred frame id from
	// the eligible set. ok is false if the set is empty.
	Victim() (frameID int, ok bool)
	// Pin removes frameID from the eligible set if present. No-op
	// otherwise; idempotent.
	Pin(frameID int)
	// Unpin inserts frameID into the eligible set if not already
	// present. No-op if already present; idempotent.
	Unpin(frameID int)
	// Size reports the current eligible-set cardinality.
	Size() int
}
