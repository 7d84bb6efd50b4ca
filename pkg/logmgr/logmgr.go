// Package logmgr stands in for the log manager collaborator described
// in spec.md §6: before the buffer pool writes a dirty page back to
// disk, the WAL must already be durable up to that page's log sequence
// number. Tracking per-frame LSNs is explicitly out of scope at this
// layer (§6), so this package only represents the *obligation* — every
// write-back path in pkg/buffer calls FlushTo before WritePage.
package logmgr

// LogManager is the log manager contract a buffer pool instance
// consults before writing a page back to disk.
type LogManager interface {
	// FlushTo must return once the WAL is durable through lsn. Callers
	// that don't track per-page LSNs pass 0.
	FlushTo(lsn uint64) error
}

// Noop satisfies LogManager for buffer pools run without WAL coverage
// (e.g. tests, or an embedding application that handles durability
// itself). FlushTo always succeeds immediately.
type Noop struct{}

// FlushTo is a no-op.
func (Noop) FlushTo(uint64) error { return nil }

var _ LogManager = Noop{}

// Recorder is a test double that records every FlushTo call, so tests
// can assert the buffer pool actually consults the log manager before
// writing a dirty page back.
type Recorder struct {
	Calls []uint64
}

// FlushTo records lsn and succeeds.
func (r *Recorder) FlushTo(lsn uint64) error {
	r.Calls = append(r.Calls, lsn)
	return nil
}

var _ LogManager = &Recorder{}
