// Package buffer implements the buffer pool subsystem: a bounded,
// pin-counted, LRU-backed cache of disk pages, as a single instance or
// as a set of instances sharded by page id.
package buffer

import "bufpool/pkg/storage/page"

// Pool is the public surface spec.md §6 gives to both the single
// instance and the parallel (sharded) pool — callers that only need
// "a buffer pool" can depend on this instead of a concrete type.
type Pool interface {
	// FetchPage returns the frame holding pageID, pinning it. Reads
	// through to disk on a miss, evicting a victim frame if necessary.
	FetchPage(pageID page.PageID) (*page.Frame, error)
	// NewPage allocates a fresh page id, binds it to a frame (pinned,
	// zeroed), and returns both.
	NewPage() (*page.Frame, page.PageID, error)
	// UnpinPage releases one reference to pageID. isDirty, if true,
	// marks the frame dirty; it never clears the dirty bit.
	UnpinPage(pageID page.PageID, isDirty bool) error
	// FlushPage writes pageID's frame to disk unconditionally and
	// clears its dirty bit, without altering pin count or residency.
	FlushPage(pageID page.PageID) error
	// FlushAllPages writes every resident page to disk.
	FlushAllPages() error
	// DeletePage evicts pageID and returns its frame to the free list.
	// Succeeds (nil) if the page was never resident.
	DeletePage(pageID page.PageID) error
	// PoolSize reports the total number of frames this pool manages.
	PoolSize() int
}
