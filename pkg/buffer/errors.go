package buffer

import "errors"

// Sentinel errors map spec.md §7's boolean/optional soft-failure
// results onto Go's error idiom. Check with errors.Is; anything else
// returned from a Pool method is a wrapped disk I/O failure, which
// spec.md §7 treats as fatal at this layer.
var (
	// ErrPoolExhausted means no free frame and no evictable frame
	// (every resident frame is pinned). Returned by FetchPage/NewPage.
	ErrPoolExhausted = errors.New("buffer pool: exhausted, no frame available")
	// ErrPageNotResident means the page-id isn't in the page table.
	// Returned by UnpinPage/FlushPage, and by ParallelPool.FetchPage for
	// a negative page id.
	ErrPageNotResident = errors.New("buffer pool: page not resident")
	// ErrOverUnpin means UnpinPage was called when pin_count was
	// already zero.
	ErrOverUnpin = errors.New("buffer pool: over-unpin, pin count already zero")
	// ErrPagePinned means DeletePage was called on a page still
	// referenced by a caller.
	ErrPagePinned = errors.New("buffer pool: page is pinned, cannot delete")
)
