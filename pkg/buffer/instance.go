package buffer

import (
	"fmt"
	"sync"

	"bufpool/pkg/logmgr"
	"bufpool/pkg/storage/disk"
	"bufpool/pkg/storage/page"
	"bufpool/pkg/storage/replacer"
)

// Instance is a single buffer pool: a fixed array of frames, a free
// list of never-used or recently-deleted frame indices, a page-id to
// frame-index map, and an LRU replacer. It is responsible only for the
// subset of page ids that satisfy pageID mod numInstances ==
// instanceIndex (see allocatePage); a ParallelPool enforces that at the
// routing layer, but an Instance used on its own (numInstances == 1)
// just owns every page id.
//
// All public operations take instance-wide latch mu and are fully
// serialized, including the disk I/O they perform — see spec.md §5 for
// why that's an acceptable tradeoff at this layer.
type Instance struct {
	mu sync.Mutex

	disk disk.Manager
	log  logmgr.LogManager

	frames    []*page.Frame
	repl      *replacer.LRU
	freeList  []int
	pageTable map[page.PageID]int

	poolSize      int
	numInstances  int32
	instanceIndex int32
	nextPageID    page.PageID
}

// NewInstance constructs an instance with poolSize frames, responsible
// for page ids congruent to instanceIndex modulo numInstances. dm must
// be non-nil; lm may be nil, in which case logmgr.Noop is used.
func NewInstance(poolSize int, numInstances, instanceIndex int32, dm disk.Manager, lm logmgr.LogManager) (*Instance, error) {
	if poolSize <= 0 {
		return nil, fmt.Errorf("buffer pool: pool size must be positive, got %d", poolSize)
	}
	if numInstances <= 0 {
		return nil, fmt.Errorf("buffer pool: num instances must be positive, got %d", numInstances)
	}
	if instanceIndex < 0 || instanceIndex >= numInstances {
		return nil, fmt.Errorf("buffer pool: instance index %d out of range [0, %d)", instanceIndex, numInstances)
	}
	if dm == nil {
		return nil, fmt.Errorf("buffer pool: disk manager is required")
	}
	if lm == nil {
		lm = logmgr.Noop{}
	}

	inst := &Instance{
		disk:          dm,
		log:           lm,
		frames:        make([]*page.Frame, poolSize),
		repl:          replacer.NewLRU(poolSize),
		freeList:      make([]int, poolSize),
		pageTable:     make(map[page.PageID]int, poolSize),
		poolSize:      poolSize,
		numInstances:  numInstances,
		instanceIndex: instanceIndex,
		nextPageID:    page.PageID(instanceIndex),
	}
	for i := 0; i < poolSize; i++ {
		inst.frames[i] = &page.Frame{}
		inst.frames[i].SetPageID(page.InvalidPageID)
		inst.freeList[i] = i
	}
	return inst, nil
}

// PoolSize reports the number of frames this instance manages.
func (b *Instance) PoolSize() int {
	return b.poolSize
}

// FetchPage returns the frame holding pageID, pinning it.
func (b *Instance) FetchPage(pageID page.PageID) (*page.Frame, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if frameID, ok := b.pageTable[pageID]; ok {
		fr := b.frames[frameID]
		fr.SetPinCount(fr.PinCount() + 1)
		b.repl.Pin(frameID) // no-op if already pinned (absent); removes it if it was eligible
		return fr, nil
	}

	frameID, err := b.findVictimFrame()
	if err != nil {
		return nil, err
	}

	fr := b.frames[frameID]
	if err := b.disk.ReadPage(pageID, fr.Data[:]); err != nil {
		// Rebinding failed; give the frame back rather than leaving it
		// detached from both the free list and the page table.
		fr.SetPageID(page.InvalidPageID)
		b.freeList = append(b.freeList, frameID)
		return nil, fmt.Errorf("buffer pool: fetch page %d: %w", pageID, err)
	}

	fr.SetPageID(pageID)
	fr.SetPinCount(1)
	fr.SetDirty(false)
	b.pageTable[pageID] = frameID
	b.repl.Pin(frameID) // defensive: victims/free frames are already absent from the replacer

	return fr, nil
}

// NewPage allocates a new page id striped to this instance, binds it to
// a frame (pinned, zeroed), and returns both.
func (b *Instance) NewPage() (*page.Frame, page.PageID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	frameID, err := b.findVictimFrame()
	if err != nil {
		return nil, page.InvalidPageID, err
	}

	pageID := b.allocatePage()

	fr := b.frames[frameID]
	fr.Clear()
	fr.SetPageID(pageID)
	fr.SetPinCount(1)
	fr.SetDirty(false)
	b.pageTable[pageID] = frameID

	return fr, pageID, nil
}

// UnpinPage releases one reference to pageID.
func (b *Instance) UnpinPage(pageID page.PageID, isDirty bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	frameID, ok := b.pageTable[pageID]
	if !ok {
		return ErrPageNotResident
	}

	fr := b.frames[frameID]
	if fr.PinCount() <= 0 {
		return ErrOverUnpin
	}

	if isDirty {
		fr.SetDirty(true) // never cleared here; only a flush/evict/delete clears it
	}

	fr.SetPinCount(fr.PinCount() - 1)
	if fr.PinCount() == 0 {
		b.repl.Unpin(frameID)
	}
	return nil
}

// FlushPage writes pageID's frame to disk unconditionally.
func (b *Instance) FlushPage(pageID page.PageID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	frameID, ok := b.pageTable[pageID]
	if !ok {
		return ErrPageNotResident
	}
	return b.forceWrite(b.frames[frameID])
}

// FlushAllPages writes every resident page to disk. It does not call
// FlushPage per entry, avoiding a redundant page-table lookup for each
// one (spec.md §4.2).
func (b *Instance) FlushAllPages() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, frameID := range b.pageTable {
		if err := b.forceWrite(b.frames[frameID]); err != nil {
			return err
		}
	}
	return nil
}

// DeletePage evicts pageID, returning its frame to the free list.
// Absence is success (nil), matching spec.md §7's "delete-of-absent"
// rule.
func (b *Instance) DeletePage(pageID page.PageID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.deallocatePage(pageID)

	frameID, ok := b.pageTable[pageID]
	if !ok {
		return nil
	}

	fr := b.frames[frameID]
	if fr.PinCount() != 0 {
		return ErrPagePinned
	}

	if fr.IsDirty() {
		if err := b.forceWrite(fr); err != nil {
			return err
		}
	}

	delete(b.pageTable, pageID)
	b.repl.Pin(frameID) // extract from the replacer; it's going to the free list instead
	fr.SetPinCount(0)
	fr.SetDirty(false)
	fr.Clear()
	fr.SetPageID(page.InvalidPageID)
	b.freeList = append(b.freeList, frameID)

	return nil
}

// findVictimFrame picks a frame for rebinding: the free list first,
// then the replacer. A replacer victim is written back if dirty, and
// its old mapping is removed, before the frame id is handed to the
// caller. Caller must hold b.mu.
func (b *Instance) findVictimFrame() (int, error) {
	if n := len(b.freeList); n > 0 {
		frameID := b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
		return frameID, nil
	}

	frameID, ok := b.repl.Victim()
	if !ok {
		return 0, ErrPoolExhausted
	}

	victim := b.frames[frameID]
	if victim.IsDirty() {
		if err := b.forceWrite(victim); err != nil {
			return 0, err
		}
	}
	delete(b.pageTable, victim.PageID())

	return frameID, nil
}

// forceWrite flushes the WAL obligation (spec.md §6's stub contract)
// and writes fr's data to disk, clearing its dirty bit. Caller must
// hold b.mu.
func (b *Instance) forceWrite(fr *page.Frame) error {
	// No per-frame LSN tracking at this layer (spec.md §6); FlushTo(0)
	// still exercises the ordering obligation every write-back owes the
	// log manager.
	if err := b.log.FlushTo(0); err != nil {
		return fmt.Errorf("buffer pool: wal flush before write-back of page %d: %w", fr.PageID(), err)
	}
	if err := b.disk.WritePage(fr.PageID(), fr.Data[:]); err != nil {
		return fmt.Errorf("buffer pool: write-back page %d: %w", fr.PageID(), err)
	}
	fr.SetDirty(false)
	return nil
}

// allocatePage returns the next page id striped to this instance and
// advances the counter by numInstances, preserving pageID mod
// numInstances == instanceIndex for every id this instance ever hands
// out. Caller must hold b.mu.
func (b *Instance) allocatePage() page.PageID {
	id := b.nextPageID
	b.nextPageID += page.PageID(b.numInstances)
	return id
}

// deallocatePage is a hook for future bitmap-based space reclamation;
// it does nothing today.
func (b *Instance) deallocatePage(page.PageID) {}

var _ Pool = (*Instance)(nil)
