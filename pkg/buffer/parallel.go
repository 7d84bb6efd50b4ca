package buffer

import (
	"errors"
	"fmt"
	"sync"

	"bufpool/pkg/logmgr"
	"bufpool/pkg/storage/disk"
	"bufpool/pkg/storage/page"
)

// ParallelPool is a fixed array of Instances that together present a
// single logical cache, routing any page id to instance
// pageID mod len(instances). Operations on distinct pages routed to
// distinct instances run under independent latches and are genuinely
// concurrent (spec.md §5); only NewPage's round-robin cursor is shared
// across the whole pool.
type ParallelPool struct {
	instances []*Instance

	cursorMu   sync.Mutex
	startIndex int
}

// NewParallelPool constructs numInstances instances of poolSizePerInstance
// frames each, sharing dm and lm.
func NewParallelPool(numInstances, poolSizePerInstance int, dm disk.Manager, lm logmgr.LogManager) (*ParallelPool, error) {
	if numInstances <= 0 {
		return nil, fmt.Errorf("buffer pool: num instances must be positive, got %d", numInstances)
	}

	instances := make([]*Instance, numInstances)
	for i := 0; i < numInstances; i++ {
		inst, err := NewInstance(poolSizePerInstance, int32(numInstances), int32(i), dm, lm)
		if err != nil {
			return nil, err
		}
		instances[i] = inst
	}

	return &ParallelPool{instances: instances}, nil
}

// route returns the instance responsible for pageID.
func (p *ParallelPool) route(pageID page.PageID) (*Instance, error) {
	if pageID < 0 {
		return nil, ErrPageNotResident
	}
	return p.instances[int(pageID)%len(p.instances)], nil
}

// FetchPage dispatches to instances[pageID mod N].
func (p *ParallelPool) FetchPage(pageID page.PageID) (*page.Frame, error) {
	inst, err := p.route(pageID)
	if err != nil {
		return nil, err
	}
	return inst.FetchPage(pageID)
}

// UnpinPage dispatches to instances[pageID mod N].
func (p *ParallelPool) UnpinPage(pageID page.PageID, isDirty bool) error {
	inst, err := p.route(pageID)
	if err != nil {
		return err
	}
	return inst.UnpinPage(pageID, isDirty)
}

// FlushPage dispatches to instances[pageID mod N].
func (p *ParallelPool) FlushPage(pageID page.PageID) error {
	inst, err := p.route(pageID)
	if err != nil {
		return err
	}
	return inst.FlushPage(pageID)
}

// DeletePage dispatches to instances[pageID mod N]. A negative page id
// is never resident, so deleting one succeeds.
func (p *ParallelPool) DeletePage(pageID page.PageID) error {
	inst, err := p.route(pageID)
	if err != nil {
		return nil
	}
	return inst.DeletePage(pageID)
}

// FlushAllPages flushes every instance.
func (p *ParallelPool) FlushAllPages() error {
	for _, inst := range p.instances {
		if err := inst.FlushAllPages(); err != nil {
			return err
		}
	}
	return nil
}

// NewPage sweeps instances round-robin starting from a rotating cursor,
// calling NewPage on each until one succeeds. The cursor advances by
// one regardless of whether this call succeeds, so a sustained
// pool-exhausted condition doesn't cold-start the same overloaded
// instance on every call (spec.md §9, open question 1).
func (p *ParallelPool) NewPage() (*page.Frame, page.PageID, error) {
	p.cursorMu.Lock()
	start := p.startIndex
	p.startIndex = (p.startIndex + 1) % len(p.instances)
	p.cursorMu.Unlock()

	n := len(p.instances)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		fr, pageID, err := p.instances[idx].NewPage()
		if err == nil {
			return fr, pageID, nil
		}
		if !errors.Is(err, ErrPoolExhausted) {
			return nil, page.InvalidPageID, err
		}
	}
	return nil, page.InvalidPageID, ErrPoolExhausted
}

// PoolSize reports numInstances * frames-per-instance (all instances
// share the configured per-instance size).
func (p *ParallelPool) PoolSize() int {
	return len(p.instances) * p.instances[0].PoolSize()
}

var _ Pool = (*ParallelPool)(nil)
