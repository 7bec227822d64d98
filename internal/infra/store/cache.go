package store

import (
	"context"
	"sync"
	"time"

	"github.com/gordohq/lead-portal/internal/entity"
)

// DefaultTTL mirrors the freshness window the dashboard reads tolerate.
const DefaultTTL = 30 * time.Second

// CachedStore wraps another store with a time-bounded read cache so list and
// dashboard reads do not re-parse the file on every request. Any mutation
// through the wrapper invalidates the cache, so a writer observes its own
// write on the next read. Callers doing a read-then-write sequence must still
// validate against the single snapshot they loaded — the cache gives no
// cross-request consistency.
type CachedStore struct {
	inner entity.LeadStoreInterface
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	snap     entity.Snapshot
	loadedAt time.Time
}

func NewCachedStore(inner entity.LeadStoreInterface, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedStore{inner: inner, ttl: ttl, now: time.Now}
}

func (c *CachedStore) Initialize() error {
	return c.inner.Initialize()
}

func (c *CachedStore) LoadAll(ctx context.Context) (entity.Snapshot, error) {
	c.mu.Lock()
	if c.snap != nil && c.now().Sub(c.loadedAt) < c.ttl {
		snap := cloneSnapshot(c.snap)
		c.mu.Unlock()
		return snap, nil
	}
	c.mu.Unlock()

	snap, err := c.inner.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.snap = cloneSnapshot(snap)
	c.loadedAt = c.now()
	c.mu.Unlock()
	return snap, nil
}

func (c *CachedStore) Append(ctx context.Context, lead entity.Lead) error {
	if err := c.inner.Append(ctx, lead); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

func (c *CachedStore) UpdateFields(ctx context.Context, rowIndex int, fields map[string]string) error {
	if err := c.inner.UpdateFields(ctx, rowIndex, fields); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

func (c *CachedStore) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

// cloneSnapshot keeps cached rows isolated from caller mutation. Lead fields
// are all strings, so a shallow row copy is enough.
func cloneSnapshot(snap entity.Snapshot) entity.Snapshot {
	out := make(entity.Snapshot, len(snap))
	copy(out, snap)
	return out
}
