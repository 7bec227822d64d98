package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gordohq/lead-portal/internal/entity"
)

// countingStore wraps a CSVStore and counts real loads.
type countingStore struct {
	*CSVStore
	loads int
}

func (c *countingStore) LoadAll(ctx context.Context) (entity.Snapshot, error) {
	c.loads++
	return c.CSVStore.LoadAll(ctx)
}

func newCachedFixture(t *testing.T) (*CachedStore, *countingStore) {
	t.Helper()
	inner := &countingStore{CSVStore: NewCSVStore(filepath.Join(t.TempDir(), "leads.csv"))}
	cached := NewCachedStore(inner, time.Minute)
	require.NoError(t, cached.Initialize())
	return cached, inner
}

func TestCachedStoreServesRepeatReadsFromCache(t *testing.T) {
	cached, inner := newCachedFixture(t)
	ctx := context.Background()

	_, err := cached.LoadAll(ctx)
	require.NoError(t, err)
	_, err = cached.LoadAll(ctx)
	require.NoError(t, err)
	_, err = cached.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.loads)
}

func TestCachedStoreExpiresAfterTTL(t *testing.T) {
	cached, inner := newCachedFixture(t)
	ctx := context.Background()

	now := time.Now()
	cached.now = func() time.Time { return now }

	_, err := cached.LoadAll(ctx)
	require.NoError(t, err)

	// Inside the window: cached.
	now = now.Add(30 * time.Second)
	_, err = cached.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.loads)

	// Past the window: re-read.
	now = now.Add(time.Minute)
	_, err = cached.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.loads)
}

func TestCachedStoreWriterSeesOwnWrite(t *testing.T) {
	cached, _ := newCachedFixture(t)
	ctx := context.Background()

	snap, err := cached.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap)

	require.NoError(t, cached.Append(ctx, entity.Lead{Customer: "Jane", Company: "Acme"}))

	snap, err = cached.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, "Jane", snap[0].Customer)
}

func TestCachedStoreUpdateInvalidates(t *testing.T) {
	cached, _ := newCachedFixture(t)
	ctx := context.Background()

	require.NoError(t, cached.Append(ctx, entity.Lead{Customer: "Jane", Company: "Acme"}))
	_, err := cached.LoadAll(ctx)
	require.NoError(t, err)

	require.NoError(t, cached.UpdateFields(ctx, 0, map[string]string{"Notes": "called twice"}))

	snap, err := cached.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "called twice", snap[0].Notes)
}

func TestCachedStoreHandsOutIsolatedSnapshots(t *testing.T) {
	cached, _ := newCachedFixture(t)
	ctx := context.Background()

	require.NoError(t, cached.Append(ctx, entity.Lead{Customer: "Jane", Company: "Acme"}))

	first, err := cached.LoadAll(ctx)
	require.NoError(t, err)
	first[0].Customer = "mutated"

	second, err := cached.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane", second[0].Customer)
}
