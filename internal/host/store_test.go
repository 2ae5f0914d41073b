package host

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gentrystinson/cabquote/internal/quote"
)

func tempStore(t *testing.T) *QuoteStore {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAssignsSequentialIDs(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	id1, err := store.Save(ctx, &quote.Quote{ProjectName: "First", Timestamp: time.Now()})
	require.NoError(t, err)
	id2, err := store.Save(ctx, &quote.Quote{ProjectName: "Second", Timestamp: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, "Q0001", id1)
	assert.Equal(t, "Q0002", id2)
}

func TestSaveDefaultsStatusPending(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, &quote.Quote{ProjectName: "Stinson", Timestamp: time.Now()})
	require.NoError(t, err)

	q, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "Pending", q.Status)
}

func TestSaveExistingIDOverwrites(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, &quote.Quote{ProjectName: "Before", Timestamp: time.Now(), FinalTotal: 100})
	require.NoError(t, err)

	_, err = store.Save(ctx, &quote.Quote{ID: id, ProjectName: "After", Timestamp: time.Now(), FinalTotal: 250, Status: "Accepted"})
	require.NoError(t, err)

	q, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "After", q.ProjectName)
	assert.Equal(t, 250.0, q.FinalTotal)
	assert.Equal(t, "Accepted", q.Status)

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestGetRoundTripsFullPayload(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	saved := &quote.Quote{
		ProjectName: "Stinson Residence",
		Timestamp:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Rooms: []quote.RoomEntry{
			{Name: "Kitchen"},
		},
		ProjectTotal: 10080,
		FinalTotal:   10946.88,
	}
	id, err := store.Save(ctx, saved)
	require.NoError(t, err)

	q, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, saved.ProjectName, q.ProjectName)
	assert.Len(t, q.Rooms, 1)
	assert.Equal(t, "Kitchen", q.Rooms[0].Name)
	assert.Equal(t, 10946.88, q.FinalTotal)
}

func TestGetMissingQuoteIsNil(t *testing.T) {
	store := tempStore(t)
	q, err := store.Get(context.Background(), "Q9999")
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestListNewestFirst(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := store.Save(ctx, &quote.Quote{ProjectName: "Old", Timestamp: older})
	require.NoError(t, err)
	_, err = store.Save(ctx, &quote.Quote{ProjectName: "New", Timestamp: newer})
	require.NoError(t, err)

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "New", summaries[0].ProjectName)
	assert.Equal(t, "Old", summaries[1].ProjectName)
}

func TestReopenKeepsSequence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes.db")
	ctx := context.Background()

	store, err := OpenStore(path)
	require.NoError(t, err)
	_, err = store.Save(ctx, &quote.Quote{ProjectName: "First", Timestamp: time.Now()})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	id, err := reopened.Save(ctx, &quote.Quote{ProjectName: "Second", Timestamp: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "Q0002", id)
}
