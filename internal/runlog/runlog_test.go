// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

func testRecord(query string) types.RunRecord {
	return types.RunRecord{
		Query: query,
		Plan: types.SearchPlan{
			Keywords: []string{"federated", "learning"},
			Raw:      query,
		},
		Papers: []types.PaperRecord{
			{Title: "Federated Learning at Scale", URL: "http://arxiv.org/abs/1", Source: "arxiv"},
		},
		Summary: types.StructuredSummary{
			Paragraphs: []string{"A paragraph."},
		},
		Eval: types.EvalScores{
			Coverage:  0.5,
			Depth:     0.25,
			Structure: 0.167,
			Overall:   0.325,
		},
		Elapsed: 1500 * time.Millisecond,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.RunLogConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLogRunAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.LogRun(ctx, testRecord("first query")))
	require.NoError(t, store.LogRun(ctx, testRecord("second query")))

	entries, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "second query", entries[0].Query)
	assert.Equal(t, "first query", entries[1].Query)

	assert.Equal(t, 1, entries[0].NumPapers)
	assert.Equal(t, int64(1500), entries[0].ElapsedMS)
	assert.Equal(t, 0.325, entries[0].Eval.Overall)
	assert.NotEmpty(t, entries[0].CreatedAt)
}

func TestListLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.LogRun(ctx, testRecord("query")))
	}

	entries, err := store.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestListEmptyStore(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(types.RunLogConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, store.LogRun(ctx, testRecord("persisted query")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(types.RunLogConfig{Dir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted query", entries[0].Query)
}
