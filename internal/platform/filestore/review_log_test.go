package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *ReviewLog {
	t.Helper()
	log, err := NewReviewLog(filepath.Join(t.TempDir(), "review.log"))
	require.NoError(t, err)
	return log
}

func TestNewReviewLogCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.log")
	_, err := NewReviewLog(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFlagAndWords(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	require.NoError(t, log.Flag(ctx, "örnek"))
	require.NoError(t, log.Flag(ctx, "ki tap"))
	// Duplicate flags produce duplicate entries; the log is not a set.
	require.NoError(t, log.Flag(ctx, "örnek"))

	words, err := log.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"örnek", "ki tap", "örnek"}, words)
}

func TestWordsEmptyLog(t *testing.T) {
	log := newTestLog(t)

	words, err := log.Words(context.Background())
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestClear(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	require.NoError(t, log.Flag(ctx, "örnek"))
	require.NoError(t, log.Clear(ctx))

	words, err := log.Words(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)

	// Log remains usable after clearing.
	require.NoError(t, log.Flag(ctx, "yeni"))
	words, err = log.Words(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"yeni"}, words)
}

func TestFlagConcurrent(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, log.Flag(ctx, "kelime"))
		}()
	}
	wg.Wait()

	words, err := log.Words(ctx)
	require.NoError(t, err)
	assert.Len(t, words, 20)
}
