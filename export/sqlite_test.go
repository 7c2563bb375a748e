package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytscrape/youtube"
)

func testManifest(coll *youtube.Collection) *Manifest {
	m := NewManifest(youtube.Channel{
		ID:                "UCuAXFkgsw1L7xaCfnd5JJOw",
		Title:             "Test Channel",
		UploadsPlaylistID: "UUuAXFkgsw1L7xaCfnd5JJOw",
	}, coll, time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC))
	m.FinishedAt = m.StartedAt.Add(time.Minute)
	return m
}

func TestCatalogSaveRun(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "catalog.db")

	cat, err := OpenCatalog(ctx, path)
	require.NoError(t, err)
	defer cat.Close()

	coll := &youtube.Collection{
		Short:     testRecords(youtube.CategoryShort, 3),
		Regular:   testRecords(youtube.CategoryRegular, 7),
		ItemsSeen: 10,
	}
	m := testManifest(coll)
	require.NoError(t, cat.SaveRun(ctx, m, coll))

	n, err := cat.CountVideos(ctx, m.RunID, youtube.CategoryShort)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = cat.CountVideos(ctx, m.RunID, youtube.CategoryRegular)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	// a second run of the same channel is stored separately
	m2 := testManifest(coll)
	require.NoError(t, cat.SaveRun(ctx, m2, coll))
	n, err = cat.CountVideos(ctx, m2.RunID, youtube.CategoryRegular)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestCatalogDuplicateRunRollsBack(t *testing.T) {
	ctx := context.Background()
	cat, err := OpenCatalog(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer cat.Close()

	coll := &youtube.Collection{Short: testRecords(youtube.CategoryShort, 2)}
	m := testManifest(coll)
	require.NoError(t, cat.SaveRun(ctx, m, coll))

	err = cat.SaveRun(ctx, m, coll)
	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "sqlite", exportErr.Format)

	n, err := cat.CountVideos(ctx, m.RunID, youtube.CategoryShort)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestClampInt64(t *testing.T) {
	assert.Equal(t, int64(42), clampInt64(42))
	assert.Equal(t, int64(9223372036854775807), clampInt64(1<<63))
}
