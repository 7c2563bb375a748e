package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytscrape/youtube"
)

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	coll := &youtube.Collection{
		Short:     testRecords(youtube.CategoryShort, 1),
		Regular:   testRecords(youtube.CategoryRegular, 2),
		Skipped:   []youtube.SkippedVideo{{ID: "gone", Reason: "not returned by videos.list"}},
		ItemsSeen: 4,
		Pages:     1,
	}
	m := testManifest(coll)
	m.AddFile(dir, filepath.Join(dir, ShortsTextFile))
	m.AddFile(dir, filepath.Join(dir, RegularTextFile))

	path, err := WriteManifest(dir, m)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))

	_, err = uuid.Parse(got.RunID)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"short": 1, "regular": 2}, got.Counts)
	assert.Equal(t, 4, got.ItemsSeen)
	assert.Equal(t, []string{"shorts.txt", "regular_videos.txt"}, got.Files)
	assert.Equal(t, "Test Channel", got.Channel.Title)
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, "gone", got.Skipped[0].ID)
}

func TestNewManifestRunIDsAreUnique(t *testing.T) {
	coll := &youtube.Collection{}
	assert.NotEqual(t, testManifest(coll).RunID, testManifest(coll).RunID)
}
