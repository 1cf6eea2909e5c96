package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
)

func setBuild(t *testing.T, v, commit, date string) {
	t.Helper()
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })
	Version, Commit, Date = v, commit, date
}

func TestDevBuild(t *testing.T) {
	setBuild(t, "dev", "none", "unknown")

	info := Current()
	assert.Empty(t, info.Commit)
	assert.Equal(t, dataset.SchemaVersion, info.CacheSchema)
	assert.Equal(t, "Sentimen dev", Short())
	assert.NotContains(t, info.String(), "commit:")
	assert.Contains(t, info.String(), "cache schema: v1")
}

func TestReleaseBuild(t *testing.T) {
	setBuild(t, "v1.2.0", "abc123", "2026-10-01")

	info := Current()
	assert.Equal(t, "Sentimen v1.2.0", Short())
	assert.Contains(t, info.String(), "commit:       abc123")

	b, err := json.Marshal(info)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "2026-10-01", got["built"])
	assert.EqualValues(t, dataset.SchemaVersion, got["cache_schema"])
}
