package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSource(url string) Source {
	return Source{
		URL:       url,
		Dest:      "/tmp/checkout",
		Head:      "0123456789abcdef0123",
		Catalogs:  2,
		FetchedAt: time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestRegistryNew(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "nested", "sources.json")

	reg, err := NewRegistry(registryPath)
	require.NoError(t, err)
	assert.Empty(t, reg.List())
	assert.Equal(t, registryPath, reg.Path())
	assert.DirExists(t, filepath.Dir(registryPath))
}

func TestRegistryRecordDerivesID(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "sources.json"))
	require.NoError(t, err)

	src, err := reg.Record(sampleSource("https://github.com/acme/widgets.git"))
	require.NoError(t, err)
	assert.Equal(t, "github-com-acme-widgets", src.ID)

	got, err := reg.Get("github-com-acme-widgets")
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestRegistryRecordReplaces(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "sources.json"))
	require.NoError(t, err)

	_, err = reg.Record(sampleSource("https://github.com/acme/widgets.git"))
	require.NoError(t, err)

	updated := sampleSource("https://github.com/acme/widgets")
	updated.Head = "fedcba"
	_, err = reg.Record(updated)
	require.NoError(t, err)

	sources := reg.List()
	require.Len(t, sources, 1)
	assert.Equal(t, "fedcba", sources[0].Head)
}

func TestRegistryRecordRejectsBadID(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "sources.json"))
	require.NoError(t, err)

	src := sampleSource("https://example.com/x.git")
	src.ID = "Not Valid"
	_, err = reg.Record(src)
	require.Error(t, err)
	assert.Empty(t, reg.List())
}

func TestRegistryListSorted(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "sources.json"))
	require.NoError(t, err)

	for _, url := range []string{"https://z.example/repo", "https://a.example/repo", "https://m.example/repo"} {
		_, err := reg.Record(sampleSource(url))
		require.NoError(t, err)
	}

	ids := make([]string, 0)
	for _, s := range reg.List() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a-example-repo", "m-example-repo", "z-example-repo"}, ids)
}

func TestRegistryRemove(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "sources.json"))
	require.NoError(t, err)

	src, err := reg.Record(sampleSource("https://github.com/acme/widgets.git"))
	require.NoError(t, err)

	require.NoError(t, reg.Remove(src.ID))
	assert.Empty(t, reg.List())

	err = reg.Remove(src.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = reg.Get(src.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistrySaveAndReload(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "sources.json")

	reg, err := NewRegistry(registryPath)
	require.NoError(t, err)
	src, err := reg.Record(sampleSource("git@github.com:acme/widgets.git"))
	require.NoError(t, err)
	require.NoError(t, reg.Save())

	_, err = os.Stat(registryPath + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")

	reloaded, err := NewRegistry(registryPath)
	require.NoError(t, err)
	got, err := reloaded.Get(src.ID)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestRegistryCorruptFile(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "sources.json")
	require.NoError(t, os.WriteFile(registryPath, []byte("{not json"), 0o644))

	_, err := NewRegistry(registryPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse registry")
}

func TestSourceShortHead(t *testing.T) {
	assert.Equal(t, "0123456789ab", sampleSource("x").ShortHead())
	assert.Equal(t, "abc", Source{Head: "abc"}.ShortHead())
}
