package shapefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("tesseract"))
	assert.True(t, ValidName("cube_4d-v2"))
	for _, bad := range []string{"", "a b", "a/b", `a\b`, "a.txt", "a<", "a>", "a?", "a*", "a:", "a|", `a"`} {
		assert.False(t, ValidName(bad), "%q", bad)
	}
}

func TestLibrarySaveLoad(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), DefaultDir))
	lines := []geom.Line{
		geom.NewLine(geom.Point{0, 0, 0}, geom.Point{1, 0, 0}),
		geom.NewLine(geom.Point{1, 0, 0}, geom.Point{1, 1, 0}),
	}

	path, err := lib.Save("edge", 3, lines, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(lib.Dir, "edge.txt"), path)
	assert.True(t, lib.Exists("edge"))

	got, err := lib.Load("edge", 3)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	names, err := lib.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"edge"}, names)
}

func TestLibrarySaveRequiresOverwriteConsent(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	first := []geom.Line{geom.NewLine(geom.Point{0, 0}, geom.Point{1, 1})}
	second := []geom.Line{
		geom.NewLine(geom.Point{0, 0}, geom.Point{2, 2}),
		geom.NewLine(geom.Point{2, 2}, geom.Point{3, 3}),
	}

	_, err := lib.Save("shape", 2, first, false)
	require.NoError(t, err)

	_, err = lib.Save("shape", 2, second, false)
	assert.ErrorIs(t, err, ErrExists)
	got, err := lib.Load("shape", 2)
	require.NoError(t, err)
	assert.Len(t, got, 1, "refused save must leave the file untouched")

	_, err = lib.Save("shape", 2, second, true)
	require.NoError(t, err)
	got, err = lib.Load("shape", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLibraryErrors(t *testing.T) {
	lib := NewLibrary(t.TempDir())

	_, err := lib.Save("bad name", 2, nil, false)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = lib.Load("missing", 2)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.WriteFile(lib.Path("wrongdims"), []byte("1 2 3 4 5 6\n"), 0o644))
	_, err = lib.Load("wrongdims", 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestEnsureDirReportsCreation(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "shapes"))
	created, err := lib.EnsureDir()
	require.NoError(t, err)
	assert.True(t, created)

	created, err = lib.EnsureDir()
	require.NoError(t, err)
	assert.False(t, created)
}
