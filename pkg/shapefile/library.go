package shapefile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/pkg/errors"
)

// DefaultDir is the library directory used by the front ends.
const DefaultDir = "file_shapes"

// invalidNameChars may not appear in a shape name.
const invalidNameChars = ` \/.<>?*:|"`

var (
	// ErrInvalidName is returned for empty names or names with reserved characters.
	ErrInvalidName = errors.New("shapefile: invalid file name")
	// ErrExists is returned by Save when the file exists and overwrite was not allowed.
	ErrExists = errors.New("shapefile: file already exists")
	// ErrNotFound is returned by Load for a missing shape.
	ErrNotFound = errors.New("shapefile: no such shape")
)

// ValidName reports whether name can be used as a shape name.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, invalidNameChars)
}

// Library stores shapes as <Dir>/<name>.txt.
type Library struct {
	Dir string
}

// NewLibrary returns a library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{Dir: dir}
}

// Path returns the file path for a shape name.
func (lib *Library) Path(name string) string {
	return filepath.Join(lib.Dir, name+".txt")
}

// Exists reports whether a shape with this name is stored.
func (lib *Library) Exists(name string) bool {
	_, err := os.Stat(lib.Path(name))
	return err == nil
}

// EnsureDir creates the library directory when missing and reports whether it
// had to be created.
func (lib *Library) EnsureDir() (bool, error) {
	if _, err := os.Stat(lib.Dir); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(lib.Dir, 0o755); err != nil {
		return false, errors.Wrapf(err, "shapefile: create %s", lib.Dir)
	}
	return true, nil
}

// Load reads a stored shape for a dims-dimensional scene.
func (lib *Library) Load(name string, dims int) ([]geom.Line, error) {
	if !ValidName(name) {
		return nil, errors.Wrapf(ErrInvalidName, "%q", name)
	}
	path := lib.Path(name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "shapefile: open %s", path)
	}
	defer f.Close()

	lines, err := Read(f, dims)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return lines, nil
}

// Save writes lines under name. An existing file is replaced only when
// overwrite is true. It returns the written path.
func (lib *Library) Save(name string, dims int, lines []geom.Line, overwrite bool) (string, error) {
	if !ValidName(name) {
		return "", errors.Wrapf(ErrInvalidName, "%q", name)
	}
	if _, err := lib.EnsureDir(); err != nil {
		return "", err
	}
	path := lib.Path(name)
	if !overwrite && lib.Exists(name) {
		return "", errors.Wrapf(ErrExists, "%s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "shapefile: create %s", path)
	}
	if err := Write(f, dims, lines); err != nil {
		f.Close()
		return "", err
	}
	return path, errors.Wrap(f.Close(), "shapefile: close")
}

// Names lists stored shape names in lexical order.
func (lib *Library) Names() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(lib.Dir, "*.txt"))
	if err != nil {
		return nil, errors.Wrap(err, "shapefile: list")
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".txt"))
	}
	return names, nil
}
