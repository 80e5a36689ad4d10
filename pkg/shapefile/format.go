// Package shapefile reads and writes the saved-wireframe text format and
// manages the on-disk shape library.
//
// A saved file starts with a three-line comment header, followed by one line
// per wireframe edge holding 2*D space-separated coordinates: the first D
// belong to the first endpoint, the rest to the second. Lines starting with
// '#' and blank lines are ignored on read.
package shapefile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/ndwire/pkg/geom"
	"github.com/pkg/errors"
)

var (
	// ErrDimensionMismatch is returned when a data line does not hold 2*D tokens.
	ErrDimensionMismatch = errors.New("shapefile: token count does not match dimensions")
	// ErrBadToken is returned when a data line holds a non-numeric token.
	ErrBadToken = errors.New("shapefile: non-numeric token")
	// ErrDimensions is returned for a dimensionality below 2.
	ErrDimensions = errors.New("shapefile: dimensions must be at least 2")
)

const headerTitle = "# === Saved Wireframe ==="

// Read parses every data line of r for a dims-dimensional scene. The whole
// input is rejected on the first malformed line; no partial result is
// returned.
func Read(r io.Reader, dims int) ([]geom.Line, error) {
	if dims < 2 {
		return nil, ErrDimensions
	}

	var lines []geom.Line
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2*dims {
			return nil, errors.Wrapf(ErrDimensionMismatch,
				"line %d: got %d tokens, want %d", lineNo, len(fields), 2*dims)
		}

		coords := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrBadToken, "line %d: %q", lineNo, f)
			}
			coords[i] = v
		}
		lines = append(lines, geom.NewLine(geom.Point(coords[:dims:dims]), geom.Point(coords[dims:])))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "shapefile: read")
	}
	return lines, nil
}

// Write emits the header and one data line per edge.
func Write(w io.Writer, dims int, lines []geom.Line) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, headerTitle)
	fmt.Fprintf(bw, "#   Required Dimensions: %d\n", dims)
	fmt.Fprintf(bw, "#   Lines: %d\n", len(lines))
	fmt.Fprintln(bw)

	for _, l := range lines {
		bw.WriteString(l.A.String())
		bw.WriteByte(' ')
		bw.WriteString(l.B.String())
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "shapefile: write")
}
