package scene

import (
	"fmt"
	"strconv"

	"github.com/chazu/ndwire/pkg/geom"
)

// Snapshot is a read-only view of the scene state for display.
type Snapshot struct {
	Dimensions      int         `json:"dimensions"`
	Plane           geom.Plane  `json:"plane"`
	Center          geom.Center `json:"center"`
	Perspective     float64     `json:"perspective"`
	Lines           int         `json:"lines"`
	ScaleCorrection bool        `json:"scaleCorrection"`
}

// Snapshot captures the current state.
func (s *Scene) Snapshot() Snapshot {
	return Snapshot{
		Dimensions:      s.dims,
		Plane:           s.plane,
		Center:          s.center,
		Perspective:     s.perspective,
		Lines:           s.store.Len(),
		ScaleCorrection: s.scaleCorrection,
	}
}

// Info returns the overlay text lines describing the snapshot.
func (sn Snapshot) Info() []string {
	return []string{
		"Dimensions: " + strconv.Itoa(sn.Dimensions),
		"Perspective Depth: " + strconv.FormatFloat(sn.Perspective, 'g', -1, 64),
		fmt.Sprintf("Rotation Plane: [%d,%d]", sn.Plane.Low, sn.Plane.High),
		"Rotation Center: " + sn.Center.String(),
		"Edges: " + strconv.Itoa(sn.Lines),
		"Scale Correction Toggle: " + strconv.FormatBool(sn.ScaleCorrection),
	}
}

// ViewLines formats every stored line as "Line i: (a...) - (b...)".
func (s *Scene) ViewLines() []string {
	out := make([]string, 0, s.store.Len())
	for i, l := range s.store.Lines() {
		out = append(out, fmt.Sprintf("Line %d: %s", i+1, l))
	}
	return out
}
