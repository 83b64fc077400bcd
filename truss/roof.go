package truss

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexiusacademia/gotruss/geom"
)

// RoofTruss is the family base for peaked trusses. Height derives from the
// span and roof pitch; a positive overhang extends the top chord past each
// eave along the roof slope.
type RoofTruss struct {
	Truss

	RoofPitchDeg   float64
	RoofPitch      float64 // radians
	OverhangLength float64
}

func newRoofTruss(typeName string, p Params) (RoofTruss, error) {
	if p.RoofPitchDeg <= 0 || p.RoofPitchDeg >= 90 {
		return RoofTruss{}, fmt.Errorf("roof pitch must be between 0 and 90 degrees, got %v", p.RoofPitchDeg)
	}
	if p.OverhangLength < 0 {
		return RoofTruss{}, fmt.Errorf("overhang length must be non-negative, got %v", p.OverhangLength)
	}

	pitch := p.RoofPitchDeg * math.Pi / 180
	height := (p.Width / 2) * math.Tan(pitch)
	base, err := newBaseTruss(typeName, p, p.Width, height)
	if err != nil {
		return RoofTruss{}, err
	}
	return RoofTruss{
		Truss:          base,
		RoofPitchDeg:   p.RoofPitchDeg,
		RoofPitch:      pitch,
		OverhangLength: p.OverhangLength,
	}, nil
}

// defineSupports places the primary support at the left end of the bottom
// chord and the secondary at the right end.
func (r *RoofTruss) defineSupports() {
	r.setSupport(0, r.resolveSupportKind(true))
	r.setSupport(slices.Max(r.BottomChord.IDs()), r.resolveSupportKind(false))
}

// appendOverhangNodes places the two eave extension nodes, displaced from
// the bottom corners down the roof slope, and returns their ids. Callers
// prepend the left id to the left top chord segment and append the right
// id to the right one.
func (r *RoofTruss) appendOverhangNodes() (left, right int) {
	r.Nodes = append(r.Nodes,
		geom.NewVertex(0, 0).DisplacePolarInvY(math.Pi-r.RoofPitch, r.OverhangLength),
		geom.NewVertex(r.Width, 0).DisplacePolarInvY(r.RoofPitch, r.OverhangLength),
	)
	return len(r.Nodes) - 2, len(r.Nodes) - 1
}
