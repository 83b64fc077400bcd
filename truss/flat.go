package truss

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexiusacademia/gotruss/geom"
)

// EndType shapes the end panels of a flat truss.
type EndType string

const (
	// EndFlat squares the ends off with a vertical end post.
	EndFlat EndType = "flat"
	// EndTriangleDown runs the end diagonal down to a bottom corner node.
	EndTriangleDown EndType = "triangle_down"
	// EndTriangleUp runs the end diagonal up to a top corner node.
	EndTriangleUp EndType = "triangle_up"
)

// SupportLocation places flat-truss supports.
type SupportLocation string

const (
	SupportsBottomChord SupportLocation = "bottom_chord"
	SupportsTopChord    SupportLocation = "top_chord"
	SupportsBoth        SupportLocation = "both"
)

// FlatTruss is the family base for parallel-chord trusses. It derives the
// panel count and end-panel width from the span, panel width and minimum
// end fraction, keeping the panel count even unless odd counts are allowed.
type FlatTruss struct {
	Truss

	UnitWidth        float64
	EndType          EndType
	SupportsLoc      SupportLocation
	MinEndFraction   float64
	EnforceEvenUnits bool

	NUnits   int
	EndWidth float64
}

func newFlatTruss(typeName string, p Params) (FlatTruss, error) {
	endType := p.EndType
	if endType == "" {
		endType = EndTriangleDown
	}
	supportsLoc := p.SupportsLoc
	if supportsLoc == "" {
		supportsLoc = SupportsBottomChord
	}
	minEndFraction := p.MinEndFraction
	if minEndFraction == 0 {
		minEndFraction = 0.5
	}
	enforceEven := !p.AllowOddUnits

	if p.UnitWidth <= 0 {
		return FlatTruss{}, fmt.Errorf("unit width must be positive, got %v", p.UnitWidth)
	}
	if minEndFraction <= 0 || minEndFraction > 1 {
		return FlatTruss{}, fmt.Errorf("min end fraction must be in (0, 1], got %v", minEndFraction)
	}

	nUnitsFloat := (p.Width - p.UnitWidth*2*minEndFraction) / p.UnitWidth
	if nUnitsFloat < 1 {
		return FlatTruss{}, fmt.Errorf("width %v is too small for unit width %v and min end fraction %v, would give %.2f units",
			p.Width, p.UnitWidth, minEndFraction, nUnitsFloat)
	}
	nUnits := int(math.Floor(nUnitsFloat))
	if enforceEven && nUnits%2 != 0 {
		nUnits--
	}
	if nUnits < 2 {
		return FlatTruss{}, fmt.Errorf("truss needs at least 2 units, computed %d, reduce unit width or increase width", nUnits)
	}

	base, err := newBaseTruss(typeName, p, p.Width, p.Height)
	if err != nil {
		return FlatTruss{}, err
	}
	return FlatTruss{
		Truss:            base,
		UnitWidth:        p.UnitWidth,
		EndType:          endType,
		SupportsLoc:      supportsLoc,
		MinEndFraction:   minEndFraction,
		EnforceEvenUnits: enforceEven,
		NUnits:           nUnits,
		EndWidth:         (p.Width - float64(nUnits)*p.UnitWidth) / 2,
	}, nil
}

// defineSupports places supports at the chord extremes selected by
// SupportsLoc. The left side is the primary support.
func (f *FlatTruss) defineSupports() {
	bottomIDs := f.BottomChord.IDs()
	topIDs := f.TopChord.IDs()

	if f.SupportsLoc == SupportsBottomChord || f.SupportsLoc == SupportsBoth {
		f.setSupport(0, f.resolveSupportKind(true))
		f.setSupport(slices.Max(bottomIDs), f.resolveSupportKind(false))
	}
	if f.SupportsLoc == SupportsTopChord || f.SupportsLoc == SupportsBoth {
		f.setSupport(slices.Min(topIDs), f.resolveSupportKind(true))
		f.setSupport(slices.Max(topIDs), f.resolveSupportKind(false))
	}
}

// appendParallelChordRows places the bottom and top node rows shared by the
// Howe and Pratt layouts: interior panel nodes at EndWidth + i*UnitWidth,
// with corner nodes unless the matching triangle end omits them.
func (f *FlatTruss) appendParallelChordRows() {
	if f.EndType != EndTriangleUp {
		f.Nodes = append(f.Nodes, geom.NewVertex(0, 0))
	}
	for i := 0; i <= f.NUnits; i++ {
		f.Nodes = append(f.Nodes, geom.NewVertex(f.EndWidth+float64(i)*f.UnitWidth, 0))
	}
	if f.EndType != EndTriangleUp {
		f.Nodes = append(f.Nodes, geom.NewVertex(f.Width, 0))
	}

	if f.EndType != EndTriangleDown {
		f.Nodes = append(f.Nodes, geom.NewVertex(0, f.Height))
	}
	for i := 0; i <= f.NUnits; i++ {
		f.Nodes = append(f.Nodes, geom.NewVertex(f.EndWidth+float64(i)*f.UnitWidth, f.Height))
	}
	if f.EndType != EndTriangleDown {
		f.Nodes = append(f.Nodes, geom.NewVertex(f.Width, f.Height))
	}
}

// defineParallelChords assigns the chord id runs for the Howe and Pratt
// layouts and returns them for the web pairing rules.
func (f *FlatTruss) defineParallelChords() (bottom, top []int) {
	nBottom := f.NUnits + 1
	if f.EndType != EndTriangleUp {
		nBottom += 2
	}
	nTop := f.NUnits + 1
	if f.EndType != EndTriangleDown {
		nTop += 2
	}
	bottom = intRange(0, nBottom)
	top = intRange(nBottom, nBottom+nTop)
	f.BottomChord = SimpleChord(bottom...)
	f.TopChord = SimpleChord(top...)
	return bottom, top
}

// appendParallelVerticals pairs bottom and top nodes into plumb members,
// skipping the row ends that a triangle end leaves without a partner.
func (f *FlatTruss) appendParallelVerticals(bottom, top []int) {
	startBot, endBot := 0, len(bottom)
	startTop, endTop := 0, len(top)
	switch f.EndType {
	case EndTriangleUp:
		startTop, endTop = 1, -1
	case EndTriangleDown:
		startBot, endBot = 1, -1
	}
	f.WebVerticals = append(f.WebVerticals,
		zipPairs(span(bottom, startBot, endBot), span(top, startTop, endTop))...)
}
