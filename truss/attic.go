package truss

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gotruss/geom"
)

// AtticRoofTruss frames a habitable space under the roof: vertical attic
// walls, a flat ceiling beam, and sloped top chords from the walls to the
// peak. The top chord carries a third "ceiling" segment between the two
// slopes.
type AtticRoofTruss struct {
	RoofTruss

	AtticWidth  float64
	AtticHeight float64

	// WallX, WallY locate the top of an attic wall on the roof slope;
	// CeilingX, CeilingY locate where the ceiling beam meets the slope.
	WallX    float64
	WallY    float64
	CeilingX float64
	CeilingY float64

	// WallCeilingIntersect reports that the ceiling sits exactly on the
	// wall tops, collapsing the ceiling-to-slope nodes into them.
	WallCeilingIntersect bool
}

// NewAtticRoofTruss builds an Attic roof truss. AtticHeight zero places
// the ceiling at the height where the attic walls meet the roof slope;
// any other value must be at least that height.
func NewAtticRoofTruss(p Params) (*AtticRoofTruss, error) {
	if p.AtticWidth <= 0 {
		return nil, fmt.Errorf("attic width must be positive, got %v", p.AtticWidth)
	}
	if p.AtticWidth >= p.Width {
		return nil, fmt.Errorf("attic width %v must be less than truss width %v", p.AtticWidth, p.Width)
	}

	// The attic geometry is needed by node placement, so derive it before
	// the family base runs the construction phases.
	pitch := p.RoofPitchDeg * math.Pi / 180
	wallX := p.Width/2 - p.AtticWidth/2
	wallY := wallX * math.Tan(pitch)

	ceilingY := p.AtticHeight
	if ceilingY == 0 {
		ceilingY = wallY
	}

	peak := (p.Width / 2) * math.Tan(pitch)
	ceilingX := p.Width/2 - (peak-ceilingY)/math.Tan(pitch)

	if ceilingY < wallY-geomTol || ceilingX < wallX-geomTol {
		return nil, fmt.Errorf("attic height %.2f is too low, minimum for this configuration is %.2f",
			ceilingY, wallY)
	}

	rt, err := newRoofTruss("Attic Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &AtticRoofTruss{
		RoofTruss:   rt,
		AtticWidth:  p.AtticWidth,
		AtticHeight: ceilingY,
		WallX:       wallX,
		WallY:       wallY,
		CeilingX:    ceilingX,
		CeilingY:    ceilingY,
		// Exact match: the default ceiling height is assigned from the
		// wall height, so the collapsed layout triggers reliably.
		WallCeilingIntersect: ceilingY == wallY,
	}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (a *AtticRoofTruss) defineNodes() {
	a.Nodes = append(a.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(a.WallX, 0),
		geom.NewVertex(a.Width-a.WallX, 0),
		geom.NewVertex(a.Width, 0),
		geom.NewVertex(a.WallX/2, a.WallY/2),
		geom.NewVertex(a.WallX, a.WallY),
	)
	if !a.WallCeilingIntersect {
		a.Nodes = append(a.Nodes, geom.NewVertex(a.CeilingX, a.CeilingY))
	}
	a.Nodes = append(a.Nodes, geom.NewVertex(a.Width/2, a.Height)) // peak
	if !a.WallCeilingIntersect {
		a.Nodes = append(a.Nodes, geom.NewVertex(a.Width-a.CeilingX, a.CeilingY))
	}
	a.Nodes = append(a.Nodes,
		geom.NewVertex(a.Width-a.WallX, a.WallY),
		geom.NewVertex(a.Width-a.WallX/2, a.WallY/2),
		geom.NewVertex(a.Width/2, a.CeilingY), // midpoint of the ceiling beam
	)
	if a.OverhangLength > 0 {
		a.appendOverhangNodes()
	}
}

func (a *AtticRoofTruss) defineConnectivity() {
	a.BottomChord = SimpleChord(0, 1, 2, 3)

	if a.WallCeilingIntersect {
		left := []int{0, 4, 5, 6}
		right := []int{6, 7, 8, 3}
		if a.OverhangLength > 0 {
			left = append([]int{10}, left...)
			right = append(right, 11)
		}
		a.TopChord = SegmentedChord(
			ChordSegment{Name: "left", IDs: left},
			ChordSegment{Name: "right", IDs: right},
			ChordSegment{Name: "ceiling", IDs: []int{5, 9, 7}},
		)

		a.Webs = append(a.Webs,
			[2]int{1, 4},
			// Geometrically this is the center vertical post from the
			// ceiling midpoint to the peak; it is grouped with the
			// diagonals on purpose.
			[2]int{9, 6},
			[2]int{2, 8},
		)
		a.WebVerticals = append(a.WebVerticals,
			[2]int{1, 5},
			[2]int{2, 7},
		)
		return
	}

	left := []int{0, 4, 5, 6, 7}
	right := []int{7, 8, 9, 10, 3}
	if a.OverhangLength > 0 {
		left = append([]int{12}, left...)
		right = append(right, 13)
	}
	a.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
		ChordSegment{Name: "ceiling", IDs: []int{6, 11, 8}},
	)

	a.Webs = append(a.Webs,
		[2]int{1, 4},
		// Center vertical post from the ceiling midpoint to the peak,
		// grouped with the diagonals on purpose.
		[2]int{11, 7},
		[2]int{2, 10},
	)
	a.WebVerticals = append(a.WebVerticals,
		[2]int{1, 5},
		[2]int{2, 9},
	)
}
