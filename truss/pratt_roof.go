package truss

import "github.com/alexiusacademia/gotruss/geom"

// PrattRoofTruss combines quarter-point verticals with diagonals sloping
// from the outer bottom nodes up to the peak, putting the diagonals in
// tension under gravity loads.
type PrattRoofTruss struct {
	RoofTruss
}

// NewPrattRoofTruss builds a Pratt roof truss.
func NewPrattRoofTruss(p Params) (*PrattRoofTruss, error) {
	rt, err := newRoofTruss("Pratt Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &PrattRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (pt *PrattRoofTruss) defineNodes() {
	pt.Nodes = append(pt.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(pt.Width/4, 0),
		geom.NewVertex(pt.Width/2, 0),
		geom.NewVertex(3*pt.Width/4, 0),
		geom.NewVertex(pt.Width, 0),
		geom.NewVertex(pt.Width/4, pt.Height/2),
		geom.NewVertex(pt.Width/2, pt.Height), // peak
		geom.NewVertex(3*pt.Width/4, pt.Height/2),
	)
	if pt.OverhangLength > 0 {
		pt.appendOverhangNodes()
	}
}

func (pt *PrattRoofTruss) defineConnectivity() {
	pt.BottomChord = SimpleChord(0, 1, 2, 3, 4)

	left := []int{0, 5, 6}
	right := []int{6, 7, 4}
	if pt.OverhangLength > 0 {
		left = append([]int{8}, left...)
		right = append(right, 9)
	}
	pt.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	pt.Webs = append(pt.Webs,
		[2]int{1, 6},
		[2]int{3, 6},
	)
	pt.WebVerticals = append(pt.WebVerticals,
		[2]int{1, 5},
		[2]int{2, 6}, // center vertical
		[2]int{3, 7},
	)
}
