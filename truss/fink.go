package truss

import "github.com/alexiusacademia/gotruss/geom"

// FinkRoofTruss runs its diagonals in a W between the bottom third points
// and the quarter-height top chord nodes. No verticals. A common choice
// for medium spans.
type FinkRoofTruss struct {
	RoofTruss
}

// NewFinkRoofTruss builds a Fink roof truss.
func NewFinkRoofTruss(p Params) (*FinkRoofTruss, error) {
	rt, err := newRoofTruss("Fink Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &FinkRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (f *FinkRoofTruss) defineNodes() {
	f.Nodes = append(f.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(f.Width/3, 0),
		geom.NewVertex(2*f.Width/3, 0),
		geom.NewVertex(f.Width, 0),
		geom.NewVertex(f.Width/4, f.Height/2),
		geom.NewVertex(f.Width/2, f.Height), // peak
		geom.NewVertex(3*f.Width/4, f.Height/2),
	)
	if f.OverhangLength > 0 {
		f.appendOverhangNodes()
	}
}

func (f *FinkRoofTruss) defineConnectivity() {
	f.BottomChord = SimpleChord(0, 1, 2, 3)

	left := []int{0, 4, 5}
	right := []int{5, 6, 3}
	if f.OverhangLength > 0 {
		left = append([]int{7}, left...)
		right = append(right, 8)
	}
	f.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	f.Webs = append(f.Webs,
		[2]int{1, 4},
		[2]int{1, 5},
		[2]int{2, 5},
		[2]int{2, 6},
	)
}

// DoubleFinkRoofTruss extends the Fink W into two: bottom chord nodes at
// the fifth points and top chord nodes at the sixth points, for long spans
// where a single W would leave excessive member lengths.
type DoubleFinkRoofTruss struct {
	RoofTruss
}

// NewDoubleFinkRoofTruss builds a Double Fink roof truss.
func NewDoubleFinkRoofTruss(p Params) (*DoubleFinkRoofTruss, error) {
	rt, err := newRoofTruss("Double Fink Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &DoubleFinkRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *DoubleFinkRoofTruss) defineNodes() {
	d.Nodes = append(d.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(d.Width/5, 0),
		geom.NewVertex(2*d.Width/5, 0),
		geom.NewVertex(3*d.Width/5, 0),
		geom.NewVertex(4*d.Width/5, 0),
		geom.NewVertex(d.Width, 0),
		geom.NewVertex(d.Width/6, d.Height/3),
		geom.NewVertex(2*d.Width/6, 2*d.Height/3),
		geom.NewVertex(d.Width/2, d.Height), // peak
		geom.NewVertex(4*d.Width/6, 2*d.Height/3),
		geom.NewVertex(5*d.Width/6, d.Height/3),
	)
	if d.OverhangLength > 0 {
		d.appendOverhangNodes()
	}
}

func (d *DoubleFinkRoofTruss) defineConnectivity() {
	d.BottomChord = SimpleChord(0, 1, 2, 3, 4, 5)

	left := []int{0, 6, 7, 8}
	right := []int{8, 9, 10, 5}
	if d.OverhangLength > 0 {
		left = append([]int{11}, left...)
		right = append(right, 12)
	}
	d.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	d.Webs = append(d.Webs,
		[2]int{1, 6},
		[2]int{1, 7},
		[2]int{2, 7},
		[2]int{2, 8},
		[2]int{3, 8},
		[2]int{3, 9},
		[2]int{4, 9},
		[2]int{4, 10},
	)
}
