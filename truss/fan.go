package truss

import "github.com/alexiusacademia/gotruss/geom"

// FanRoofTruss radiates diagonals from the bottom third points up to the
// top chord, whose nodes sit at the sixth points of the slope. Two
// verticals steady the lower slope nodes.
type FanRoofTruss struct {
	RoofTruss
}

// NewFanRoofTruss builds a Fan roof truss.
func NewFanRoofTruss(p Params) (*FanRoofTruss, error) {
	rt, err := newRoofTruss("Fan Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &FanRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (f *FanRoofTruss) defineNodes() {
	f.Nodes = append(f.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(f.Width/3, 0),
		geom.NewVertex(2*f.Width/3, 0),
		geom.NewVertex(f.Width, 0),
		geom.NewVertex(f.Width/6, f.Height/3),
		geom.NewVertex(2*f.Width/6, 2*f.Height/3),
		geom.NewVertex(f.Width/2, f.Height), // peak
		geom.NewVertex(4*f.Width/6, 2*f.Height/3),
		geom.NewVertex(5*f.Width/6, f.Height/3),
	)
	if f.OverhangLength > 0 {
		f.appendOverhangNodes()
	}
}

func (f *FanRoofTruss) defineConnectivity() {
	f.BottomChord = SimpleChord(0, 1, 2, 3)

	left := []int{0, 4, 5, 6}
	right := []int{6, 7, 8, 3}
	if f.OverhangLength > 0 {
		left = append([]int{9}, left...)
		right = append(right, 10)
	}
	f.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	f.Webs = append(f.Webs,
		[2]int{1, 4},
		[2]int{1, 6},
		[2]int{2, 6},
		[2]int{2, 8},
	)
	f.WebVerticals = append(f.WebVerticals,
		[2]int{1, 5},
		[2]int{2, 7},
	)
}

// ModifiedFanRoofTruss densifies the fan with top chord nodes at the
// eighth points and quarter-point bottom nodes, giving three verticals and
// six diagonals for long spans.
type ModifiedFanRoofTruss struct {
	RoofTruss
}

// NewModifiedFanRoofTruss builds a Modified Fan roof truss.
func NewModifiedFanRoofTruss(p Params) (*ModifiedFanRoofTruss, error) {
	rt, err := newRoofTruss("Modified Fan Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &ModifiedFanRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (m *ModifiedFanRoofTruss) defineNodes() {
	m.Nodes = append(m.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(m.Width/4, 0),
		geom.NewVertex(m.Width/2, 0),
		geom.NewVertex(3*m.Width/4, 0),
		geom.NewVertex(m.Width, 0),
		geom.NewVertex(m.Width/8, m.Height/4),
		geom.NewVertex(2*m.Width/8, 2*m.Height/4),
		geom.NewVertex(3*m.Width/8, 3*m.Height/4),
		geom.NewVertex(m.Width/2, m.Height), // peak
		geom.NewVertex(5*m.Width/8, 3*m.Height/4),
		geom.NewVertex(6*m.Width/8, 2*m.Height/4),
		geom.NewVertex(7*m.Width/8, m.Height/4),
	)
	if m.OverhangLength > 0 {
		m.appendOverhangNodes()
	}
}

func (m *ModifiedFanRoofTruss) defineConnectivity() {
	m.BottomChord = SimpleChord(0, 1, 2, 3, 4)

	left := []int{0, 5, 6, 7, 8}
	right := []int{8, 9, 10, 11, 4}
	if m.OverhangLength > 0 {
		left = append([]int{12}, left...)
		right = append(right, 13)
	}
	m.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	m.Webs = append(m.Webs,
		[2]int{1, 5},
		[2]int{1, 7},
		[2]int{2, 7},
		[2]int{2, 9},
		[2]int{3, 9},
		[2]int{3, 11},
	)
	m.WebVerticals = append(m.WebVerticals,
		[2]int{1, 6},
		[2]int{2, 8}, // center vertical
		[2]int{3, 10},
	)
}
