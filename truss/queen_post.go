package truss

import "github.com/alexiusacademia/gotruss/geom"

// QueenPostRoofTruss has top chord nodes at the quarter points, diagonals
// from the bottom center out to them, and a center vertical up to the
// peak. Suited to medium spans.
type QueenPostRoofTruss struct {
	RoofTruss
}

// NewQueenPostRoofTruss builds a Queen Post roof truss.
func NewQueenPostRoofTruss(p Params) (*QueenPostRoofTruss, error) {
	rt, err := newRoofTruss("Queen Post Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &QueenPostRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (q *QueenPostRoofTruss) defineNodes() {
	q.Nodes = append(q.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(q.Width/2, 0),
		geom.NewVertex(q.Width, 0),
		geom.NewVertex(q.Width/4, q.Height/2),
		geom.NewVertex(q.Width/2, q.Height), // peak
		geom.NewVertex(3*q.Width/4, q.Height/2),
	)
	if q.OverhangLength > 0 {
		q.appendOverhangNodes()
	}
}

func (q *QueenPostRoofTruss) defineConnectivity() {
	q.BottomChord = SimpleChord(0, 1, 2)

	left := []int{0, 3, 4}
	right := []int{4, 5, 2}
	if q.OverhangLength > 0 {
		left = append([]int{6}, left...)
		right = append(right, 7)
	}
	q.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	q.Webs = append(q.Webs,
		[2]int{1, 3},
		[2]int{1, 5},
	)
	// The center vertical ties the bottom center to the peak, not to a
	// quarter-point node.
	q.WebVerticals = append(q.WebVerticals, [2]int{1, 4})
}

// ModifiedQueenPostRoofTruss extends the Queen Post pattern with top chord
// nodes at the sixth points and a denser fan of diagonals, for medium to
// long spans.
type ModifiedQueenPostRoofTruss struct {
	RoofTruss
}

// NewModifiedQueenPostRoofTruss builds a Modified Queen Post roof truss.
func NewModifiedQueenPostRoofTruss(p Params) (*ModifiedQueenPostRoofTruss, error) {
	rt, err := newRoofTruss("Modified Queen Post Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &ModifiedQueenPostRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (m *ModifiedQueenPostRoofTruss) defineNodes() {
	m.Nodes = append(m.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(m.Width/4, 0),
		geom.NewVertex(m.Width/2, 0),
		geom.NewVertex(3*m.Width/4, 0),
		geom.NewVertex(m.Width, 0),
		geom.NewVertex(m.Width/6, m.Height/3),
		geom.NewVertex(2*m.Width/6, 2*m.Height/3),
		geom.NewVertex(m.Width/2, m.Height), // peak
		geom.NewVertex(4*m.Width/6, 2*m.Height/3),
		geom.NewVertex(5*m.Width/6, m.Height/3),
	)
	if m.OverhangLength > 0 {
		m.appendOverhangNodes()
	}
}

func (m *ModifiedQueenPostRoofTruss) defineConnectivity() {
	m.BottomChord = SimpleChord(0, 1, 2, 3, 4)

	left := []int{0, 5, 6, 7}
	right := []int{7, 8, 9, 4}
	if m.OverhangLength > 0 {
		left = append([]int{10}, left...)
		right = append(right, 11)
	}
	m.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	m.Webs = append(m.Webs,
		[2]int{1, 5},
		[2]int{1, 6},
		[2]int{2, 6},
		[2]int{2, 8},
		[2]int{3, 8},
		[2]int{3, 9},
	)
	m.WebVerticals = append(m.WebVerticals, [2]int{2, 7}) // center vertical
}
