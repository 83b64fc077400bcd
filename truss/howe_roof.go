package truss

import "github.com/alexiusacademia/gotruss/geom"

// HoweRoofTruss combines quarter-point verticals with diagonals sloping
// from the bottom center up to the half-height top chord nodes, putting
// the diagonals in compression under gravity loads.
type HoweRoofTruss struct {
	RoofTruss
}

// NewHoweRoofTruss builds a Howe roof truss.
func NewHoweRoofTruss(p Params) (*HoweRoofTruss, error) {
	rt, err := newRoofTruss("Howe Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &HoweRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (h *HoweRoofTruss) defineNodes() {
	h.Nodes = append(h.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(h.Width/4, 0),
		geom.NewVertex(h.Width/2, 0),
		geom.NewVertex(3*h.Width/4, 0),
		geom.NewVertex(h.Width, 0),
		geom.NewVertex(h.Width/4, h.Height/2),
		geom.NewVertex(h.Width/2, h.Height), // peak
		geom.NewVertex(3*h.Width/4, h.Height/2),
	)
	if h.OverhangLength > 0 {
		h.appendOverhangNodes()
	}
}

func (h *HoweRoofTruss) defineConnectivity() {
	h.BottomChord = SimpleChord(0, 1, 2, 3, 4)

	left := []int{0, 5, 6}
	right := []int{6, 7, 4}
	if h.OverhangLength > 0 {
		left = append([]int{8}, left...)
		right = append(right, 9)
	}
	h.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	h.Webs = append(h.Webs,
		[2]int{2, 5},
		[2]int{2, 7},
	)
	h.WebVerticals = append(h.WebVerticals,
		[2]int{1, 5},
		[2]int{2, 6}, // center vertical
		[2]int{3, 7},
	)
}

// DoubleHoweRoofTruss extends the Howe pattern to sixth-point panels with
// five verticals and four diagonals, for long spans or heavy loading.
type DoubleHoweRoofTruss struct {
	RoofTruss
}

// NewDoubleHoweRoofTruss builds a Double Howe roof truss.
func NewDoubleHoweRoofTruss(p Params) (*DoubleHoweRoofTruss, error) {
	rt, err := newRoofTruss("Double Howe Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &DoubleHoweRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *DoubleHoweRoofTruss) defineNodes() {
	d.Nodes = append(d.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(d.Width/6, 0),
		geom.NewVertex(2*d.Width/6, 0),
		geom.NewVertex(d.Width/2, 0),
		geom.NewVertex(4*d.Width/6, 0),
		geom.NewVertex(5*d.Width/6, 0),
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

func (d *DoubleHoweRoofTruss) defineConnectivity() {
	d.BottomChord = SimpleChord(0, 1, 2, 3, 4, 5, 6)

	left := []int{0, 7, 8, 9}
	right := []int{9, 10, 11, 6}
	if d.OverhangLength > 0 {
		left = append([]int{12}, left...)
		right = append(right, 13)
	}
	d.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	d.Webs = append(d.Webs,
		[2]int{2, 7},
		[2]int{3, 8},
		[2]int{3, 10},
		[2]int{4, 11},
	)
	d.WebVerticals = append(d.WebVerticals,
		[2]int{1, 7},
		[2]int{2, 8},
		[2]int{3, 9}, // center vertical
		[2]int{4, 10},
		[2]int{5, 11},
	)
}
