package truss

import "github.com/alexiusacademia/gotruss/geom"

// KingPostRoofTruss is the simplest pitched truss: two sloped top chords
// meeting at the peak and a single center vertical (the king post). No
// diagonals. Suited to short spans.
type KingPostRoofTruss struct {
	RoofTruss
}

// NewKingPostRoofTruss builds a King Post roof truss.
func NewKingPostRoofTruss(p Params) (*KingPostRoofTruss, error) {
	rt, err := newRoofTruss("King Post Roof Truss", p)
	if err != nil {
		return nil, err
	}
	t := &KingPostRoofTruss{RoofTruss: rt}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (k *KingPostRoofTruss) defineNodes() {
	k.Nodes = append(k.Nodes,
		geom.NewVertex(0, 0),
		geom.NewVertex(k.Width/2, 0),
		geom.NewVertex(k.Width, 0),
		geom.NewVertex(k.Width/2, k.Height), // peak
	)
	if k.OverhangLength > 0 {
		k.appendOverhangNodes()
	}
}

func (k *KingPostRoofTruss) defineConnectivity() {
	k.BottomChord = SimpleChord(0, 1, 2)

	left := []int{0, 3}
	right := []int{3, 2}
	if k.OverhangLength > 0 {
		left = append([]int{4}, left...)
		right = append(right, 5)
	}
	k.TopChord = SegmentedChord(
		ChordSegment{Name: "left", IDs: left},
		ChordSegment{Name: "right", IDs: right},
	)

	k.WebVerticals = append(k.WebVerticals, [2]int{1, 3}) // king post
}
