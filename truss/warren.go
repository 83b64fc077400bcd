package truss

import "github.com/alexiusacademia/gotruss/geom"

// WarrenFlatTruss is a parallel-chord truss with alternating diagonals and
// no verticals, forming a zigzag of isosceles triangles. Only the
// triangle_down and triangle_up end types apply; the panel count is always
// kept even.
type WarrenFlatTruss struct {
	FlatTruss
}

// NewWarrenFlatTruss builds a Warren flat truss.
func NewWarrenFlatTruss(p Params) (*WarrenFlatTruss, error) {
	// The zigzag pairing requires an even panel count and a fixed end
	// fraction; the end panel then widens by half a unit so the offset
	// rows stay centered on the span.
	p.MinEndFraction = 0.5
	p.AllowOddUnits = false
	ft, err := newFlatTruss("Warren Flat Truss", p)
	if err != nil {
		return nil, err
	}
	ft.EndWidth += p.UnitWidth / 2

	t := &WarrenFlatTruss{FlatTruss: ft}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (w *WarrenFlatTruss) defineNodes() {
	if w.EndType == EndTriangleDown {
		w.Nodes = append(w.Nodes, geom.NewVertex(0, 0))
	} else {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.EndWidth-w.UnitWidth/2, 0))
	}
	for i := 0; i <= w.NUnits; i++ {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.EndWidth+float64(i)*w.UnitWidth, 0))
	}
	if w.EndType == EndTriangleDown {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.Width, 0))
	} else {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.Width-(w.EndWidth-w.UnitWidth/2), 0))
	}

	if w.EndType == EndTriangleUp {
		w.Nodes = append(w.Nodes, geom.NewVertex(0, w.Height))
	} else {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.EndWidth-w.UnitWidth/2, w.Height))
	}
	for i := 0; i <= w.NUnits; i++ {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.EndWidth+float64(i)*w.UnitWidth, w.Height))
	}
	if w.EndType == EndTriangleUp {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.Width, w.Height))
	} else {
		w.Nodes = append(w.Nodes, geom.NewVertex(w.Width-(w.EndWidth-w.UnitWidth/2), w.Height))
	}
}

func (w *WarrenFlatTruss) defineConnectivity() {
	nBottom := w.NUnits
	if w.EndType == EndTriangleDown {
		nBottom++
	}
	nTop := w.NUnits
	if w.EndType == EndTriangleUp {
		nTop++
	}
	bottom := intRange(0, nBottom)
	top := intRange(nBottom, nBottom+nTop)
	w.BottomChord = SimpleChord(bottom...)
	w.TopChord = SimpleChord(top...)

	// Diagonals sloping up from bottom left to top right.
	topStart := 1
	if w.EndType == EndTriangleDown {
		topStart = 0
	}
	w.Webs = append(w.Webs, zipPairs(bottom, span(top, topStart, nTop))...)

	// Diagonals sloping down from top left to bottom right.
	botStart := 1
	if w.EndType == EndTriangleUp {
		botStart = 0
	}
	w.Webs = append(w.Webs, zipPairs(top, span(bottom, botStart, nBottom))...)
}
