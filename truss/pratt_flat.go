package truss

// PrattFlatTruss is a parallel-chord truss whose diagonals slope away from
// midspan, putting them in tension and the verticals in compression under
// gravity loads.
type PrattFlatTruss struct {
	FlatTruss
}

// NewPrattFlatTruss builds a Pratt flat truss.
func NewPrattFlatTruss(p Params) (*PrattFlatTruss, error) {
	ft, err := newFlatTruss("Pratt Flat Truss", p)
	if err != nil {
		return nil, err
	}
	t := &PrattFlatTruss{FlatTruss: ft}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (pt *PrattFlatTruss) defineNodes() {
	pt.appendParallelChordRows()
}

func (pt *PrattFlatTruss) defineConnectivity() {
	bottom, top := pt.defineParallelChords()
	nBottom, nTop := len(bottom), len(top)

	// Mirror image of the Howe pairing: the bottom row pairing shifts at
	// the ends, and triangle-down gets outward end diagonals.
	startBot := 0
	firstBotRev := nBottom - 1
	switch pt.EndType {
	case EndTriangleDown:
		pt.Webs = append(pt.Webs,
			[2]int{top[0], bottom[0]},
			[2]int{top[nTop-1], bottom[nBottom-1]})
		startBot = 2
		firstBotRev = nBottom - 3
	case EndFlat:
		startBot = 1
		firstBotRev = nBottom - 2
	}

	midBot, midTop := nBottom/2, nTop/2
	pt.Webs = append(pt.Webs,
		zipPairs(span(bottom, startBot, midBot+1), span(top, 0, midTop+1))...)
	pt.Webs = append(pt.Webs,
		zipPairs(descend(bottom, firstBotRev, midBot), descend(top, nTop-1, midTop))...)

	pt.appendParallelVerticals(bottom, top)
}
