package truss

// HoweFlatTruss is a parallel-chord truss whose diagonals slope toward
// midspan, putting them in compression and the verticals in tension under
// gravity loads.
type HoweFlatTruss struct {
	FlatTruss
}

// NewHoweFlatTruss builds a Howe flat truss.
func NewHoweFlatTruss(p Params) (*HoweFlatTruss, error) {
	ft, err := newFlatTruss("Howe Flat Truss", p)
	if err != nil {
		return nil, err
	}
	t := &HoweFlatTruss{FlatTruss: ft}
	if err := build(t, p.System); err != nil {
		return nil, err
	}
	return t, nil
}

func (h *HoweFlatTruss) defineNodes() {
	h.appendParallelChordRows()
}

func (h *HoweFlatTruss) defineConnectivity() {
	bottom, top := h.defineParallelChords()
	nBottom, nTop := len(bottom), len(top)

	// Diagonals rise from the ends toward midspan, mirrored about the
	// center. Flat and triangle-up ends shift where the top row pairing
	// starts; triangle-up additionally gets outward end diagonals.
	startTop := 0
	firstTopRev := nTop - 1
	switch h.EndType {
	case EndTriangleUp:
		h.Webs = append(h.Webs,
			[2]int{bottom[0], top[0]},
			[2]int{bottom[nBottom-1], top[nTop-1]})
		startTop = 2
		firstTopRev = nTop - 3
	case EndFlat:
		startTop = 1
		firstTopRev = nTop - 2
	}

	midBot, midTop := nBottom/2, nTop/2
	h.Webs = append(h.Webs,
		zipPairs(span(bottom, 0, midBot+1), span(top, startTop, midTop+1))...)
	h.Webs = append(h.Webs,
		zipPairs(descend(bottom, nBottom-1, midBot), descend(top, firstTopRev, midTop))...)

	h.appendParallelVerticals(bottom, top)
}
