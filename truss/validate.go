package truss

import (
	"fmt"

	"github.com/alexiusacademia/gotruss/geom"
)

// geomTol is the absolute tolerance for duplicate-node and zero-length
// checks, in model length units.
const geomTol = 1e-6

// Validate checks the generated geometry and connectivity: every id
// referenced by a chord, diagonal or vertical must name an existing node,
// no two nodes may coincide, and no member may have zero length. Checks
// run in that order and the first violation is returned.
//
// Validation is on demand, it does not run as part of construction.
func (t *Truss) Validate() error {
	maxID := len(t.Nodes) - 1

	if err := checkChordIDs(t.TopChord, "top chord", maxID); err != nil {
		return err
	}
	if err := checkChordIDs(t.BottomChord, "bottom chord", maxID); err != nil {
		return err
	}
	if err := checkPairIDs(t.Webs, "web diagonal", maxID); err != nil {
		return err
	}
	if err := checkPairIDs(t.WebVerticals, "web vertical", maxID); err != nil {
		return err
	}

	if err := checkDuplicateNodes(t.Nodes); err != nil {
		return err
	}

	if err := checkChordLengths(t.Nodes, t.TopChord, "top chord"); err != nil {
		return err
	}
	if err := checkChordLengths(t.Nodes, t.BottomChord, "bottom chord"); err != nil {
		return err
	}
	for i, pair := range t.Webs {
		if err := checkMemberLength(t.Nodes, pair[0], pair[1], fmt.Sprintf("web diagonal %d", i)); err != nil {
			return err
		}
	}
	for i, pair := range t.WebVerticals {
		if err := checkMemberLength(t.Nodes, pair[0], pair[1], fmt.Sprintf("web vertical %d", i)); err != nil {
			return err
		}
	}
	return nil
}

func checkNodeID(id, maxID int, name string) error {
	if id < 0 || id > maxID {
		return fmt.Errorf("%s references invalid node id %d, valid range 0-%d", name, id, maxID)
	}
	return nil
}

func checkChordIDs(chord Chord, name string, maxID int) error {
	if chord.IsSegmented() {
		for _, seg := range chord.segments {
			segName := fmt.Sprintf("%s segment %q", name, seg.Name)
			for _, id := range seg.IDs {
				if err := checkNodeID(id, maxID, segName); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, id := range chord.ids {
		if err := checkNodeID(id, maxID, name); err != nil {
			return err
		}
	}
	return nil
}

func checkPairIDs(pairs [][2]int, name string, maxID int) error {
	for i, pair := range pairs {
		indexed := fmt.Sprintf("%s %d", name, i)
		if err := checkNodeID(pair[0], maxID, indexed); err != nil {
			return err
		}
		if err := checkNodeID(pair[1], maxID, indexed); err != nil {
			return err
		}
	}
	return nil
}

func checkDuplicateNodes(nodes []geom.Vertex) error {
	for i, a := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if geom.Colocated(a, nodes[j], geomTol) {
				return fmt.Errorf("duplicate nodes at position (%.6f, %.6f): node %d and node %d",
					a.X, a.Y, i, j)
			}
		}
	}
	return nil
}

func checkMemberLength(nodes []geom.Vertex, a, b int, name string) error {
	va, vb := nodes[a], nodes[b]
	if vb.Sub(va).Length() < geomTol {
		return fmt.Errorf("zero-length element in %s: nodes %d and %d at position (%.6f, %.6f)",
			name, a, b, va.X, va.Y)
	}
	return nil
}

func checkChordLengths(nodes []geom.Vertex, chord Chord, name string) error {
	if chord.IsSegmented() {
		for _, seg := range chord.segments {
			segName := fmt.Sprintf("%s segment %q", name, seg.Name)
			for i := 0; i+1 < len(seg.IDs); i++ {
				if err := checkMemberLength(nodes, seg.IDs[i], seg.IDs[i+1], segName); err != nil {
					return err
				}
			}
		}
		return nil
	}
	ids := chord.ids
	for i := 0; i+1 < len(ids); i++ {
		if err := checkMemberLength(nodes, ids[i], ids[i+1], name); err != nil {
			return err
		}
	}
	return nil
}
