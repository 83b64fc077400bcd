package structural

import (
	"fmt"
	"strings"
)

// Load is one typed load specification inside a case. Implementations
// know how to apply themselves to an engine.
type Load interface {
	// Apply pushes the load into the engine.
	Apply(sys Engine) error
	kind() string
}

// QLoadSpec is a distributed load on one or more members.
type QLoadSpec struct {
	Q         float64
	Direction Direction
	MemberIDs []int
}

func (l QLoadSpec) Apply(sys Engine) error {
	for _, id := range l.MemberIDs {
		if err := sys.ApplyDistributedLoad(id, DistributedLoad{Q: l.Q, Direction: l.Direction}); err != nil {
			return err
		}
	}
	return nil
}

func (l QLoadSpec) kind() string { return "q_load" }

// PointLoadSpec is a nodal force on one or more nodes. Rotation turns
// the force clockwise, in degrees.
type PointLoadSpec struct {
	FX       float64
	FY       float64
	Rotation float64
	NodeIDs  []int
}

func (l PointLoadSpec) Apply(sys Engine) error {
	for _, id := range l.NodeIDs {
		if err := sys.ApplyPointLoad(id, l.FX, l.FY, l.Rotation); err != nil {
			return err
		}
	}
	return nil
}

func (l PointLoadSpec) kind() string { return "point_load" }

// MomentLoadSpec is a nodal moment on one or more nodes.
type MomentLoadSpec struct {
	TY      float64
	NodeIDs []int
}

func (l MomentLoadSpec) Apply(sys Engine) error {
	for _, id := range l.NodeIDs {
		if err := sys.ApplyMomentLoad(id, l.TY); err != nil {
			return err
		}
	}
	return nil
}

func (l MomentLoadSpec) kind() string { return "moment_load" }

// DeadLoadSpec is self weight per unit length on one or more members.
type DeadLoadSpec struct {
	G         float64
	MemberIDs []int
}

func (l DeadLoadSpec) Apply(sys Engine) error {
	for _, id := range l.MemberIDs {
		if err := sys.ApplyDeadLoad(id, l.G); err != nil {
			return err
		}
	}
	return nil
}

func (l DeadLoadSpec) kind() string { return "dead_load" }

// LoadEntry pairs a load with its auto-generated sequence key.
type LoadEntry struct {
	Key  string
	Load Load
}

// LoadCase groups loads under a name so they can be scaled and applied
// together. Entries keep insertion order; keys are "<kind>-<n>" with one
// counter shared across all load kinds. A case never evaluates anything
// itself.
type LoadCase struct {
	name    string
	counter int
	entries []LoadEntry
}

// NewLoadCase returns an empty named load case.
func NewLoadCase(name string) *LoadCase {
	return &LoadCase{name: name}
}

// Name returns the case name.
func (lc *LoadCase) Name() string { return lc.name }

func (lc *LoadCase) add(l Load) {
	lc.counter++
	lc.entries = append(lc.entries, LoadEntry{
		Key:  fmt.Sprintf("%s-%d", l.kind(), lc.counter),
		Load: l,
	})
}

// QLoad records a distributed load on the given members.
func (lc *LoadCase) QLoad(q float64, direction Direction, memberIDs ...int) {
	lc.add(QLoadSpec{Q: q, Direction: direction, MemberIDs: memberIDs})
}

// PointLoad records a nodal force on the given nodes.
func (lc *LoadCase) PointLoad(fx, fy, rotation float64, nodeIDs ...int) {
	lc.add(PointLoadSpec{FX: fx, FY: fy, Rotation: rotation, NodeIDs: nodeIDs})
}

// MomentLoad records a nodal moment on the given nodes.
func (lc *LoadCase) MomentLoad(ty float64, nodeIDs ...int) {
	lc.add(MomentLoadSpec{TY: ty, NodeIDs: nodeIDs})
}

// DeadLoad records self weight on the given members.
func (lc *LoadCase) DeadLoad(g float64, memberIDs ...int) {
	lc.add(DeadLoadSpec{G: g, MemberIDs: memberIDs})
}

// Entries returns the recorded loads in insertion order.
func (lc *LoadCase) Entries() []LoadEntry {
	return append([]LoadEntry(nil), lc.entries...)
}

// Keys returns the entry keys in insertion order.
func (lc *LoadCase) Keys() []string {
	keys := make([]string, 0, len(lc.entries))
	for _, e := range lc.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// ApplyTo pushes every entry into the engine, in insertion order. The
// first failing entry aborts the application.
func (lc *LoadCase) ApplyTo(sys Engine) error {
	for _, e := range lc.entries {
		if err := e.Load.Apply(sys); err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}
	}
	return nil
}

func (lc *LoadCase) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load case %s:", lc.name)
	for _, e := range lc.entries {
		fmt.Fprintf(&b, "\n  %s: %+v", e.Key, e.Load)
	}
	return b.String()
}
