// Package truss generates idealized 2D truss structures for a catalogue of
// standard topologies: parallel-chord flat trusses (Howe, Pratt, Warren) and
// peaked roof trusses (King Post, Queen Post, Fink, Howe, Pratt, Fan and
// their modified or doubled variants, plus Attic). Given a handful of
// geometric parameters each topology deterministically produces node
// coordinates, member connectivity and support conditions, recorded into a
// structural model ready for an analysis engine.
package truss

import (
	"fmt"

	"github.com/alexiusacademia/gotruss/geom"
	"github.com/alexiusacademia/gotruss/structural"
)

// SupportType selects how the two end supports are resolved.
type SupportType string

const (
	// SupportSimple places a pinned support on the primary side and a
	// roller on the other.
	SupportSimple SupportType = "simple"
	// SupportPinned places pinned supports on both sides.
	SupportPinned SupportType = "pinned"
	// SupportFixed places fixed supports on both sides.
	SupportFixed SupportType = "fixed"
)

// ChordSide names one of the two chords of a truss.
type ChordSide string

const (
	ChordTop    ChordSide = "top"
	ChordBottom ChordSide = "bottom"
)

// SupportDef assigns a support kind to a node. Definitions keep insertion
// order; redefining a node replaces its kind in place.
type SupportDef struct {
	Node int
	Kind structural.SupportKind
}

// Params collects the construction parameters shared by the topology
// constructors and the factory. Zero values select the documented defaults,
// so a literal with only the geometric fields set is enough for most uses.
type Params struct {
	// Width is the total span. Required by every topology.
	Width float64 `yaml:"width"`
	// Height is the truss height. Flat family only; roof trusses derive
	// height from Width and RoofPitchDeg.
	Height float64 `yaml:"height"`

	// UnitWidth is the panel width of a flat truss.
	UnitWidth float64 `yaml:"unit_width"`
	// EndType shapes the end panels of a flat truss. Empty means
	// EndTriangleDown. Warren trusses support only the triangle forms.
	EndType EndType `yaml:"end_type"`
	// SupportsLoc places flat-truss supports on the bottom chord (default),
	// the top chord, or both.
	SupportsLoc SupportLocation `yaml:"supports_loc"`
	// MinEndFraction is the minimum end-panel width as a fraction of
	// UnitWidth, in (0, 1]. Zero means 0.5.
	MinEndFraction float64 `yaml:"min_end_fraction"`
	// AllowOddUnits disables the even-panel-count adjustment that keeps
	// flat trusses symmetric.
	AllowOddUnits bool `yaml:"allow_odd_units"`

	// RoofPitchDeg is the roof pitch in degrees, exclusive range (0, 90).
	// Roof family only.
	RoofPitchDeg float64 `yaml:"roof_pitch_deg"`
	// OverhangLength extends the top chord past the eaves along the roof
	// slope. Must be non-negative.
	OverhangLength float64 `yaml:"overhang_length"`

	// AtticWidth is the interior width of the attic floor. Attic only.
	AtticWidth float64 `yaml:"attic_width"`
	// AtticHeight is the attic ceiling height. Zero places the ceiling at
	// the height where the attic walls meet the roof slope.
	AtticHeight float64 `yaml:"attic_height"`

	// Section overrides. Nil selects structural.DefaultSection, and the
	// verticals default to the web section.
	TopChordSection     *structural.Section `yaml:"top_chord_section"`
	BottomChordSection  *structural.Section `yaml:"bottom_chord_section"`
	WebSection          *structural.Section `yaml:"web_section"`
	WebVerticalsSection *structural.Section `yaml:"web_verticals_section"`

	// TopChordPinned and BottomChordPinned release the chord joints
	// instead of the default continuous (moment) connection. Web members
	// are always pinned.
	TopChordPinned    bool `yaml:"top_chord_pinned"`
	BottomChordPinned bool `yaml:"bottom_chord_pinned"`

	// SupportsType resolves the two end supports. Empty means SupportSimple.
	SupportsType SupportType `yaml:"supports_type"`

	// System receives the generated nodes, members and supports. Nil means
	// a fresh in-memory structural.Model.
	System structural.System `yaml:"-"`
}

// Truss is the shared state of every topology: the input parameters, the
// generated geometry and connectivity, and the member ids handed back by
// the structural model during assembly.
//
// Construction runs three phases exactly once, in order: node placement,
// connectivity, supports. Assembly then pushes the result into the
// structural model, creating one member per consecutive id pair within
// each chord segment and one per diagonal or vertical pair.
type Truss struct {
	TypeName string
	Width    float64
	Height   float64

	TopChordSection     structural.Section
	BottomChordSection  structural.Section
	WebSection          structural.Section
	WebVerticalsSection structural.Section

	TopChordContinuous    bool
	BottomChordContinuous bool
	SupportsType          SupportType

	// Nodes are positions indexed by node id, in placement order. Ids are
	// stable: nodes are never reordered or removed after placement.
	Nodes []geom.Vertex

	// TopChord and BottomChord hold node ids. Webs and WebVerticals hold
	// node id pairs for the diagonal and plumb members.
	TopChord     Chord
	BottomChord  Chord
	Webs         [][2]int
	WebVerticals [][2]int

	Supports []SupportDef

	// Member ids assigned by the structural model, grouped like the
	// connectivity they came from.
	TopChordElements    Chord
	BottomChordElements Chord
	WebElements         []int
	WebVerticalElements []int

	System structural.System
}

// topology is what each concrete truss type supplies on top of the shared
// base: node placement and connectivity. Support placement comes from the
// family bases unless a type overrides it.
type topology interface {
	base() *Truss
	defineNodes()
	defineConnectivity()
	defineSupports()
}

func (t *Truss) base() *Truss { return t }

// newBaseTruss validates the shared parameters and seeds the base state.
// Containers start nil so every instance owns independent storage.
func newBaseTruss(typeName string, p Params, width, height float64) (Truss, error) {
	if width <= 0 {
		return Truss{}, fmt.Errorf("width must be positive, got %v", width)
	}
	if height <= 0 {
		return Truss{}, fmt.Errorf("height must be positive, got %v", height)
	}

	sectionOr := func(s *structural.Section, fallback structural.Section) structural.Section {
		if s != nil {
			return *s
		}
		return fallback
	}
	web := sectionOr(p.WebSection, structural.DefaultSection())
	supports := p.SupportsType
	if supports == "" {
		supports = SupportSimple
	}

	return Truss{
		TypeName:              typeName,
		Width:                 width,
		Height:                height,
		TopChordSection:       sectionOr(p.TopChordSection, structural.DefaultSection()),
		BottomChordSection:    sectionOr(p.BottomChordSection, structural.DefaultSection()),
		WebSection:            web,
		WebVerticalsSection:   sectionOr(p.WebVerticalsSection, web),
		TopChordContinuous:    !p.TopChordPinned,
		BottomChordContinuous: !p.BottomChordPinned,
		SupportsType:          supports,
	}, nil
}

// build drives the construction protocol for a topology and assembles the
// result into the structural model. Called exactly once per instance by
// the topology constructors.
func build(topo topology, sys structural.System) error {
	t := topo.base()
	if sys == nil {
		sys = structural.NewModel()
	}
	t.System = sys
	topo.defineNodes()
	topo.defineConnectivity()
	topo.defineSupports()
	return t.assemble()
}

func (t *Truss) assemble() error {
	for i, pos := range t.Nodes {
		if err := t.System.AddNode(pos, i); err != nil {
			return err
		}
	}

	var err error
	t.BottomChordElements, err = t.addChordMembers(t.BottomChord, t.BottomChordSection, t.BottomChordContinuous)
	if err != nil {
		return err
	}
	t.TopChordElements, err = t.addChordMembers(t.TopChord, t.TopChordSection, t.TopChordContinuous)
	if err != nil {
		return err
	}
	t.WebElements, err = t.addPairMembers(t.Webs, t.WebSection)
	if err != nil {
		return err
	}
	t.WebVerticalElements, err = t.addPairMembers(t.WebVerticals, t.WebVerticalsSection)
	if err != nil {
		return err
	}

	for _, s := range t.Supports {
		switch s.Kind {
		case structural.SupportFixed:
			err = t.System.AddSupportFixed(s.Node)
		case structural.SupportPinned:
			err = t.System.AddSupportPinned(s.Node)
		case structural.SupportRoller:
			err = t.System.AddSupportRoller(s.Node)
		default:
			err = fmt.Errorf("unknown support kind %q for node %d", s.Kind, s.Node)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// addChordMembers creates one member per consecutive id pair within each
// chord segment, preserving the chord's shape in the returned member ids.
func (t *Truss) addChordMembers(chord Chord, section structural.Section, continuous bool) (Chord, error) {
	release := structural.Continuous
	if !continuous {
		release = structural.PinnedEnds
	}
	if !chord.IsSegmented() {
		ids, err := t.addRun(chord.IDs(), section, release)
		if err != nil {
			return Chord{}, err
		}
		return SimpleChord(ids...), nil
	}
	segments := make([]ChordSegment, 0, len(chord.segments))
	for _, seg := range chord.segments {
		ids, err := t.addRun(seg.IDs, section, release)
		if err != nil {
			return Chord{}, err
		}
		segments = append(segments, ChordSegment{Name: seg.Name, IDs: ids})
	}
	return SegmentedChord(segments...), nil
}

func (t *Truss) addRun(nodeIDs []int, section structural.Section, release structural.Release) ([]int, error) {
	ids := make([]int, 0, max(len(nodeIDs)-1, 0))
	for i := 0; i+1 < len(nodeIDs); i++ {
		id, err := t.System.AddMember(t.Nodes[nodeIDs[i]], t.Nodes[nodeIDs[i+1]], section, release)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// addPairMembers creates the web members. Webs are always pinned at both
// ends regardless of the chord continuity flags.
func (t *Truss) addPairMembers(pairs [][2]int, section structural.Section) ([]int, error) {
	ids := make([]int, 0, len(pairs))
	for _, p := range pairs {
		id, err := t.System.AddMember(t.Nodes[p[0]], t.Nodes[p[1]], section, structural.PinnedEnds)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// setSupport records a support for a node, replacing the kind if the node
// already has one.
func (t *Truss) setSupport(node int, kind structural.SupportKind) {
	for i := range t.Supports {
		if t.Supports[i].Node == node {
			t.Supports[i].Kind = kind
			return
		}
	}
	t.Supports = append(t.Supports, SupportDef{Node: node, Kind: kind})
}

// resolveSupportKind maps the support policy to a concrete kind. Under
// SupportSimple the primary (left) side is pinned and the other rolls.
func (t *Truss) resolveSupportKind(primary bool) structural.SupportKind {
	switch t.SupportsType {
	case SupportPinned:
		return structural.SupportPinned
	case SupportFixed:
		return structural.SupportFixed
	}
	if primary {
		return structural.SupportPinned
	}
	return structural.SupportRoller
}

func (t *Truss) chordElements(side ChordSide) (Chord, error) {
	switch side {
	case ChordTop:
		return t.TopChordElements, nil
	case ChordBottom:
		return t.BottomChordElements, nil
	}
	return Chord{}, fmt.Errorf("chord must be either %q or %q, got %q", ChordTop, ChordBottom, side)
}

// MemberIDsOfChord returns the member ids of a chord. Segmented chords
// concatenate their segments in definition order.
func (t *Truss) MemberIDsOfChord(side ChordSide) ([]int, error) {
	c, err := t.chordElements(side)
	if err != nil {
		return nil, err
	}
	return c.IDs(), nil
}

// MemberIDsOfChordSegment returns the member ids of one named segment.
// Chords without segments return their full run, matching the behavior of
// MemberIDsOfChord.
func (t *Truss) MemberIDsOfChordSegment(side ChordSide, segment string) ([]int, error) {
	c, err := t.chordElements(side)
	if err != nil {
		return nil, err
	}
	if !c.IsSegmented() {
		return c.IDs(), nil
	}
	return c.Segment(segment)
}

// ApplyQLoadToTopChord applies a distributed load to every member of the
// top chord. A single magnitude is broadcast to all members; otherwise one
// magnitude per member is required.
func (t *Truss) ApplyQLoadToTopChord(direction structural.Direction, q ...float64) error {
	return t.applyQLoad(ChordTop, "", direction, q)
}

// ApplyQLoadToTopChordSegment applies a distributed load to the members of
// one top chord segment.
func (t *Truss) ApplyQLoadToTopChordSegment(segment string, direction structural.Direction, q ...float64) error {
	return t.applyQLoad(ChordTop, segment, direction, q)
}

// ApplyQLoadToBottomChord applies a distributed load to every member of
// the bottom chord.
func (t *Truss) ApplyQLoadToBottomChord(direction structural.Direction, q ...float64) error {
	return t.applyQLoad(ChordBottom, "", direction, q)
}

// ApplyQLoadToBottomChordSegment applies a distributed load to the members
// of one bottom chord segment.
func (t *Truss) ApplyQLoadToBottomChordSegment(segment string, direction structural.Direction, q ...float64) error {
	return t.applyQLoad(ChordBottom, segment, direction, q)
}

func (t *Truss) applyQLoad(side ChordSide, segment string, direction structural.Direction, q []float64) error {
	label := string(side) + " chord"
	var ids []int
	var err error
	if segment == "" {
		ids, err = t.MemberIDsOfChord(side)
	} else {
		label = fmt.Sprintf("%s chord segment %q", side, segment)
		ids, err = t.MemberIDsOfChordSegment(side, segment)
	}
	if err != nil {
		return err
	}
	if len(q) == 0 {
		return fmt.Errorf("at least one load magnitude is required for the %s", label)
	}
	if len(q) != 1 && len(q) != len(ids) {
		return fmt.Errorf("got %d load magnitudes for %d members of the %s, want 1 or %d",
			len(q), len(ids), label, len(ids))
	}
	if direction == "" {
		direction = structural.DirectionElement
	}
	for i, id := range ids {
		magnitude := q[0]
		if len(q) > 1 {
			magnitude = q[i]
		}
		load := structural.DistributedLoad{Q: magnitude, Direction: direction}
		if err := t.System.ApplyDistributedLoad(id, load); err != nil {
			return err
		}
	}
	return nil
}

// MemberCounts returns the number of members per group in assembly order:
// bottom chord, top chord, web diagonals, web verticals.
func (t *Truss) MemberCounts() (bottom, top, webs, verticals int) {
	return t.BottomChordElements.Len(), t.TopChordElements.Len(),
		len(t.WebElements), len(t.WebVerticalElements)
}

// MemberCount returns the total number of generated members.
func (t *Truss) MemberCount() int {
	bottom, top, webs, verticals := t.MemberCounts()
	return bottom + top + webs + verticals
}

// intRange returns the ids [start, stop).
func intRange(start, stop int) []int {
	ids := make([]int, 0, max(stop-start, 0))
	for i := start; i < stop; i++ {
		ids = append(ids, i)
	}
	return ids
}

// span returns ids[start:stop] with clamping instead of panics; a negative
// stop counts back from the end of the slice.
func span(ids []int, start, stop int) []int {
	if stop < 0 {
		stop += len(ids)
	}
	if stop > len(ids) {
		stop = len(ids)
	}
	if start < 0 {
		start = 0
	}
	if start >= stop {
		return nil
	}
	return ids[start:stop]
}

// descend walks ids from index first down to index last, inclusive.
func descend(ids []int, first, last int) []int {
	if first > len(ids)-1 {
		first = len(ids) - 1
	}
	out := make([]int, 0, max(first-last+1, 0))
	for i := first; i >= last && i >= 0; i-- {
		out = append(out, ids[i])
	}
	return out
}

// zipPairs pairs a[i] with b[i], stopping at the shorter slice.
func zipPairs(a, b []int) [][2]int {
	n := min(len(a), len(b))
	pairs := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{a[i], b[i]})
	}
	return pairs
}
