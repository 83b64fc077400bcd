package truss

import (
	"fmt"
	"strings"
)

// Chord is an ordered run of integer ids, stored either as a single flat
// list (parallel-chord trusses) or as named segments for chords that bend
// at a ridge, eaves or ceiling. The same representation carries node ids
// before assembly and member ids after assembly.
type Chord struct {
	ids      []int
	segments []ChordSegment
}

// ChordSegment is one named straight run inside a segmented chord.
type ChordSegment struct {
	Name string
	IDs  []int
}

// SimpleChord builds a single-run chord from ids in order.
func SimpleChord(ids ...int) Chord {
	return Chord{ids: ids}
}

// SegmentedChord builds a chord from named segments. Segment order is
// preserved and determines concatenation and traversal order.
func SegmentedChord(segments ...ChordSegment) Chord {
	return Chord{segments: segments}
}

// IsSegmented reports whether the chord is made of named segments.
func (c Chord) IsSegmented() bool {
	return c.segments != nil
}

// IDs returns every id in the chord, in order. Segmented chords
// concatenate their segments in definition order.
func (c Chord) IDs() []int {
	if c.segments == nil {
		out := make([]int, len(c.ids))
		copy(out, c.ids)
		return out
	}
	var out []int
	for _, seg := range c.segments {
		out = append(out, seg.IDs...)
	}
	return out
}

// Len returns the total number of ids across all segments.
func (c Chord) Len() int {
	if c.segments == nil {
		return len(c.ids)
	}
	n := 0
	for _, seg := range c.segments {
		n += len(seg.IDs)
	}
	return n
}

// SegmentNames returns the segment names in definition order. Simple
// chords have none.
func (c Chord) SegmentNames() []string {
	names := make([]string, len(c.segments))
	for i, seg := range c.segments {
		names[i] = seg.Name
	}
	return names
}

// Segments returns the named segments in definition order.
func (c Chord) Segments() []ChordSegment {
	out := make([]ChordSegment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Segment returns the ids of the named segment.
func (c Chord) Segment(name string) ([]int, error) {
	for _, seg := range c.segments {
		if seg.Name == name {
			out := make([]int, len(seg.IDs))
			copy(out, seg.IDs)
			return out, nil
		}
	}
	return nil, fmt.Errorf("chord segment %q not found, available segments: %s",
		name, strings.Join(c.SegmentNames(), ", "))
}
