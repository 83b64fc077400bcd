// Package structural defines the contract between truss generators and
// structural-analysis engines: member sections, the model-building and
// solving interfaces, an in-memory recording model, and load
// case/combination grouping.
package structural

import "encoding/json"

// Section groups the properties assigned to a member.
type Section struct {
	EA            float64 `json:"ea"`   // axial stiffness
	EI            float64 `json:"ei"`   // bending stiffness
	MassPerLength float64 `json:"mass"` // self weight per unit length
}

// DefaultSection returns the section assigned to truss members when the
// caller does not provide one. The stiffness values are deliberately
// high so idealized trusses deform axially, not in bending.
func DefaultSection() Section {
	return Section{EA: 1e8, EI: 1e6, MassPerLength: 0.0}
}

// Release describes end fixity of a member.
type Release int

const (
	// Continuous keeps moment connections at both member ends.
	Continuous Release = iota
	// PinnedEnds releases rotation at both member ends.
	PinnedEnds
)

func (r Release) String() string {
	if r == PinnedEnds {
		return "pinned"
	}
	return "continuous"
}

// MarshalJSON writes the release as its name rather than its ordinal.
func (r Release) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Direction selects how a distributed load magnitude is oriented.
type Direction string

const (
	DirectionElement       Direction = "element"
	DirectionX             Direction = "x"
	DirectionY             Direction = "y"
	DirectionParallel      Direction = "parallel"
	DirectionPerpendicular Direction = "perpendicular"
	DirectionAngle         Direction = "angle"
)

// DistributedLoad is the per-member payload of a q-load request.
// Rotation (degrees) only applies with DirectionAngle; QPerp optionally
// overrides the perpendicular component.
type DistributedLoad struct {
	Q         float64   `json:"q"`
	Direction Direction `json:"direction"`
	Rotation  float64   `json:"rotation,omitempty"`
	QPerp     float64   `json:"q_perp,omitempty"`
}

// SupportKind is one of the three support conditions a truss can request.
type SupportKind string

const (
	SupportFixed  SupportKind = "fixed"
	SupportPinned SupportKind = "pinned"
	SupportRoller SupportKind = "roller"
)

// SolveOptions forwards solver controls to the analysis engine.
type SolveOptions struct {
	ForceLinear          bool
	Verbosity            int
	MaxIterations        int
	GeometricalNonLinear bool
}

// DefaultSolveOptions mirrors the usual engine defaults: linear solve,
// quiet, bounded iterations.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{ForceLinear: true, MaxIterations: 200}
}
