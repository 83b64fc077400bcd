package structural

import (
	"errors"

	"github.com/alexiusacademia/gotruss/geom"
)

// ErrEngineRequired is returned by the in-memory Model for operations
// that need a real analysis engine behind the interface.
var ErrEngineRequired = errors.New("structural: model records geometry only, attach an analysis engine to solve")

// System is the surface a truss generator writes into. Implementations
// must keep node indices exactly as given and hand out member ids that
// remain stable for later load application.
type System interface {
	// AddNode registers a node position under an explicit index.
	AddNode(pos geom.Vertex, index int) error
	// AddMember creates a member between two node positions and
	// returns its id. Endpoints are resolved to existing nodes by
	// position.
	AddMember(a, b geom.Vertex, sec Section, release Release) (int, error)
	AddSupportFixed(node int) error
	AddSupportPinned(node int) error
	AddSupportRoller(node int) error
	// ApplyDistributedLoad places a q-load on one member.
	ApplyDistributedLoad(memberID int, load DistributedLoad) error
}

// Engine extends System with the operations load combinations need:
// nodal loads, a case-scale factor, solving, member-wise superposition
// of solved states, and deep copying. Clone must produce fully
// independent storage; mutating the clone never affects the source.
type Engine interface {
	System

	ApplyPointLoad(node int, fx, fy, rotation float64) error
	ApplyMomentLoad(node int, ty float64) error
	// ApplyDeadLoad places self weight per unit length on one member.
	ApplyDeadLoad(memberID int, g float64) error

	SetLoadFactor(factor float64)
	Solve(opts SolveOptions) error
	// Superpose adds, member by member, the solved state of other
	// into the receiver. Only meaningful after linear solves.
	Superpose(other Engine) error
	Clone() Engine
}
