package structural

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/gotruss/geom"
)

// positionTol is the distance under which two member endpoints are
// treated as the same node.
const positionTol = 1e-6

// Node is one recorded node of a Model.
type Node struct {
	ID       int
	Position geom.Vertex
}

// Member is one recorded member of a Model. Ids are 1-based and
// sequential in creation order.
type Member struct {
	ID      int     `json:"id"`
	NodeA   int     `json:"node_a"`
	NodeB   int     `json:"node_b"`
	Section Section `json:"section"`
	Release Release `json:"release"`
}

// Support is one recorded support condition.
type Support struct {
	Node int         `json:"node"`
	Kind SupportKind `json:"kind"`
}

// AppliedLoad is one recorded load request. Kind selects which of the
// remaining fields are meaningful.
type AppliedLoad struct {
	Kind      string    `json:"kind"` // q, point, moment, dead
	MemberID  int       `json:"member_id"`
	NodeID    int       `json:"node_id"`
	Q         float64   `json:"q,omitempty"`
	Direction Direction `json:"direction,omitempty"`
	Rotation  float64   `json:"rotation,omitempty"`
	QPerp     float64   `json:"q_perp,omitempty"`
	FX        float64   `json:"fx,omitempty"`
	FY        float64   `json:"fy,omitempty"`
	TY        float64   `json:"ty,omitempty"`
	G         float64   `json:"g,omitempty"`
}

// Model is an in-memory implementation of Engine that records the
// geometry, supports and loads pushed into it. It performs no analysis:
// Solve and Superpose return ErrEngineRequired. Its JSON form is the
// handoff format for external engines.
type Model struct {
	nodes      map[int]geom.Vertex
	nodeOrder  []int
	members    []Member
	supports   []Support
	loads      []AppliedLoad
	loadFactor float64
	maxNodeID  int
}

// NewModel returns an empty model with a load factor of 1.
func NewModel() *Model {
	return &Model{
		nodes:      make(map[int]geom.Vertex),
		loadFactor: 1.0,
		maxNodeID:  -1,
	}
}

// AddNode registers pos under the given index. Re-adding an index at
// the same position is a no-op; a conflicting position is an error.
func (m *Model) AddNode(pos geom.Vertex, index int) error {
	if existing, ok := m.nodes[index]; ok {
		if geom.Colocated(existing, pos, positionTol) {
			return nil
		}
		return fmt.Errorf("node %d already defined at %s, cannot move to %s", index, existing, pos)
	}
	m.nodes[index] = pos
	m.nodeOrder = append(m.nodeOrder, index)
	if index > m.maxNodeID {
		m.maxNodeID = index
	}
	return nil
}

// nodeAt returns the id of the node at pos, creating one past the
// highest known id when no recorded node is close enough.
func (m *Model) nodeAt(pos geom.Vertex) int {
	for _, id := range m.nodeOrder {
		if geom.Colocated(m.nodes[id], pos, positionTol) {
			return id
		}
	}
	m.maxNodeID++
	id := m.maxNodeID
	m.nodes[id] = pos
	m.nodeOrder = append(m.nodeOrder, id)
	return id
}

// AddMember creates a member between the nodes at a and b and returns
// its 1-based id.
func (m *Model) AddMember(a, b geom.Vertex, sec Section, release Release) (int, error) {
	if geom.Colocated(a, b, positionTol) {
		return 0, fmt.Errorf("zero-length member between %s and %s", a, b)
	}
	member := Member{
		ID:      len(m.members) + 1,
		NodeA:   m.nodeAt(a),
		NodeB:   m.nodeAt(b),
		Section: sec,
		Release: release,
	}
	m.members = append(m.members, member)
	return member.ID, nil
}

func (m *Model) addSupport(node int, kind SupportKind) error {
	if _, ok := m.nodes[node]; !ok {
		return fmt.Errorf("cannot support unknown node id %d", node)
	}
	for i := range m.supports {
		if m.supports[i].Node == node {
			m.supports[i].Kind = kind
			return nil
		}
	}
	m.supports = append(m.supports, Support{Node: node, Kind: kind})
	return nil
}

func (m *Model) AddSupportFixed(node int) error {
	return m.addSupport(node, SupportFixed)
}

func (m *Model) AddSupportPinned(node int) error {
	return m.addSupport(node, SupportPinned)
}

func (m *Model) AddSupportRoller(node int) error {
	return m.addSupport(node, SupportRoller)
}

func (m *Model) checkMember(memberID int) error {
	if memberID < 1 || memberID > len(m.members) {
		return fmt.Errorf("unknown member id %d, valid range: 1-%d", memberID, len(m.members))
	}
	return nil
}

func (m *Model) checkNode(node int) error {
	if _, ok := m.nodes[node]; !ok {
		return fmt.Errorf("unknown node id %d", node)
	}
	return nil
}

// ApplyDistributedLoad records a q-load on one member.
func (m *Model) ApplyDistributedLoad(memberID int, load DistributedLoad) error {
	if err := m.checkMember(memberID); err != nil {
		return err
	}
	dir := load.Direction
	if dir == "" {
		dir = DirectionElement
	}
	m.loads = append(m.loads, AppliedLoad{
		Kind:      "q",
		MemberID:  memberID,
		Q:         load.Q,
		Direction: dir,
		Rotation:  load.Rotation,
		QPerp:     load.QPerp,
	})
	return nil
}

// ApplyPointLoad records a nodal force.
func (m *Model) ApplyPointLoad(node int, fx, fy, rotation float64) error {
	if err := m.checkNode(node); err != nil {
		return err
	}
	m.loads = append(m.loads, AppliedLoad{
		Kind:     "point",
		NodeID:   node,
		FX:       fx,
		FY:       fy,
		Rotation: rotation,
	})
	return nil
}

// ApplyMomentLoad records a nodal moment.
func (m *Model) ApplyMomentLoad(node int, ty float64) error {
	if err := m.checkNode(node); err != nil {
		return err
	}
	m.loads = append(m.loads, AppliedLoad{Kind: "moment", NodeID: node, TY: ty})
	return nil
}

// ApplyDeadLoad records self weight on one member.
func (m *Model) ApplyDeadLoad(memberID int, g float64) error {
	if err := m.checkMember(memberID); err != nil {
		return err
	}
	m.loads = append(m.loads, AppliedLoad{Kind: "dead", MemberID: memberID, G: g})
	return nil
}

// SetLoadFactor scales every load of the model when it is solved.
func (m *Model) SetLoadFactor(factor float64) {
	m.loadFactor = factor
}

// LoadFactor returns the current case-scale factor.
func (m *Model) LoadFactor() float64 {
	return m.loadFactor
}

// Solve always fails: the model records geometry and loads but cannot
// analyze them.
func (m *Model) Solve(opts SolveOptions) error {
	return ErrEngineRequired
}

// Superpose always fails for the same reason as Solve.
func (m *Model) Superpose(other Engine) error {
	return ErrEngineRequired
}

// Clone returns a deep copy with fully independent storage.
func (m *Model) Clone() Engine {
	c := &Model{
		nodes:      make(map[int]geom.Vertex, len(m.nodes)),
		nodeOrder:  append([]int(nil), m.nodeOrder...),
		members:    append([]Member(nil), m.members...),
		supports:   append([]Support(nil), m.supports...),
		loads:      append([]AppliedLoad(nil), m.loads...),
		loadFactor: m.loadFactor,
		maxNodeID:  m.maxNodeID,
	}
	for id, pos := range m.nodes {
		c.nodes[id] = pos
	}
	return c
}

// Nodes returns the recorded nodes in insertion order.
func (m *Model) Nodes() []Node {
	out := make([]Node, 0, len(m.nodeOrder))
	for _, id := range m.nodeOrder {
		out = append(out, Node{ID: id, Position: m.nodes[id]})
	}
	return out
}

// NodePosition looks a node position up by id.
func (m *Model) NodePosition(id int) (geom.Vertex, bool) {
	pos, ok := m.nodes[id]
	return pos, ok
}

// Members returns a copy of the recorded members.
func (m *Model) Members() []Member {
	return append([]Member(nil), m.members...)
}

// Supports returns a copy of the recorded supports.
func (m *Model) Supports() []Support {
	return append([]Support(nil), m.supports...)
}

// Loads returns a copy of the recorded load requests.
func (m *Model) Loads() []AppliedLoad {
	return append([]AppliedLoad(nil), m.loads...)
}

// MemberLength returns the distance between a member's endpoints.
func (m *Model) MemberLength(memberID int) (float64, error) {
	if err := m.checkMember(memberID); err != nil {
		return 0, err
	}
	mem := m.members[memberID-1]
	return m.nodes[mem.NodeB].Sub(m.nodes[mem.NodeA]).Length(), nil
}

func (m *Model) NodeCount() int    { return len(m.nodes) }
func (m *Model) MemberCount() int  { return len(m.members) }
func (m *Model) SupportCount() int { return len(m.supports) }
func (m *Model) LoadCount() int    { return len(m.loads) }

type nodeJSON struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type modelJSON struct {
	Nodes      []nodeJSON    `json:"nodes"`
	Members    []Member      `json:"members"`
	Supports   []Support     `json:"supports"`
	Loads      []AppliedLoad `json:"loads,omitempty"`
	LoadFactor float64       `json:"load_factor"`
}

// MarshalJSON emits the handoff format consumed by external engines.
func (m *Model) MarshalJSON() ([]byte, error) {
	out := modelJSON{
		Nodes:      make([]nodeJSON, 0, len(m.nodeOrder)),
		Members:    m.members,
		Supports:   m.supports,
		Loads:      m.loads,
		LoadFactor: m.loadFactor,
	}
	for _, id := range m.nodeOrder {
		pos := m.nodes[id]
		out.Nodes = append(out.Nodes, nodeJSON{ID: id, X: pos.X, Y: pos.Y})
	}
	return json.Marshal(out)
}
