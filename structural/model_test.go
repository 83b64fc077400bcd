package structural

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alexiusacademia/gotruss/geom"
)

func TestModelAddNode(t *testing.T) {
	m := NewModel()
	if err := m.AddNode(geom.NewVertex(0, 0), 0); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := m.AddNode(geom.NewVertex(2, 0), 1); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	// Same index, same position: no-op.
	if err := m.AddNode(geom.NewVertex(0, 0), 0); err != nil {
		t.Fatalf("re-adding identical node failed: %v", err)
	}
	if m.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", m.NodeCount())
	}

	// Same index, different position: conflict.
	if err := m.AddNode(geom.NewVertex(5, 5), 0); err == nil {
		t.Error("moving an existing node should fail")
	}
}

func TestModelAddMember(t *testing.T) {
	m := NewModel()
	if err := m.AddNode(geom.NewVertex(0, 0), 0); err != nil {
		t.Fatal(err)
	}
	if err := m.AddNode(geom.NewVertex(2, 0), 1); err != nil {
		t.Fatal(err)
	}

	id, err := m.AddMember(geom.NewVertex(0, 0), geom.NewVertex(2, 0), DefaultSection(), Continuous)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if id != 1 {
		t.Errorf("first member id = %d, want 1", id)
	}

	// Endpoints resolve to existing nodes, not new ones.
	if m.NodeCount() != 2 {
		t.Errorf("NodeCount after member = %d, want 2", m.NodeCount())
	}

	// An endpoint nowhere near a recorded node creates one.
	id2, err := m.AddMember(geom.NewVertex(2, 0), geom.NewVertex(2, 3), DefaultSection(), PinnedEnds)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if id2 != 2 {
		t.Errorf("second member id = %d, want 2", id2)
	}
	if m.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", m.NodeCount())
	}
	members := m.Members()
	if members[1].NodeB != 2 {
		t.Errorf("created node id = %d, want 2 (one past highest)", members[1].NodeB)
	}

	if _, err := m.AddMember(geom.NewVertex(1, 1), geom.NewVertex(1, 1), DefaultSection(), Continuous); err == nil {
		t.Error("zero-length member should fail")
	}
}

func TestModelSupports(t *testing.T) {
	m := NewModel()
	if err := m.AddNode(geom.NewVertex(0, 0), 0); err != nil {
		t.Fatal(err)
	}

	if err := m.AddSupportPinned(0); err != nil {
		t.Fatalf("AddSupportPinned: %v", err)
	}
	// Redefining a support replaces its kind in place.
	if err := m.AddSupportRoller(0); err != nil {
		t.Fatalf("AddSupportRoller: %v", err)
	}
	supports := m.Supports()
	if len(supports) != 1 {
		t.Fatalf("SupportCount = %d, want 1", len(supports))
	}
	if supports[0].Kind != SupportRoller {
		t.Errorf("support kind = %s, want roller", supports[0].Kind)
	}

	if err := m.AddSupportFixed(99); err == nil {
		t.Error("supporting an unknown node should fail")
	}
}

func TestModelLoads(t *testing.T) {
	m := NewModel()
	if err := m.AddNode(geom.NewVertex(0, 0), 0); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddMember(geom.NewVertex(0, 0), geom.NewVertex(2, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}

	if err := m.ApplyDistributedLoad(1, DistributedLoad{Q: -10}); err != nil {
		t.Fatalf("ApplyDistributedLoad: %v", err)
	}
	loads := m.Loads()
	if loads[0].Direction != DirectionElement {
		t.Errorf("default direction = %q, want %q", loads[0].Direction, DirectionElement)
	}

	if err := m.ApplyDistributedLoad(7, DistributedLoad{Q: 1}); err == nil {
		t.Error("load on unknown member should fail")
	}
	if err := m.ApplyPointLoad(42, 0, -5, 0); err == nil {
		t.Error("point load on unknown node should fail")
	}
	if err := m.ApplyDeadLoad(1, 0.2); err != nil {
		t.Fatalf("ApplyDeadLoad: %v", err)
	}
	if m.LoadCount() != 2 {
		t.Errorf("LoadCount = %d, want 2", m.LoadCount())
	}
}

func TestModelCloneIsolation(t *testing.T) {
	m := NewModel()
	if err := m.AddNode(geom.NewVertex(0, 0), 0); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddMember(geom.NewVertex(0, 0), geom.NewVertex(2, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}

	clone := m.Clone().(*Model)
	clone.SetLoadFactor(2.5)
	if err := clone.ApplyDistributedLoad(1, DistributedLoad{Q: -4}); err != nil {
		t.Fatal(err)
	}
	if _, err := clone.AddMember(geom.NewVertex(2, 0), geom.NewVertex(4, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}

	if m.LoadFactor() != 1.0 {
		t.Errorf("clone mutation leaked into source load factor: %v", m.LoadFactor())
	}
	if m.LoadCount() != 0 {
		t.Errorf("clone load leaked into source: %d loads", m.LoadCount())
	}
	if m.MemberCount() != 1 {
		t.Errorf("clone member leaked into source: %d members", m.MemberCount())
	}
}

func TestModelSolveRequiresEngine(t *testing.T) {
	m := NewModel()
	if err := m.Solve(DefaultSolveOptions()); !errors.Is(err, ErrEngineRequired) {
		t.Errorf("Solve error = %v, want ErrEngineRequired", err)
	}
	if err := m.Superpose(NewModel()); !errors.Is(err, ErrEngineRequired) {
		t.Errorf("Superpose error = %v, want ErrEngineRequired", err)
	}
}

func TestModelMemberLength(t *testing.T) {
	m := NewModel()
	if _, err := m.AddMember(geom.NewVertex(0, 0), geom.NewVertex(3, 4), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}
	l, err := m.MemberLength(1)
	if err != nil {
		t.Fatal(err)
	}
	if l != 5 {
		t.Errorf("MemberLength = %v, want 5", l)
	}
}

func TestModelJSON(t *testing.T) {
	m := NewModel()
	if err := m.AddNode(geom.NewVertex(0, 0), 0); err != nil {
		t.Fatal(err)
	}
	if err := m.AddNode(geom.NewVertex(2, 0), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddMember(geom.NewVertex(0, 0), geom.NewVertex(2, 0), DefaultSection(), PinnedEnds); err != nil {
		t.Fatal(err)
	}
	if err := m.AddSupportPinned(0); err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	for _, want := range []string{`"nodes"`, `"members"`, `"supports"`, `"release":"pinned"`, `"load_factor":1`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s in %s", want, s)
		}
	}
}
