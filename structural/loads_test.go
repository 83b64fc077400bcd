package structural

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/gotruss/geom"
)

func TestLoadCaseKeys(t *testing.T) {
	lc := NewLoadCase("service")
	lc.QLoad(-4, DirectionElement, 1, 2)
	lc.PointLoad(0, -10, 0, 3)
	lc.MomentLoad(5, 3)
	lc.DeadLoad(0.1, 1)

	want := []string{"q_load-1", "point_load-2", "moment_load-3", "dead_load-4"}
	got := lc.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if lc.Name() != "service" {
		t.Errorf("Name() = %q", lc.Name())
	}
}

func TestLoadCaseApplyTo(t *testing.T) {
	m := NewModel()
	if _, err := m.AddMember(geom.NewVertex(0, 0), geom.NewVertex(2, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddMember(geom.NewVertex(2, 0), geom.NewVertex(4, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}

	lc := NewLoadCase("snow")
	lc.QLoad(-2, DirectionY, 1, 2)
	lc.DeadLoad(0.05, 1)

	if err := lc.ApplyTo(m); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if m.LoadCount() != 3 {
		t.Errorf("LoadCount = %d, want 3 (two q-loads, one dead load)", m.LoadCount())
	}
	loads := m.Loads()
	if loads[0].Kind != "q" || loads[0].MemberID != 1 || loads[0].Q != -2 {
		t.Errorf("first applied load = %+v", loads[0])
	}
	if loads[2].Kind != "dead" || loads[2].G != 0.05 {
		t.Errorf("third applied load = %+v", loads[2])
	}
}

func TestLoadCaseApplyToBadTarget(t *testing.T) {
	m := NewModel()

	lc := NewLoadCase("broken")
	lc.QLoad(-2, DirectionElement, 99)

	err := lc.ApplyTo(m)
	if err == nil {
		t.Fatal("ApplyTo with unknown member should fail")
	}
	if !strings.Contains(err.Error(), "q_load-1") {
		t.Errorf("error should name the failing entry key, got: %v", err)
	}
}

func TestLoadCaseString(t *testing.T) {
	lc := NewLoadCase("wind")
	lc.PointLoad(3, 0, 0, 5)
	s := lc.String()
	if !strings.Contains(s, "wind") || !strings.Contains(s, "point_load-1") {
		t.Errorf("String() = %q", s)
	}
}
