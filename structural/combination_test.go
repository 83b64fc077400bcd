package structural

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/alexiusacademia/gotruss/geom"
)

// linearEngine is a minimal linear solver stand-in: solving turns every
// recorded q/dead load into a per-member scalar state scaled by the
// load factor, so superposition is exactly additive.
type linearEngine struct {
	*Model
	states map[int]float64
}

func newLinearEngine() *linearEngine {
	return &linearEngine{Model: NewModel(), states: make(map[int]float64)}
}

func (e *linearEngine) Solve(opts SolveOptions) error {
	for _, ld := range e.Loads() {
		switch ld.Kind {
		case "q":
			e.states[ld.MemberID] += e.LoadFactor() * ld.Q
		case "dead":
			e.states[ld.MemberID] += e.LoadFactor() * ld.G
		}
	}
	return nil
}

func (e *linearEngine) Superpose(other Engine) error {
	o, ok := other.(*linearEngine)
	if !ok {
		return fmt.Errorf("cannot superpose %T onto linearEngine", other)
	}
	for id, s := range o.states {
		e.states[id] += s
	}
	return nil
}

func (e *linearEngine) Clone() Engine {
	c := &linearEngine{
		Model:  e.Model.Clone().(*Model),
		states: make(map[int]float64, len(e.states)),
	}
	for id, s := range e.states {
		c.states[id] = s
	}
	return c
}

func buildTwoMemberEngine(t *testing.T) *linearEngine {
	t.Helper()
	e := newLinearEngine()
	if _, err := e.AddMember(geom.NewVertex(0, 0), geom.NewVertex(2, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}
	if _, err := e.AddMember(geom.NewVertex(2, 0), geom.NewVertex(4, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestLoadCombinationSuperposition(t *testing.T) {
	e := buildTwoMemberEngine(t)

	dead := NewLoadCase("dead")
	dead.QLoad(-2, DirectionElement, 1, 2)

	live := NewLoadCase("live")
	live.QLoad(-8, DirectionElement, 1)

	combo := NewLoadCombination("uls")
	combo.AddLoadCase(dead, 1.0)
	combo.AddLoadCase(live, 0.5)

	results, err := combo.Evaluate(e, DefaultSolveOptions())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	for _, name := range []string{"dead", "live", CombinationKey} {
		if _, ok := results[name]; !ok {
			t.Fatalf("results missing %q", name)
		}
	}

	deadStates := results["dead"].(*linearEngine).states
	liveStates := results["live"].(*linearEngine).states
	comboStates := results[CombinationKey].(*linearEngine).states

	for _, member := range []int{1, 2} {
		want := deadStates[member] + liveStates[member]
		if math.Abs(comboStates[member]-want) > 1e-12 {
			t.Errorf("member %d: combination state = %v, want %v", member, comboStates[member], want)
		}
	}

	// Spot-check the actual factored values.
	if deadStates[1] != -2 || liveStates[1] != -4 {
		t.Errorf("per-case states = %v / %v, want -2 / -4", deadStates[1], liveStates[1])
	}
	if comboStates[1] != -6 || comboStates[2] != -2 {
		t.Errorf("combination states = %v / %v, want -6 / -2", comboStates[1], comboStates[2])
	}
}

func TestLoadCombinationIsolation(t *testing.T) {
	e := buildTwoMemberEngine(t)

	lc := NewLoadCase("live")
	lc.QLoad(-1, DirectionElement, 1)

	combo := NewLoadCombination("c")
	combo.AddLoadCase(lc, 3.0)

	if _, err := combo.Evaluate(e, DefaultSolveOptions()); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// The template engine stays untouched: no loads, no states, factor 1.
	if e.LoadCount() != 0 {
		t.Errorf("template gained %d loads", e.LoadCount())
	}
	if len(e.states) != 0 {
		t.Errorf("template gained states: %v", e.states)
	}
	if e.LoadFactor() != 1.0 {
		t.Errorf("template load factor = %v", e.LoadFactor())
	}
}

func TestLoadCombinationReplacesDuplicateCase(t *testing.T) {
	lc := NewLoadCase("live")
	combo := NewLoadCombination("c")
	combo.AddLoadCase(lc, 1.0)
	combo.AddLoadCase(lc, 1.6)

	if names := combo.CaseNames(); len(names) != 1 {
		t.Fatalf("CaseNames = %v, want one entry", names)
	}
	f, ok := combo.Factor("live")
	if !ok || f != 1.6 {
		t.Errorf("Factor(live) = %v, %v; want 1.6, true", f, ok)
	}
}

func TestLoadCombinationPropagatesSolveFailure(t *testing.T) {
	// The recording model cannot solve; evaluation must abort with no
	// partial results.
	m := NewModel()
	if _, err := m.AddMember(geom.NewVertex(0, 0), geom.NewVertex(2, 0), DefaultSection(), Continuous); err != nil {
		t.Fatal(err)
	}

	lc := NewLoadCase("live")
	lc.QLoad(-1, DirectionElement, 1)

	combo := NewLoadCombination("c")
	combo.AddLoadCase(lc, 1.0)

	results, err := combo.Evaluate(m, DefaultSolveOptions())
	if !errors.Is(err, ErrEngineRequired) {
		t.Fatalf("Evaluate error = %v, want ErrEngineRequired", err)
	}
	if results != nil {
		t.Error("failed evaluation should not return partial results")
	}
}

func TestLoadCombinationPropagatesApplyFailure(t *testing.T) {
	e := newLinearEngine()

	lc := NewLoadCase("bad")
	lc.QLoad(-1, DirectionElement, 123)

	combo := NewLoadCombination("c")
	combo.AddLoadCase(lc, 1.0)

	if _, err := combo.Evaluate(e, DefaultSolveOptions()); err == nil {
		t.Fatal("Evaluate with an unknown member target should fail")
	}
}
