package structural

import "fmt"

// CombinationKey is the result-map key holding the superposed model.
const CombinationKey = "combination"

type comboCase struct {
	lc     *LoadCase
	factor float64
}

// LoadCombination scales named load cases and evaluates them against a
// structural model, one isolated solve per case plus a superposed
// combination result.
type LoadCombination struct {
	name  string
	order []string
	cases map[string]comboCase
}

// NewLoadCombination returns an empty named combination.
func NewLoadCombination(name string) *LoadCombination {
	return &LoadCombination{name: name, cases: make(map[string]comboCase)}
}

// Name returns the combination name.
func (c *LoadCombination) Name() string { return c.name }

// AddLoadCase registers a case with the factor every one of its loads
// is multiplied by. Re-adding a case name replaces its factor in place.
func (c *LoadCombination) AddLoadCase(lc *LoadCase, factor float64) {
	if _, ok := c.cases[lc.Name()]; !ok {
		c.order = append(c.order, lc.Name())
	}
	c.cases[lc.Name()] = comboCase{lc: lc, factor: factor}
}

// CaseNames returns the registered case names in insertion order.
func (c *LoadCombination) CaseNames() []string {
	return append([]string(nil), c.order...)
}

// Factor returns the scale factor registered for a case name.
func (c *LoadCombination) Factor(name string) (float64, bool) {
	cc, ok := c.cases[name]
	return cc.factor, ok
}

// Evaluate solves every case against its own deep copy of system and
// returns the solved copies keyed by case name, plus one extra entry
// under CombinationKey holding the member-wise sum of all case results
// (linear superposition; only meaningful when each case solved
// linearly). Any failure aborts the evaluation: there is no
// partial-result mode.
func (c *LoadCombination) Evaluate(system Engine, opts SolveOptions) (map[string]Engine, error) {
	results := make(map[string]Engine, len(c.order)+1)
	for _, name := range c.order {
		cc := c.cases[name]
		ss := system.Clone()
		ss.SetLoadFactor(cc.factor)
		if err := cc.lc.ApplyTo(ss); err != nil {
			return nil, fmt.Errorf("combination %q, case %q: %w", c.name, name, err)
		}
		if err := ss.Solve(opts); err != nil {
			return nil, fmt.Errorf("combination %q, case %q: %w", c.name, name, err)
		}
		results[name] = ss
	}

	combined := system.Clone()
	for _, name := range c.order {
		if err := combined.Superpose(results[name]); err != nil {
			return nil, fmt.Errorf("combination %q: %w", c.name, err)
		}
	}
	results[CombinationKey] = combined
	return results, nil
}
