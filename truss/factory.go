package truss

import (
	"fmt"
	"slices"
	"strings"
)

// New builds a truss by type name. Names are case-insensitive and treat
// hyphens and spaces as underscores, so "king_post", "king-post" and
// "King Post" resolve to the same topology.
//
// Flat types: howe, pratt, warren. Roof types: king_post, queen_post,
// fink, howe_roof, pratt_roof, fan, modified_queen_post, double_fink,
// double_howe, modified_fan, attic.
func New(name string, p Params) (*Truss, error) {
	normalized := strings.ToLower(name)
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	ctor, ok := registry[normalized]
	if !ok {
		return nil, fmt.Errorf("unknown truss type %q, available types: %s",
			name, strings.Join(KnownTypes(), ", "))
	}
	return ctor(p)
}

// KnownTypes returns every name New accepts, aliases included, sorted.
func KnownTypes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// wrap adapts a concrete constructor to the registry signature, handing
// back the embedded base.
func wrap[T topology](ctor func(Params) (T, error)) func(Params) (*Truss, error) {
	return func(p Params) (*Truss, error) {
		t, err := ctor(p)
		if err != nil {
			return nil, err
		}
		return t.base(), nil
	}
}

var registry = map[string]func(Params) (*Truss, error){
	"howe":        wrap(NewHoweFlatTruss),
	"howe_flat":   wrap(NewHoweFlatTruss),
	"pratt":       wrap(NewPrattFlatTruss),
	"pratt_flat":  wrap(NewPrattFlatTruss),
	"warren":      wrap(NewWarrenFlatTruss),
	"warren_flat": wrap(NewWarrenFlatTruss),

	"king_post":           wrap(NewKingPostRoofTruss),
	"kingpost":            wrap(NewKingPostRoofTruss),
	"queen_post":          wrap(NewQueenPostRoofTruss),
	"queenpost":           wrap(NewQueenPostRoofTruss),
	"fink":                wrap(NewFinkRoofTruss),
	"howe_roof":           wrap(NewHoweRoofTruss),
	"pratt_roof":          wrap(NewPrattRoofTruss),
	"fan":                 wrap(NewFanRoofTruss),
	"modified_queen_post": wrap(NewModifiedQueenPostRoofTruss),
	"modified_queenpost":  wrap(NewModifiedQueenPostRoofTruss),
	"double_fink":         wrap(NewDoubleFinkRoofTruss),
	"doublefink":          wrap(NewDoubleFinkRoofTruss),
	"double_howe":         wrap(NewDoubleHoweRoofTruss),
	"doublehowe":          wrap(NewDoubleHoweRoofTruss),
	"modified_fan":        wrap(NewModifiedFanRoofTruss),
	"modifiedfan":         wrap(NewModifiedFanRoofTruss),
	"attic":               wrap(NewAtticRoofTruss),
	"attic_roof":          wrap(NewAtticRoofTruss),
}
