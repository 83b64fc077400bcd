package truss

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotruss/structural"
)

// roofTypeNames are the peaked topologies with no extra required
// parameters beyond span and pitch.
var roofTypeNames = []string{
	"king_post", "queen_post", "fink", "howe_roof", "pratt_roof", "fan",
	"modified_queen_post", "double_fink", "double_howe", "modified_fan",
}

func TestRoofTopologyShapes(t *testing.T) {
	tests := []struct {
		name          string
		wantNodes     int
		wantBottom    int
		wantTop       int
		wantWebs      int
		wantVerticals int
	}{
		{"king_post", 4, 2, 2, 0, 1},
		{"queen_post", 6, 2, 4, 2, 1},
		{"fink", 7, 3, 4, 4, 0},
		{"howe_roof", 8, 4, 4, 2, 3},
		{"pratt_roof", 8, 4, 4, 2, 3},
		{"fan", 9, 3, 6, 4, 2},
		{"modified_queen_post", 10, 4, 6, 6, 1},
		{"double_fink", 11, 5, 6, 8, 0},
		{"double_howe", 12, 6, 6, 4, 5},
		{"modified_fan", 12, 4, 8, 6, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.name, roofParams())
			require.NoError(t, err)

			if got := len(tr.Nodes); got != tt.wantNodes {
				t.Errorf("node count = %d, want %d", got, tt.wantNodes)
			}
			bottom, top, webs, verticals := tr.MemberCounts()
			if bottom != tt.wantBottom {
				t.Errorf("bottom chord members = %d, want %d", bottom, tt.wantBottom)
			}
			if top != tt.wantTop {
				t.Errorf("top chord members = %d, want %d", top, tt.wantTop)
			}
			if webs != tt.wantWebs {
				t.Errorf("diagonals = %d, want %d", webs, tt.wantWebs)
			}
			if verticals != tt.wantVerticals {
				t.Errorf("verticals = %d, want %d", verticals, tt.wantVerticals)
			}
			require.NoError(t, tr.Validate())

			model := tr.System.(*structural.Model)
			require.Equal(t, tr.MemberCount(), model.MemberCount())
		})
	}
}

func TestFinkConnectivity(t *testing.T) {
	tr, err := NewFinkRoofTruss(roofParams())
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3}, tr.BottomChord.IDs())
	left, err := tr.TopChord.Segment("left")
	require.NoError(t, err)
	right, err := tr.TopChord.Segment("right")
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 5}, left)
	require.Equal(t, []int{5, 6, 3}, right)
	require.Equal(t, [][2]int{{1, 4}, {1, 5}, {2, 5}, {2, 6}}, tr.Webs)
	require.Empty(t, tr.WebVerticals)

	h := 6 * math.Tan(30*math.Pi/180)
	require.InDelta(t, h, tr.Height, 1e-12)
	require.InDelta(t, 3.0, tr.Nodes[4].X, 1e-12)
	require.InDelta(t, h/2, tr.Nodes[4].Y, 1e-12)
	require.InDelta(t, 6.0, tr.Nodes[5].X, 1e-12)
	require.InDelta(t, h, tr.Nodes[5].Y, 1e-12)
}

func TestHoweRoofConnectivity(t *testing.T) {
	tr, err := NewHoweRoofTruss(roofParams())
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3, 4}, tr.BottomChord.IDs())
	require.Equal(t, [][2]int{{2, 5}, {2, 7}}, tr.Webs)
	require.Equal(t, [][2]int{{1, 5}, {2, 6}, {3, 7}}, tr.WebVerticals)
}

func TestRoofSupports(t *testing.T) {
	tr := mustQueenPost(t)
	require.Equal(t, []SupportDef{
		{Node: 0, Kind: structural.SupportPinned},
		{Node: 2, Kind: structural.SupportRoller},
	}, tr.Supports)

	p := roofParams()
	p.SupportsType = SupportFixed
	fixed, err := NewQueenPostRoofTruss(p)
	require.NoError(t, err)
	require.Equal(t, []SupportDef{
		{Node: 0, Kind: structural.SupportFixed},
		{Node: 2, Kind: structural.SupportFixed},
	}, fixed.Supports)
}

func TestRoofOverhang(t *testing.T) {
	p := roofParams()
	p.OverhangLength = 1.5
	tr, err := NewKingPostRoofTruss(p)
	require.NoError(t, err)

	require.Len(t, tr.Nodes, 6)

	left, err := tr.TopChord.Segment("left")
	require.NoError(t, err)
	right, err := tr.TopChord.Segment("right")
	require.NoError(t, err)
	require.Equal(t, []int{4, 0, 3}, left)
	require.Equal(t, []int{3, 2, 5}, right)

	// Eave extensions run down the roof slope past the corners.
	cos, sin := math.Cos(tr.RoofPitch), math.Sin(tr.RoofPitch)
	require.InDelta(t, -1.5*cos, tr.Nodes[4].X, 1e-12)
	require.InDelta(t, -1.5*sin, tr.Nodes[4].Y, 1e-12)
	require.InDelta(t, 12+1.5*cos, tr.Nodes[5].X, 1e-12)
	require.InDelta(t, -1.5*sin, tr.Nodes[5].Y, 1e-12)

	// Supports stay on the bottom chord ends.
	require.Equal(t, []SupportDef{
		{Node: 0, Kind: structural.SupportPinned},
		{Node: 2, Kind: structural.SupportRoller},
	}, tr.Supports)

	bottom, top, webs, verticals := tr.MemberCounts()
	if bottom != 2 || top != 4 || webs != 0 || verticals != 1 {
		t.Errorf("MemberCounts() = (%d, %d, %d, %d), want (2, 4, 0, 1)",
			bottom, top, webs, verticals)
	}
	require.NoError(t, tr.Validate())
}

func TestRoofConstructionErrors(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr string
	}{
		{"zero pitch", Params{Width: 12}, "roof pitch must be between 0 and 90 degrees"},
		{"vertical pitch", Params{Width: 12, RoofPitchDeg: 90}, "roof pitch must be between 0 and 90 degrees"},
		{"pitch above vertical", Params{Width: 12, RoofPitchDeg: 95}, "roof pitch must be between 0 and 90 degrees"},
		{"negative pitch", Params{Width: 12, RoofPitchDeg: -5}, "roof pitch must be between 0 and 90 degrees"},
		{"negative overhang", Params{Width: 12, RoofPitchDeg: 30, OverhangLength: -1}, "overhang length must be non-negative"},
		{"negative width", Params{Width: -5, RoofPitchDeg: 30}, "width must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKingPostRoofTruss(tt.params)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRoofGeometryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("height follows span and pitch", prop.ForAll(
		func(width, pitchDeg float64) bool {
			tr, err := NewKingPostRoofTruss(Params{Width: width, RoofPitchDeg: pitchDeg})
			if err != nil {
				return false
			}
			want := (width / 2) * math.Tan(pitchDeg*math.Pi/180)
			return math.Abs(tr.Height-want) < 1e-9
		},
		gen.Float64Range(1, 200),
		gen.Float64Range(0.5, 89),
	))

	properties.Property("every peaked topology validates across the pitch range", prop.ForAll(
		func(idx int, width, pitchDeg float64) bool {
			tr, err := New(roofTypeNames[idx], Params{Width: width, RoofPitchDeg: pitchDeg})
			if err != nil {
				return false
			}
			return tr.Validate() == nil
		},
		gen.IntRange(0, len(roofTypeNames)-1),
		gen.Float64Range(2, 100),
		gen.Float64Range(1, 89),
	))

	properties.Property("overhang adds two eave nodes below the bottom chord", prop.ForAll(
		func(overhang float64) bool {
			tr, err := NewKingPostRoofTruss(Params{Width: 12, RoofPitchDeg: 30, OverhangLength: overhang})
			if err != nil {
				return false
			}
			if len(tr.Nodes) != 6 {
				return false
			}
			return tr.Nodes[4].Y < 0 && tr.Nodes[5].Y < 0 && tr.Validate() == nil
		},
		gen.Float64Range(0.1, 5),
	))

	properties.TestingRun(t)
}
