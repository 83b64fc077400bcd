package truss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotruss/structural"
)

func TestAtticDefaultCeiling(t *testing.T) {
	tr, err := NewAtticRoofTruss(atticParams())
	require.NoError(t, err)

	wallY := 3 * math.Tan(30*math.Pi/180)
	require.InDelta(t, 3.0, tr.WallX, 1e-12)
	require.InDelta(t, wallY, tr.WallY, 1e-12)
	require.InDelta(t, wallY, tr.CeilingY, 1e-12)
	require.InDelta(t, wallY, tr.AtticHeight, 1e-12)
	require.True(t, tr.WallCeilingIntersect)

	// The ceiling meets the walls, so the two ceiling-slope nodes collapse
	// into the wall tops.
	require.Len(t, tr.Nodes, 10)
	require.InDelta(t, 1.5, tr.Nodes[4].X, 1e-12)
	require.InDelta(t, wallY/2, tr.Nodes[4].Y, 1e-12)
	require.InDelta(t, 3.0, tr.Nodes[5].X, 1e-12)
	require.InDelta(t, wallY, tr.Nodes[5].Y, 1e-12)
	require.InDelta(t, 6.0, tr.Nodes[6].X, 1e-12)
	require.InDelta(t, 2*wallY, tr.Nodes[6].Y, 1e-12)
	require.InDelta(t, 6.0, tr.Nodes[9].X, 1e-12)
	require.InDelta(t, wallY, tr.Nodes[9].Y, 1e-12)

	require.Equal(t, []string{"left", "right", "ceiling"}, tr.TopChord.SegmentNames())
	left, err := tr.TopChord.Segment("left")
	require.NoError(t, err)
	right, err := tr.TopChord.Segment("right")
	require.NoError(t, err)
	ceiling, err := tr.TopChord.Segment("ceiling")
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 5, 6}, left)
	require.Equal(t, []int{6, 7, 8, 3}, right)
	require.Equal(t, []int{5, 9, 7}, ceiling)

	require.Equal(t, [][2]int{{1, 4}, {9, 6}, {2, 8}}, tr.Webs)
	require.Equal(t, [][2]int{{1, 5}, {2, 7}}, tr.WebVerticals)

	bottom, top, webs, verticals := tr.MemberCounts()
	if bottom != 3 || top != 8 || webs != 3 || verticals != 2 {
		t.Errorf("MemberCounts() = (%d, %d, %d, %d), want (3, 8, 3, 2)",
			bottom, top, webs, verticals)
	}
	require.Equal(t, []SupportDef{
		{Node: 0, Kind: structural.SupportPinned},
		{Node: 3, Kind: structural.SupportRoller},
	}, tr.Supports)
	require.NoError(t, tr.Validate())
}

func TestAtticRaisedCeiling(t *testing.T) {
	p := atticParams()
	p.AtticHeight = 2.5
	tr, err := NewAtticRoofTruss(p)
	require.NoError(t, err)

	require.False(t, tr.WallCeilingIntersect)
	require.InDelta(t, 2.5, tr.AtticHeight, 1e-12)
	require.InDelta(t, 2.5, tr.CeilingY, 1e-12)

	peak := 6 * math.Tan(30*math.Pi/180)
	ceilingX := 6 - (peak-2.5)/math.Tan(30*math.Pi/180)
	require.InDelta(t, ceilingX, tr.CeilingX, 1e-12)

	// A raised ceiling splits each roof slope at the ceiling line.
	require.Len(t, tr.Nodes, 12)
	require.InDelta(t, ceilingX, tr.Nodes[6].X, 1e-12)
	require.InDelta(t, 2.5, tr.Nodes[6].Y, 1e-12)
	require.InDelta(t, 12-ceilingX, tr.Nodes[8].X, 1e-12)
	require.InDelta(t, 2.5, tr.Nodes[8].Y, 1e-12)
	require.InDelta(t, 6.0, tr.Nodes[11].X, 1e-12)
	require.InDelta(t, 2.5, tr.Nodes[11].Y, 1e-12)

	left, err := tr.TopChord.Segment("left")
	require.NoError(t, err)
	right, err := tr.TopChord.Segment("right")
	require.NoError(t, err)
	ceiling, err := tr.TopChord.Segment("ceiling")
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 5, 6, 7}, left)
	require.Equal(t, []int{7, 8, 9, 10, 3}, right)
	require.Equal(t, []int{6, 11, 8}, ceiling)

	require.Equal(t, [][2]int{{1, 4}, {11, 7}, {2, 10}}, tr.Webs)
	require.Equal(t, [][2]int{{1, 5}, {2, 9}}, tr.WebVerticals)

	bottom, top, webs, verticals := tr.MemberCounts()
	if bottom != 3 || top != 10 || webs != 3 || verticals != 2 {
		t.Errorf("MemberCounts() = (%d, %d, %d, %d), want (3, 10, 3, 2)",
			bottom, top, webs, verticals)
	}
	require.NoError(t, tr.Validate())
}

func TestAtticCeilingAtWallHeight(t *testing.T) {
	p := atticParams()
	p.AtticHeight = 3 * math.Tan(30*math.Pi/180)
	tr, err := NewAtticRoofTruss(p)
	require.NoError(t, err)

	require.True(t, tr.WallCeilingIntersect)
	require.Len(t, tr.Nodes, 10)
	require.NoError(t, tr.Validate())
}

func TestAtticExplicitHeightKept(t *testing.T) {
	p := atticParams()
	p.AtticHeight = 3.0
	tr, err := NewAtticRoofTruss(p)
	require.NoError(t, err)

	require.InDelta(t, 3.0, tr.AtticHeight, 1e-12)
	require.InDelta(t, 3.0, tr.WallX, 1e-12)
	require.False(t, tr.WallCeilingIntersect)
	require.Len(t, tr.Nodes, 12)
	require.NoError(t, tr.Validate())
}

func TestAtticOverhang(t *testing.T) {
	p := atticParams()
	p.OverhangLength = 1
	tr, err := NewAtticRoofTruss(p)
	require.NoError(t, err)

	require.Len(t, tr.Nodes, 12)
	left, err := tr.TopChord.Segment("left")
	require.NoError(t, err)
	right, err := tr.TopChord.Segment("right")
	require.NoError(t, err)
	require.Equal(t, []int{10, 0, 4, 5, 6}, left)
	require.Equal(t, []int{6, 7, 8, 3, 11}, right)

	bottom, top, webs, verticals := tr.MemberCounts()
	if bottom != 3 || top != 10 || webs != 3 || verticals != 2 {
		t.Errorf("MemberCounts() = (%d, %d, %d, %d), want (3, 10, 3, 2)",
			bottom, top, webs, verticals)
	}
	require.NoError(t, tr.Validate())
}

func TestAtticConstructionErrors(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr string
	}{
		{
			"ceiling below the wall tops",
			Params{Width: 12, RoofPitchDeg: 30, AtticWidth: 6, AtticHeight: 1.0},
			"attic height 1.00 is too low, minimum for this configuration is 1.73",
		},
		{
			"zero attic width",
			Params{Width: 12, RoofPitchDeg: 30},
			"attic width must be positive",
		},
		{
			"negative attic width",
			Params{Width: 12, RoofPitchDeg: 30, AtticWidth: -3},
			"attic width must be positive",
		},
		{
			"attic width equal to the span",
			Params{Width: 12, RoofPitchDeg: 30, AtticWidth: 12},
			"must be less than truss width",
		},
		{
			"attic width beyond the span",
			Params{Width: 12, RoofPitchDeg: 30, AtticWidth: 15},
			"must be less than truss width",
		},
		{
			"attic geometry is checked before the pitch",
			Params{Width: 12, RoofPitchDeg: 0},
			"attic width must be positive",
		},
		{
			"pitch still validated for a sound attic",
			Params{Width: 12, RoofPitchDeg: 0, AtticWidth: 6},
			"roof pitch must be between 0 and 90 degrees",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAtticRoofTruss(tt.params)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
