package diagram

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gotruss/geom"
	"github.com/alexiusacademia/gotruss/structural"
	"github.com/alexiusacademia/gotruss/truss"
)

const profileSamples = 60

// Elevation draws the truss on a character grid. Terminal cells are
// roughly twice as tall as they are wide, so the row count is halved
// against the column count to keep proportions.
func Elevation(tr *truss.Truss, width int) string {
	if width < 20 {
		width = 20
	}
	minX, maxX, minY, maxY := modelBounds(tr)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	cols := width
	rows := int(math.Round(float64(cols) * spanY / spanX * 0.5))
	rows = min(max(rows, 4), 40)

	grid := make([][]rune, rows+1)
	for r := range grid {
		grid[r] = make([]rune, cols+1)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	toCol := func(x float64) int { return int(math.Round((x - minX) / spanX * float64(cols))) }
	toRow := func(y float64) int { return rows - int(math.Round((y-minY)/spanY*float64(rows))) }

	// Webs go in first so the chords overwrite them at shared cells,
	// then nodes and supports on top of everything.
	for _, pair := range tr.Webs {
		plotSegment(grid, tr.Nodes[pair[0]], tr.Nodes[pair[1]], toCol, toRow)
	}
	for _, pair := range tr.WebVerticals {
		plotSegment(grid, tr.Nodes[pair[0]], tr.Nodes[pair[1]], toCol, toRow)
	}
	plotChord(grid, tr, tr.BottomChord, toCol, toRow)
	plotChord(grid, tr, tr.TopChord, toCol, toRow)

	for _, pos := range tr.Nodes {
		putRune(grid, toRow(pos.Y), toCol(pos.X), '●')
	}
	for _, s := range tr.Supports {
		pos := tr.Nodes[s.Node]
		putRune(grid, toRow(pos.Y), toCol(pos.X), supportGlyph(s.Kind))
	}

	var sb strings.Builder

	title := strings.ToUpper(tr.TypeName) + " ELEVATION"
	sb.WriteString("\n")
	sb.WriteString("  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len(title)) + "\n\n")

	for _, row := range grid {
		sb.WriteString("  " + strings.TrimRight(string(row), " ") + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ● = node\n")
	sb.WriteString("  ▲ = pinned support\n")
	sb.WriteString("  ○ = roller support\n")
	sb.WriteString("  ■ = fixed support\n")
	sb.WriteString(fmt.Sprintf("  Span = %.2f, height = %.2f\n", tr.Width, tr.Height))

	return sb.String()
}

// ChordProfile plots the top chord height along the span.
func ChordProfile(tr *truss.Truss) string {
	heights := sampleProfile(profileEnvelope(tr), profileSamples)
	return asciigraph.Plot(heights,
		asciigraph.Height(8),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Top chord profile over span %.2f", tr.Width)),
	)
}

// profileEnvelope returns the top chord nodes ordered by X. Chords that
// carry an interior ceiling run keep only the highest node per station.
func profileEnvelope(tr *truss.Truss) []geom.Vertex {
	seen := map[int]bool{}
	var pts []geom.Vertex
	for _, id := range tr.TopChord.IDs() {
		if seen[id] {
			continue
		}
		seen[id] = true
		pts = append(pts, tr.Nodes[id])
	}
	slices.SortFunc(pts, func(a, b geom.Vertex) int { return cmp.Compare(a.X, b.X) })

	out := pts[:0]
	for _, p := range pts {
		if len(out) > 0 && math.Abs(out[len(out)-1].X-p.X) < 1e-9 {
			if p.Y > out[len(out)-1].Y {
				out[len(out)-1] = p
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

// sampleProfile interpolates the polyline at n evenly spaced stations.
func sampleProfile(pts []geom.Vertex, n int) []float64 {
	if len(pts) == 1 {
		return []float64{pts[0].Y}
	}
	first, last := pts[0].X, pts[len(pts)-1].X
	out := make([]float64, n)
	seg := 0
	for i := range out {
		x := first + (last-first)*float64(i)/float64(n-1)
		for seg+1 < len(pts)-1 && pts[seg+1].X < x {
			seg++
		}
		a, b := pts[seg], pts[seg+1]
		if b.X == a.X {
			out[i] = b.Y
			continue
		}
		t := (x - a.X) / (b.X - a.X)
		out[i] = a.Y + t*(b.Y-a.Y)
	}
	return out
}

func plotChord(grid [][]rune, tr *truss.Truss, c truss.Chord, toCol, toRow func(float64) int) {
	for _, run := range chordRuns(c) {
		for i := 0; i+1 < len(run); i++ {
			plotSegment(grid, tr.Nodes[run[i]], tr.Nodes[run[i+1]], toCol, toRow)
		}
	}
}

func plotSegment(grid [][]rune, a, b geom.Vertex, toCol, toRow func(float64) int) {
	c0, r0 := toCol(a.X), toRow(a.Y)
	c1, r1 := toCol(b.X), toRow(b.Y)
	glyph := lineGlyph(c1-c0, r1-r0)
	steps := max(absInt(c1-c0), absInt(r1-r0))
	if steps == 0 {
		putRune(grid, r0, c0, glyph)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := c0 + int(math.Round(t*float64(c1-c0)))
		r := r0 + int(math.Round(t*float64(r1-r0)))
		putRune(grid, r, c, glyph)
	}
}

// lineGlyph picks the stroke for a segment. Rows grow downward, so a
// member rising to the right has column and row deltas of opposite sign.
func lineGlyph(dc, dr int) rune {
	switch {
	case dr == 0:
		return '─'
	case dc == 0:
		return '│'
	case (dc > 0) == (dr < 0):
		return '╱'
	default:
		return '╲'
	}
}

func putRune(grid [][]rune, r, c int, g rune) {
	if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
		return
	}
	grid[r][c] = g
}

func supportGlyph(kind structural.SupportKind) rune {
	switch kind {
	case structural.SupportRoller:
		return '○'
	case structural.SupportFixed:
		return '■'
	default:
		return '▲'
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
