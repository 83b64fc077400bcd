package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gotruss/structural"
	"github.com/alexiusacademia/gotruss/truss"
)

var (
	chordColor   = color.Black
	webColor     = color.RGBA{R: 105, G: 105, B: 105, A: 255}
	nodeColor    = color.RGBA{R: 25, G: 70, B: 186, A: 255}
	supportColor = color.RGBA{R: 178, G: 34, B: 34, A: 255}
)

// ExportElevation renders the truss elevation to an image file. The
// format follows the file extension (.png, .svg or .pdf); anything else
// gets a .png appended.
func ExportElevation(tr *truss.Truss, filename string) error {
	p := plot.New()
	p.Title.Text = tr.TypeName
	p.X.Label.Text = "Span"
	p.Y.Label.Text = "Height"

	if err := addChordLines(p, tr, tr.BottomChord); err != nil {
		return err
	}
	if err := addChordLines(p, tr, tr.TopChord); err != nil {
		return err
	}
	if err := addPairLines(p, tr, tr.Webs); err != nil {
		return err
	}
	if err := addPairLines(p, tr, tr.WebVerticals); err != nil {
		return err
	}
	if err := addNodeMarkers(p, tr); err != nil {
		return err
	}
	if err := addSupportMarkers(p, tr); err != nil {
		return err
	}

	minX, maxX, minY, maxY := modelBounds(tr)
	padX := (maxX - minX) * 0.06
	padY := (maxY - minY) * 0.15
	p.X.Min, p.X.Max = minX-padX, maxX+padX
	p.Y.Min, p.Y.Max = minY-padY, maxY+padY

	// Annotate the overall dimensions next to the peak and the right end.
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: (minX + maxX) / 2, Y: maxY + padY/2},
			{X: maxX + padX/4, Y: minY},
		},
		Labels: []string{
			fmt.Sprintf("h = %.2f", tr.Height),
			fmt.Sprintf("span = %.2f", tr.Width),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	// Elevations are wide; scale the canvas height to the geometry but
	// keep it readable for shallow trusses.
	width := 10 * vg.Inch
	height := vg.Length(float64(width) * (maxY - minY + 2*padY) / (maxX - minX + 2*padX))
	if height < 2.5*vg.Inch {
		height = 2.5 * vg.Inch
	}
	if height > 8*vg.Inch {
		height = 8 * vg.Inch
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// chordRuns flattens a chord into its straight polylines: one per
// segment, or a single run for parallel chords.
func chordRuns(c truss.Chord) [][]int {
	if !c.IsSegmented() {
		return [][]int{c.IDs()}
	}
	segments := c.Segments()
	runs := make([][]int, len(segments))
	for i, seg := range segments {
		runs[i] = seg.IDs
	}
	return runs
}

func addChordLines(p *plot.Plot, tr *truss.Truss, c truss.Chord) error {
	for _, run := range chordRuns(c) {
		pts := make(plotter.XYs, len(run))
		for i, id := range run {
			pts[i] = plotter.XY{X: tr.Nodes[id].X, Y: tr.Nodes[id].Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = chordColor
		p.Add(line)
	}
	return nil
}

func addPairLines(p *plot.Plot, tr *truss.Truss, pairs [][2]int) error {
	for _, pair := range pairs {
		a, b := tr.Nodes[pair[0]], tr.Nodes[pair[1]]
		line, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = webColor
		p.Add(line)
	}
	return nil
}

func addNodeMarkers(p *plot.Plot, tr *truss.Truss) error {
	pts := make(plotter.XYs, len(tr.Nodes))
	for i, pos := range tr.Nodes {
		pts[i] = plotter.XY{X: pos.X, Y: pos.Y}
	}
	nodes, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	nodes.GlyphStyle.Color = nodeColor
	nodes.GlyphStyle.Radius = vg.Points(2.5)
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(nodes)
	return nil
}

func addSupportMarkers(p *plot.Plot, tr *truss.Truss) error {
	byKind := map[structural.SupportKind]plotter.XYs{}
	for _, s := range tr.Supports {
		pos := tr.Nodes[s.Node]
		byKind[s.Kind] = append(byKind[s.Kind], plotter.XY{X: pos.X, Y: pos.Y})
	}

	glyphs := map[structural.SupportKind]draw.GlyphDrawer{
		structural.SupportPinned: draw.PyramidGlyph{},
		structural.SupportRoller: draw.RingGlyph{},
		structural.SupportFixed:  draw.BoxGlyph{},
	}
	for kind, pts := range byKind {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = supportColor
		scatter.GlyphStyle.Radius = vg.Points(6)
		scatter.GlyphStyle.Shape = glyphs[kind]
		p.Add(scatter)
		p.Legend.Add(string(kind), scatter)
	}
	p.Legend.Top = true
	return nil
}

// modelBounds returns the bounding box of the generated nodes.
func modelBounds(tr *truss.Truss) (minX, maxX, minY, maxY float64) {
	minX, maxX = tr.Nodes[0].X, tr.Nodes[0].X
	minY, maxY = tr.Nodes[0].Y, tr.Nodes[0].Y
	for _, pos := range tr.Nodes[1:] {
		minX = min(minX, pos.X)
		maxX = max(maxX, pos.X)
		minY = min(minY, pos.Y)
		maxY = max(maxY, pos.Y)
	}
	return minX, maxX, minY, maxY
}
