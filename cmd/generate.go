package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/structural"
	"github.com/alexiusacademia/gotruss/truss"
)

// sketchWidth is the column budget for terminal elevations.
const sketchWidth = 72

var (
	// Geometry
	genType   string
	genWidth  float64
	genHeight float64

	// Flat family
	genUnitWidth      float64
	genEndType        string
	genSupportsLoc    string
	genMinEndFraction float64
	genAllowOddUnits  bool

	// Roof family
	genPitch    float64
	genOverhang float64

	// Attic
	genAtticWidth  float64
	genAtticHeight float64

	// Connections and supports
	genSupportsType string
	genTopPinned    bool
	genBottomPinned bool

	// Loads
	genQTop       []float64
	genQBottom    []float64
	genQDirection string

	// Outputs
	genOutJSON   string
	genImageFile string
	genASCII     bool
	genProfile   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a truss from command line parameters",
	Long: `Generate an idealized 2D truss structure.

Pick a type from the catalogue (see 'gotruss types'), set the geometry
and the command produces the node, member and support schedule. Flat
trusses take a span, height and panel width; roof trusses take a span
and pitch; the attic type additionally takes the interior room width.

Examples:
  # Howe flat truss, 20 span, 2.5 high, 2 wide panels
  gotruss generate --type howe --width 20 --height 2.5 --unit-width 2

  # Fink roof truss with a 30 degree pitch and eave overhangs
  gotruss generate --type fink --width 12 --pitch 30 --overhang 0.6

  # Attic truss with a raised ceiling, sketched in the terminal
  gotruss generate --type attic --width 12 --pitch 35 --attic-width 6 --ascii

  # Load the top chord and export the model for analysis
  gotruss generate --type pratt --width 18 --height 2 --unit-width 2 \
    --q-top=-10 --out model.json`,
	Run: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genType, "type", "t", "", "Truss type, e.g. howe, warren, fink, attic")
	generateCmd.Flags().Float64VarP(&genWidth, "width", "w", 0, "Total span")
	generateCmd.Flags().Float64Var(&genHeight, "height", 0, "Truss height (flat family)")

	generateCmd.Flags().Float64VarP(&genUnitWidth, "unit-width", "u", 0, "Panel width (flat family)")
	generateCmd.Flags().StringVar(&genEndType, "end-type", "", "End panel shape: triangle_down, triangle_up or flat")
	generateCmd.Flags().StringVar(&genSupportsLoc, "supports-loc", "", "Support chord: bottom_chord, top_chord or both")
	generateCmd.Flags().Float64Var(&genMinEndFraction, "min-end-fraction", 0, "Minimum end panel width as a fraction of the panel width, in (0, 1]")
	generateCmd.Flags().BoolVar(&genAllowOddUnits, "allow-odd-units", false, "Keep an odd panel count instead of rebalancing to even")

	generateCmd.Flags().Float64VarP(&genPitch, "pitch", "p", 0, "Roof pitch in degrees (roof family)")
	generateCmd.Flags().Float64Var(&genOverhang, "overhang", 0, "Eave overhang length along the roof slope")

	generateCmd.Flags().Float64Var(&genAtticWidth, "attic-width", 0, "Interior room width (attic only)")
	generateCmd.Flags().Float64Var(&genAtticHeight, "attic-height", 0, "Interior ceiling height, 0 puts the ceiling at the wall top")

	generateCmd.Flags().StringVar(&genSupportsType, "supports-type", "", "Support policy: simple, pinned or fixed")
	generateCmd.Flags().BoolVar(&genTopPinned, "top-pinned", false, "Pin the top chord joints instead of continuous")
	generateCmd.Flags().BoolVar(&genBottomPinned, "bottom-pinned", false, "Pin the bottom chord joints instead of continuous")

	generateCmd.Flags().Float64SliceVar(&genQTop, "q-top", nil, "Distributed load on the top chord, one value or one per member")
	generateCmd.Flags().Float64SliceVar(&genQBottom, "q-bottom", nil, "Distributed load on the bottom chord, one value or one per member")
	generateCmd.Flags().StringVar(&genQDirection, "q-direction", "", "Load direction: element, x or y")

	generateCmd.Flags().StringVarP(&genOutJSON, "out", "o", "", "Write the structural model as JSON to this file")
	generateCmd.Flags().StringVarP(&genImageFile, "image", "i", "", "Render the elevation to this image file (.png, .svg or .pdf)")
	generateCmd.Flags().BoolVarP(&genASCII, "ascii", "a", false, "Sketch the elevation in the terminal")
	generateCmd.Flags().BoolVar(&genProfile, "profile", false, "Plot the top chord profile in the terminal")
}

func runGenerate(cmd *cobra.Command, args []string) {
	if genType == "" {
		fmt.Println("Error: Please provide a truss type.")
		fmt.Println("Use 'gotruss types' to list the catalogue.")
		return
	}

	p := truss.Params{
		Width:             genWidth,
		Height:            genHeight,
		UnitWidth:         genUnitWidth,
		EndType:           truss.EndType(genEndType),
		SupportsLoc:       truss.SupportLocation(genSupportsLoc),
		MinEndFraction:    genMinEndFraction,
		AllowOddUnits:     genAllowOddUnits,
		RoofPitchDeg:      genPitch,
		OverhangLength:    genOverhang,
		AtticWidth:        genAtticWidth,
		AtticHeight:       genAtticHeight,
		TopChordPinned:    genTopPinned,
		BottomChordPinned: genBottomPinned,
		SupportsType:      truss.SupportType(genSupportsType),
	}

	tr, err := truss.New(genType, p)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	direction := structural.Direction(genQDirection)
	if len(genQTop) > 0 {
		if err := tr.ApplyQLoadToTopChord(direction, genQTop...); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	if len(genQBottom) > 0 {
		if err := tr.ApplyQLoadToBottomChord(direction, genQBottom...); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	if err := tr.Validate(); err != nil {
		fmt.Printf("Error: generated geometry failed validation: %v\n", err)
		return
	}

	printReport(tr)
	if err := writeArtifacts(tr, genOutJSON, genImageFile, genASCII, genProfile); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// printReport writes the node, member and support schedule of a built
// truss to stdout.
func printReport(tr *truss.Truss) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          %s\n", strings.ToUpper(tr.TypeName))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", tr.TypeName)
	fmt.Fprintf(w, "  Span:\t%.2f\n", tr.Width)
	fmt.Fprintf(w, "  Height:\t%.2f\n", tr.Height)
	fmt.Fprintf(w, "  Nodes:\t%d\n", len(tr.Nodes))
	fmt.Fprintf(w, "  Support policy:\t%s\n", tr.SupportsType)
	w.Flush()
	fmt.Println()

	fmt.Println("MEMBER SCHEDULE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Group\tCount\tMember IDs\n")
	fmt.Fprintf(w, "  ─────\t─────\t──────────\n")
	printChordRows(w, "Bottom chord", tr.BottomChordElements)
	printChordRows(w, "Top chord", tr.TopChordElements)
	fmt.Fprintf(w, "  Web diagonals\t%d\t%s\n", len(tr.WebElements), formatIDs(tr.WebElements))
	fmt.Fprintf(w, "  Web verticals\t%d\t%s\n", len(tr.WebVerticalElements), formatIDs(tr.WebVerticalElements))
	fmt.Fprintf(w, "  Total\t%d\t\n", tr.MemberCount())
	w.Flush()
	fmt.Println()

	fmt.Println("SUPPORTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tKind\tX\tY\n")
	for _, s := range tr.Supports {
		pos := tr.Nodes[s.Node]
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%.2f\n", s.Node, s.Kind, pos.X, pos.Y)
	}
	w.Flush()
	fmt.Println()

	if model, ok := tr.System.(*structural.Model); ok && model.LoadCount() > 0 {
		fmt.Println("DISTRIBUTED LOADS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Member\tQ\tDirection\n")
		for _, load := range model.Loads() {
			fmt.Fprintf(w, "  %d\t%.2f\t%s\n", load.MemberID, load.Q, load.Direction)
		}
		w.Flush()
		fmt.Println()
	}

	bottom, top, webs, verticals := tr.MemberCounts()
	fmt.Println(diagram.DrawSummaryBox("GENERATED MODEL", []string{
		fmt.Sprintf("Nodes:    %d", len(tr.Nodes)),
		fmt.Sprintf("Members:  %d (%d bottom, %d top, %d webs, %d verticals)",
			tr.MemberCount(), bottom, top, webs, verticals),
		fmt.Sprintf("Supports: %d", len(tr.Supports)),
	}))
}

func printChordRows(w io.Writer, label string, c truss.Chord) {
	if !c.IsSegmented() {
		ids := c.IDs()
		fmt.Fprintf(w, "  %s\t%d\t%s\n", label, len(ids), formatIDs(ids))
		return
	}
	for _, seg := range c.Segments() {
		fmt.Fprintf(w, "  %s (%s)\t%d\t%s\n", label, seg.Name, len(seg.IDs), formatIDs(seg.IDs))
	}
}

// formatIDs compresses a contiguous ascending run to "first-last".
func formatIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	contiguous := true
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1]+1 {
			contiguous = false
			break
		}
	}
	if contiguous {
		if len(ids) == 1 {
			return strconv.Itoa(ids[0])
		}
		return fmt.Sprintf("%d-%d", ids[0], ids[len(ids)-1])
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

// writeArtifacts emits the optional outputs shared by the generate and
// job commands.
func writeArtifacts(tr *truss.Truss, outJSON, imageFile string, ascii, profile bool) error {
	if ascii {
		fmt.Println(diagram.Elevation(tr, sketchWidth))
	}
	if profile {
		fmt.Println(diagram.ChordProfile(tr))
		fmt.Println()
	}
	if outJSON != "" {
		model, ok := tr.System.(*structural.Model)
		if !ok {
			return fmt.Errorf("JSON export needs the built-in model, got %T", tr.System)
		}
		raw, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(outJSON, append(raw, '\n'), 0644); err != nil {
			return err
		}
		fmt.Printf("  Model written to %s\n", outJSON)
	}
	if imageFile != "" {
		if err := diagram.ExportElevation(tr, imageFile); err != nil {
			return err
		}
		fmt.Printf("  Elevation rendered to %s\n", imageFile)
	}
	return nil
}
