package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotruss/truss"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the truss type catalogue",
	Run:   runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

type catalogueRow struct {
	name     string
	family   string
	requires string
	notes    string
}

var catalogue = []catalogueRow{
	{"howe", "flat", "width, height, unit-width", "verticals plus diagonals leaning to the center"},
	{"pratt", "flat", "width, height, unit-width", "verticals plus diagonals leaning to the ends"},
	{"warren", "flat", "width, height, unit-width", "alternating diagonals, no verticals"},
	{"king_post", "roof", "width, pitch", "single center post"},
	{"queen_post", "roof", "width, pitch", "two posts under the rafters"},
	{"fink", "roof", "width, pitch", "W webbing"},
	{"howe_roof", "roof", "width, pitch", "verticals with diagonals toward the peak"},
	{"pratt_roof", "roof", "width, pitch", "verticals with diagonals toward the heel"},
	{"fan", "roof", "width, pitch", "fanned webs from the bottom third points"},
	{"modified_queen_post", "roof", "width, pitch", "queen post with extra web triangles"},
	{"double_fink", "roof", "width, pitch", "WW webbing for longer spans"},
	{"double_howe", "roof", "width, pitch", "howe webbing for longer spans"},
	{"modified_fan", "roof", "width, pitch", "fan webbing for longer spans"},
	{"attic", "roof", "width, pitch, attic-width", "habitable interior room"},
}

func runTypes(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("AVAILABLE TRUSS TYPES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type\tFamily\tRequires\tNotes\n")
	fmt.Fprintf(w, "  ────\t──────\t────────\t─────\n")
	for _, row := range catalogue {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", row.name, row.family, row.requires, row.notes)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Names are case-insensitive; hyphens and spaces work like underscores.")
	fmt.Println("  All accepted spellings:")
	fmt.Printf("    %s\n", strings.Join(truss.KnownTypes(), ", "))
	fmt.Println()
}
