package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotruss/internal/diagram"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.yaml>",
	Short: "Build a job file and check the generated geometry",
	Long: `Build the truss described by a YAML job file and run the geometry
checks: chord and web ids must reference placed nodes, no two nodes may
coincide and no member may have zero length.

Examples:
  gotruss validate truss.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	job, err := readJob(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	tr, err := job.build()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := tr.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	bottom, top, webs, verticals := tr.MemberCounts()
	fmt.Println()
	fmt.Println(diagram.DrawSummaryBox("GEOMETRY OK", []string{
		fmt.Sprintf("Type:     %s", tr.TypeName),
		fmt.Sprintf("Nodes:    %d", len(tr.Nodes)),
		fmt.Sprintf("Members:  %d (%d bottom, %d top, %d webs, %d verticals)",
			tr.MemberCount(), bottom, top, webs, verticals),
		fmt.Sprintf("Supports: %d", len(tr.Supports)),
	}))
}
