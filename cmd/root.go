package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "Truss Structure Generator",
	Long: `gotruss - Go Truss Structure Generator

A CLI tool for generating idealized 2D truss structures from a
catalogue of standard topologies.

This tool helps structural engineers and detailers produce:
  - Parallel-chord flat trusses (Howe, Pratt, Warren)
  - Peaked roof trusses (King Post through Double Howe and Fan variants)
  - Attic roof trusses with a habitable interior room
  - Node, member and support schedules ready for an analysis engine

Generated models can be exported as JSON, rendered as images or
sketched directly in the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotruss v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Truss Structure Generator                            ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for generating idealized 2D truss structures")
		fmt.Println("  from a catalogue of standard topologies.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Flat trusses with Howe, Pratt and Warren panel layouts")
		fmt.Println("    • Roof trusses from King Post through Double Howe and Attic")
		fmt.Println("    • Distributed chord loads, support policies and overhangs")
		fmt.Println("    • JSON export, image rendering and terminal sketches")
		fmt.Println()
		fmt.Println("  Use 'gotruss --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
