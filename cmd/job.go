package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gotruss/structural"
	"github.com/alexiusacademia/gotruss/truss"
)

var (
	jobOutJSON   string
	jobImageFile string
	jobASCII     bool
	jobProfile   bool
)

var jobCmd = &cobra.Command{
	Use:   "job <file.yaml>",
	Short: "Generate a truss from a YAML job file",
	Long: `Generate a truss described by a YAML job file.

A job file names the truss type, sets the construction parameters and
lists the distributed loads to apply after assembly. Loads target a
whole chord or one named segment, with a single magnitude broadcast to
every member or one magnitude per member.

Example job file:
  type: attic
  width: 12
  roof_pitch_deg: 30
  attic_width: 6
  loads:
    - chord: top
      segment: left
      q: -6
    - chord: top
      segment: right
      q: -6
    - chord: bottom
      q: -2
      direction: y

Examples:
  # Generate and print the schedule
  gotruss job truss.yaml

  # Generate with a terminal sketch and a JSON export
  gotruss job truss.yaml --ascii --out model.json`,
	Args: cobra.ExactArgs(1),
	Run:  runJob,
}

func init() {
	rootCmd.AddCommand(jobCmd)

	jobCmd.Flags().StringVarP(&jobOutJSON, "out", "o", "", "Write the structural model as JSON to this file")
	jobCmd.Flags().StringVarP(&jobImageFile, "image", "i", "", "Render the elevation to this image file (.png, .svg or .pdf)")
	jobCmd.Flags().BoolVarP(&jobASCII, "ascii", "a", false, "Sketch the elevation in the terminal")
	jobCmd.Flags().BoolVarP(&jobProfile, "profile", "p", false, "Plot the top chord profile in the terminal")
}

func runJob(cmd *cobra.Command, args []string) {
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
		fmt.Printf("Error: generated geometry failed validation: %v\n", err)
		return
	}

	printReport(tr)
	if err := writeArtifacts(tr, jobOutJSON, jobImageFile, jobASCII, jobProfile); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// magnitudes accepts either a single scalar or a list, so job files can
// write "q: -10" for a broadcast load and "q: [-10, -12]" per member.
type magnitudes []float64

func (m *magnitudes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var list []float64
		if err := value.Decode(&list); err != nil {
			return err
		}
		*m = list
		return nil
	}
	var single float64
	if err := value.Decode(&single); err != nil {
		return err
	}
	*m = magnitudes{single}
	return nil
}

// jobLoad is one distributed load line in a job file. An empty chord
// means the top chord.
type jobLoad struct {
	Chord     string     `yaml:"chord"`
	Segment   string     `yaml:"segment"`
	Q         magnitudes `yaml:"q"`
	Direction string     `yaml:"direction"`
}

// jobSpec is the on-disk description of one truss: the type name, the
// construction parameters and the loads to apply after assembly.
type jobSpec struct {
	Type   string       `yaml:"type"`
	Params truss.Params `yaml:",inline"`
	Loads  []jobLoad    `yaml:"loads"`
}

func readJob(path string) (*jobSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job jobSpec
	if err := yaml.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if job.Type == "" {
		return nil, fmt.Errorf("%s: missing required field \"type\"", path)
	}
	return &job, nil
}

// build constructs the truss and applies the job's loads in order.
func (j *jobSpec) build() (*truss.Truss, error) {
	tr, err := truss.New(j.Type, j.Params)
	if err != nil {
		return nil, err
	}
	for i, load := range j.Loads {
		if err := applyJobLoad(tr, load); err != nil {
			return nil, fmt.Errorf("load %d: %w", i+1, err)
		}
	}
	return tr, nil
}

func applyJobLoad(tr *truss.Truss, load jobLoad) error {
	side := truss.ChordSide(load.Chord)
	if load.Chord == "" {
		side = truss.ChordTop
	}
	direction := structural.Direction(load.Direction)

	switch {
	case side == truss.ChordTop && load.Segment == "":
		return tr.ApplyQLoadToTopChord(direction, load.Q...)
	case side == truss.ChordTop:
		return tr.ApplyQLoadToTopChordSegment(load.Segment, direction, load.Q...)
	case side == truss.ChordBottom && load.Segment == "":
		return tr.ApplyQLoadToBottomChord(direction, load.Q...)
	case side == truss.ChordBottom:
		return tr.ApplyQLoadToBottomChordSegment(load.Segment, direction, load.Q...)
	}
	return fmt.Errorf("chord must be either %q or %q, got %q", truss.ChordTop, truss.ChordBottom, side)
}
