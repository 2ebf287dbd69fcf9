package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/builder"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/kicadout"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate <kind> <element.yaml>",
	Short: "Generate a KiCad footprint from an element description",
	Long: `Generate builds the land pattern of the given package kind from an
element description file and writes it as a .kicad_mod footprint into
the output directory. The file is named after the generated pattern.

Examples:
  # SOIC footprint at nominal density into the current directory
  otfp generate soic tl072.yaml

  # Least density into a footprint library
  otfp generate chip cap0805.yaml --out project.pretty --density L`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	e, err := element.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("element loaded", "path", path, "name", e.Name)

	p, err := builder.Build(kind, e, settings, logger)
	if err != nil {
		return err
	}

	out, err := kicadout.WriteFile(p, generateOut)
	if err != nil {
		return err
	}
	logger.Info("footprint written", "path", out)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", ".", "output directory")
	rootCmd.AddCommand(generateCmd)
}
