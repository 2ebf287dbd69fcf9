package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/builder"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/render"
)

var (
	previewOut    string
	previewScale  float64
	previewLabels bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <kind> <element.yaml>",
	Short: "Render a PNG preview of a footprint",
	Long: `Preview builds the land pattern and renders it as a PNG image
instead of writing a footprint file.

Examples:
  otfp preview soic tl072.yaml --out tl072.png
  otfp preview qfn regulator.yaml -o reg.png --scale 100 --labels`,
	Args: cobra.ExactArgs(2),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	e, err := element.Load(path)
	if err != nil {
		return err
	}

	p, err := builder.Build(kind, e, settings, logger)
	if err != nil {
		return err
	}

	f, err := os.Create(previewOut)
	if err != nil {
		return err
	}
	opts := render.Options{Scale: previewScale, Labels: previewLabels}
	if err := render.PNG(p, f, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("preview written", "path", previewOut, "name", p.Name)
	return nil
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "preview.png", "output image path")
	previewCmd.Flags().Float64Var(&previewScale, "scale", 50, "pixels per millimeter")
	previewCmd.Flags().BoolVar(&previewLabels, "labels", false, "draw pad names")
	rootCmd.AddCommand(previewCmd)
}
