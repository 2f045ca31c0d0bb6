package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugozap/volare-engine/internal/component/document"
	"github.com/hugozap/volare-engine/internal/component/ishikawa"
	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/layout"
	"github.com/hugozap/volare-engine/internal/record"
	"github.com/hugozap/volare-engine/internal/render"
	"github.com/hugozap/volare-engine/render/svg"
)

// renderCommand builds the render subcommand: Record Parser → Tree
// Builder → Layout Engine → Constraint Solver → Render Driver, input
// JSONL to output SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var output string
	var advanceRatio float64

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSONL record stream to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if v := viper.GetFloat64("advance_ratio"); v > 0 {
				advanceRatio = v
			}
			return c.runRender(args[0], output, advanceRatio)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output SVG path (default: input path with .svg extension)")
	cmd.Flags().Float64Var(&advanceRatio, "advance-ratio", 0.6, "monospace character-width/font-size ratio used to measure text")

	return cmd
}

func (c *CLI) runRender(input, output string, advanceRatio float64) error {
	c.Logger.Infof("parsing %s", input)
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := record.Parse(f)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	b := entity.NewBuilder(doc)
	document.Register(b)
	ishikawa.Register(b)

	root, err := b.Build()
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	c.Logger.Debug("tree built")

	metrics := layout.DefaultMetrics{AdvanceRatio: advanceRatio}
	geo, err := layout.Layout(root, b, metrics)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	rootGeo := geo[root.Ref()]
	canvas := svg.New(rootGeo.Rect.W, rootGeo.Rect.H)
	driver := render.NewDriver(b, geo, canvas)
	if err := driver.Render(root); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if output == "" {
		output = withExt(input, ".svg")
	}
	if err := os.WriteFile(output, canvas.Bytes(), 0o644); err != nil {
		return err
	}
	c.Logger.Infof("wrote %s (%.0fx%.0f)", output, rootGeo.Rect.W, rootGeo.Rect.H)
	return nil
}

func withExt(path, ext string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[:i] + ext
		}
	}
	return path + ext
}
