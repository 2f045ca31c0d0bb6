package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugozap/volare-engine/internal/component/document"
	"github.com/hugozap/volare-engine/internal/component/ishikawa"
	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/layout"
	"github.com/hugozap/volare-engine/internal/record"
)

// validateCommand parses, builds, and lays out a JSONL file without
// rendering, reporting the first error encountered at whichever stage
// it surfaces (spec.md §7: every stage raises typed errors tagged by
// origin).
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse, build, and lay out a JSONL file without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(input string) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := record.Parse(f)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	c.Logger.Infof("parsed %d records", len(doc.Records))

	b := entity.NewBuilder(doc)
	document.Register(b)
	ishikawa.Register(b)

	root, err := b.Build()
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	c.Logger.Info("tree built")

	geo, err := layout.Layout(root, b, nil)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	rootGeo := geo[root.Ref()]
	c.Logger.Infof("ok: root size %.0fx%.0f, %d entities resolved", rootGeo.Rect.W, rootGeo.Rect.H, len(geo))
	return nil
}
