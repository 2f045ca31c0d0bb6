// Package ishikawa implements the `ishikawa` custom component: a
// fishbone/cause-and-effect diagram assembled from native lines and
// text, since create_ishikawa in original_source/diagrams/mod.rs is
// an unimplemented placeholder in the source this repository was
// distilled from (spec.md §9 names ishikawa as one of the custom
// components the build-time re-architecture path must cover).
package ishikawa

import (
	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/record"
)

const (
	spineLength  = 400.0
	spineHeight  = 2.0
	boneLength   = 90.0
	boneSpacing  = 70.0
	causeSpacing = 16.0
)

// Register installs the ishikawa factory on b.
func Register(b *entity.Builder) {
	b.RegisterFactory("ishikawa", create)
}

type category struct {
	Name   string
	Causes []string
}

// create lays the diagram out in a free_container: a horizontal spine
// line ending in a problem box, with alternating up/down angled bones
// carrying each category's causes.
func create(id string, attrs map[string]any, doc *record.Document, b *entity.Builder) (*entity.Node, error) {
	problem, _ := attrs["problem"].(string)
	categories := parseCategories(attrs)

	var placedIDs []string
	var placedXs, placedYs []float64
	place := func(childID string, x, y float64) {
		placedIDs = append(placedIDs, childID)
		placedXs = append(placedXs, x)
		placedYs = append(placedYs, y)
	}

	spineY := float64(len(categories)/2+1) * boneSpacing

	_, spineID, err := b.Synthesize(doc, "line", map[string]any{
		"start_x": 0.0, "start_y": spineY, "end_x": spineLength, "end_y": spineY,
		"border_width": spineHeight, "color": "black",
	})
	if err != nil {
		return nil, err
	}
	place(spineID, 0, spineY)

	_, problemTextID, err := b.Synthesize(doc, "text", map[string]any{
		"content": problem, "font_size": 14.0,
	})
	if err != nil {
		return nil, err
	}
	_, problemBoxID, err := b.Synthesize(doc, "box", map[string]any{
		"children":     []any{problemTextID},
		"padding":      8.0,
		"background":   "#fde68a",
		"border_color": "black",
	})
	if err != nil {
		return nil, err
	}
	place(problemBoxID, spineLength, spineY-20)

	for i, cat := range categories {
		above := i%2 == 0
		boneX := spineLength - float64(i/2+1)*boneSpacing
		tipY := spineY - boneLength
		if !above {
			tipY = spineY + boneLength
		}
		_, boneID, err := b.Synthesize(doc, "line", map[string]any{
			"start_x": boneX, "start_y": spineY, "end_x": boneX - boneLength/2, "end_y": tipY,
			"border_width": 1.5, "color": "black",
		})
		if err != nil {
			return nil, err
		}
		place(boneID, minF(boneX, boneX-boneLength/2), minF(spineY, tipY))

		labelY := tipY
		if above {
			labelY -= float64(len(cat.Causes)+1) * causeSpacing
		}
		_, labelID, err := b.Synthesize(doc, "text", map[string]any{
			"content": cat.Name, "font_size": 12.0, "color": "#1f2937",
		})
		if err != nil {
			return nil, err
		}
		place(labelID, boneX-boneLength/2-20, labelY)

		for j, cause := range cat.Causes {
			causeY := labelY + float64(j+1)*causeSpacing
			if !above {
				causeY = labelY + float64(j+2)*causeSpacing
			}
			_, causeID, err := b.Synthesize(doc, "text", map[string]any{
				"content": cause, "font_size": 10.0, "color": "#374151",
			})
			if err != nil {
				return nil, err
			}
			place(causeID, boneX-boneLength/2-20, causeY)
		}
	}

	width := spineLength + 80
	height := spineY*2 + boneLength + 40

	// free_container reads each child's own x/y attributes, not ones
	// passed to the container itself, so they're written directly onto
	// the already-synthesized child records before wrapping.
	for i, childID := range placedIDs {
		rec := doc.Records[childID]
		rec.Attributes["x"] = placedXs[i]
		rec.Attributes["y"] = placedYs[i]
	}
	node, _, err := b.Synthesize(doc, "free_container", map[string]any{
		"width": width, "height": height, "children": toAny(placedIDs),
	})
	return node, err
}

func parseCategories(attrs map[string]any) []category {
	raw, ok := attrs["categories"].([]any)
	if !ok {
		return nil
	}
	cats := make([]category, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		var causes []string
		if rawCauses, ok := m["causes"].([]any); ok {
			for _, c := range rawCauses {
				if s, ok := c.(string); ok {
					causes = append(causes, s)
				}
			}
		}
		cats = append(cats, category{Name: name, Causes: causes})
	}
	return cats
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
