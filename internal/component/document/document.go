// Package document implements the document.* custom components:
// document, document.section, document.properties, and
// document.text — the "re-architecture path" spec.md §9 names for
// assembling primitives into a standard styled subtree.
//
// Grounded on create_document_container in
// original_source/custom_components/src/document/mod.rs; the nested
// section/properties/text variants are supplemented from that same
// package's documented (but here reconciled, per spec.md §9's open
// question) attribute shapes.
package document

import (
	"github.com/hugozap/volare-engine/internal/component/docstyle"
	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/record"
)

// Register installs every document.* factory on b.
func Register(b *entity.Builder) {
	b.RegisterFactory("document", createDocument)
	b.RegisterFactory("document.section", createSection)
	b.RegisterFactory("document.properties", createProperties)
	b.RegisterFactory("document.text", createText)
}

func stringAttr(attrs map[string]any, key, def string) string {
	if v, ok := attrs[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func floatAttr(attrs map[string]any, key string, def float64) float64 {
	if v, ok := attrs[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

// createDocument assembles header/content/footer ids (each optional)
// into a vstack, styled with the document theme's default width and
// background.
func createDocument(id string, attrs map[string]any, doc *record.Document, b *entity.Builder) (*entity.Node, error) {
	var childIDs []string
	for _, key := range []string{"header_id", "content_id", "footer_id"} {
		if v := stringAttr(attrs, key, ""); v != "" {
			childIDs = append(childIDs, v)
		}
	}
	width := floatAttr(attrs, "width", docstyle.DocumentWidthDefault)
	_, vstackID, err := b.Synthesize(doc, "vstack", map[string]any{
		"children":             toAny(childIDs),
		"horizontal_alignment": "stretch",
		"width":                width,
	})
	if err != nil {
		return nil, err
	}
	node, _, err := b.Synthesize(doc, "box", map[string]any{
		"children":      []any{vstackID},
		"padding":       docstyle.DocumentPadding,
		"background":    docstyle.DocumentContentBG,
		"border_color":  docstyle.DocumentBorder,
		"border_radius": docstyle.DocumentBorderRadius,
	})
	return node, err
}

// createSection builds a titled block: a large title line over a body
// text run, matching the header/content/footer slots document.*
// subtrees commonly assemble into.
func createSection(id string, attrs map[string]any, doc *record.Document, b *entity.Builder) (*entity.Node, error) {
	title := stringAttr(attrs, "title", "")
	body := stringAttr(attrs, "content", stringAttr(attrs, "text", ""))

	var childIDs []string
	if title != "" {
		_, titleID, err := b.Synthesize(doc, "text", map[string]any{
			"content":    title,
			"font_size":  docstyle.HeaderTitleSize,
			"color":      docstyle.TitleColor,
			"line_width": float64(docstyle.ContentLineWidth),
		})
		if err != nil {
			return nil, err
		}
		childIDs = append(childIDs, titleID)
	}
	if body != "" {
		_, bodyID, err := b.Synthesize(doc, "text", map[string]any{
			"content":    body,
			"font_size":  docstyle.TextMD,
			"color":      docstyle.BodyColor,
			"line_width": float64(docstyle.ContentLineWidth),
		})
		if err != nil {
			return nil, err
		}
		childIDs = append(childIDs, bodyID)
	}
	node, _, err := b.Synthesize(doc, "vstack", map[string]any{
		"children":             toAny(childIDs),
		"spacing":              docstyle.SpaceSM,
		"horizontal_alignment": "left",
	})
	return node, err
}

// createProperties resolves the dual documented shape spec.md §9
// leaves undefined: either `items:[{name,value}]` or
// `properties:[[name,value]]`. Both normalize to the same
// name/value table.
func createProperties(id string, attrs map[string]any, doc *record.Document, b *entity.Builder) (*entity.Node, error) {
	pairs := extractPairs(attrs)
	var rowIDs []string
	for _, p := range pairs {
		name, value := p[0], p[1]
		_, nameID, err := b.Synthesize(doc, "text", map[string]any{
			"content": name, "font_size": docstyle.TextSM, "color": docstyle.MetaColor,
		})
		if err != nil {
			return nil, err
		}
		_, valueID, err := b.Synthesize(doc, "text", map[string]any{
			"content": value, "font_size": docstyle.TextMD, "color": docstyle.BodyColor,
		})
		if err != nil {
			return nil, err
		}
		_, rowID, err := b.Synthesize(doc, "hstack", map[string]any{
			"children": []any{nameID, valueID},
			"spacing":  docstyle.SpaceMD,
		})
		if err != nil {
			return nil, err
		}
		rowIDs = append(rowIDs, rowID)
	}
	node, _, err := b.Synthesize(doc, "vstack", map[string]any{
		"children": toAny(rowIDs),
		"spacing":  docstyle.SpaceXS,
	})
	return node, err
}

// extractPairs normalizes document.properties' two documented shapes
// into a flat list of [name, value] pairs.
func extractPairs(attrs map[string]any) [][2]string {
	var pairs [][2]string
	if raw, ok := attrs["items"].([]any); ok {
		for _, e := range raw {
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			value, _ := m["value"].(string)
			pairs = append(pairs, [2]string{name, value})
		}
	}
	if raw, ok := attrs["properties"].([]any); ok {
		for _, e := range raw {
			arr, ok := e.([]any)
			if !ok || len(arr) != 2 {
				continue
			}
			name, _ := arr[0].(string)
			value, _ := arr[1].(string)
			pairs = append(pairs, [2]string{name, value})
		}
	}
	return pairs
}

// createText is a thin themed wrapper over a native text record.
func createText(id string, attrs map[string]any, doc *record.Document, b *entity.Builder) (*entity.Node, error) {
	node, _, err := b.Synthesize(doc, "text", map[string]any{
		"content":    stringAttr(attrs, "content", stringAttr(attrs, "text", "")),
		"font_size":  floatAttr(attrs, "font_size", docstyle.TextMD),
		"color":      stringAttr(attrs, "color", docstyle.BodyColor),
		"line_width": floatAttr(attrs, "line_width", float64(docstyle.ContentLineWidth)),
	})
	return node, err
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
