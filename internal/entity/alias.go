package entity

// aliasTable implements spec.md §6.1's attribute alias table: each
// canonical key lists the aliases that may appear instead of it on a
// record. First-seen alias wins; later aliases on the same record are
// ignored (enforced by firstAttr's scan order below).
var aliasTable = map[string][]string{
	"background":           {"background", "background_color", "fill"},
	"border_color":          {"border_color", "stroke_color", "stroke"},
	"border_width":          {"border_width", "stroke_width"},
	"content":               {"content", "text"},
	"color":                 {"color", "text_color"},
	"source":                {"source", "source_id", "from"},
	"target":                {"target", "target_id", "to"},
	"radius_x":               {"radius_x", "rx"},
	"radius_y":               {"radius_y", "ry"},
	"radius":                 {"radius", "r"},
	"columns":                {"columns", "cols"},
	"horizontal_alignment":   {"horizontal_alignment", "h_align"},
	"vertical_alignment":     {"vertical_alignment", "v_align"},
	"start_x":                {"start_x", "x1"},
	"start_y":                {"start_y", "y1"},
	"end_x":                  {"end_x", "x2"},
	"end_y":                  {"end_y", "y2"},
	"start_angle":            {"start_angle", "start"},
	"end_angle":              {"end_angle", "end"},
}

// cellPaddingAliases is table-scoped: `padding` means `cell_padding`
// only on a `table` record (spec.md §6.1 footnote).
var cellPaddingAliases = []string{"cell_padding", "padding"}

// firstAttr returns the first key present, scanning in the order
// given. Canonical lookups should pass aliasTable[canonical]; the
// canonical key itself is always included first in that slice.
func firstAttr(attrs map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := attrs[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func attr(attrs map[string]any, canonical string) (any, bool) {
	keys, ok := aliasTable[canonical]
	if !ok {
		keys = []string{canonical}
	}
	return firstAttr(attrs, keys...)
}

func stringAttr(attrs map[string]any, canonical, def string) string {
	v, ok := attr(attrs, canonical)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func floatAttr(attrs map[string]any, canonical string, def float64) float64 {
	v, ok := attr(attrs, canonical)
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}

func boolAttr(attrs map[string]any, canonical string, def bool) bool {
	v, ok := attr(attrs, canonical)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

func intAttr(attrs map[string]any, canonical string, def int) int {
	v, ok := attr(attrs, canonical)
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return int(f)
}

func stringSliceAttr(attrs map[string]any, canonical string) []string {
	v, ok := attr(attrs, canonical)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
