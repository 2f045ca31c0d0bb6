package entity

import "github.com/hugozap/volare-engine/internal/constraint"

func decodeText(a map[string]any) *Text {
	return &Text{
		Content:     stringAttr(a, "content", ""),
		FontFamily:  stringAttr(a, "font_family", "monospace"),
		FontSize:    floatAttr(a, "font_size", 12),
		Color:       stringAttr(a, "color", "black"),
		LineWidth:   intAttr(a, "line_width", 80),
		LineSpacing: floatAttr(a, "line_spacing", 4),
		Width:       dimensionFromAttr(a, "width"),
		Height:      dimensionFromAttr(a, "height"),
	}
}

func decodeBox(a map[string]any) *Box {
	return &Box{
		Padding:      floatAttr(a, "padding", 10),
		Background:   stringAttr(a, "background", "white"),
		BorderColor:  stringAttr(a, "border_color", "black"),
		BorderWidth:  floatAttr(a, "border_width", 1),
		BorderRadius: floatAttr(a, "border_radius", 0),
		Width:        dimensionFromAttr(a, "width"),
		Height:       dimensionFromAttr(a, "height"),
	}
}

func decodeRect(a map[string]any) *Rect {
	return &Rect{
		Width:        dimensionFromAttr(a, "width"),
		Height:       dimensionFromAttr(a, "height"),
		Background:   stringAttr(a, "background", "white"),
		BorderColor:  stringAttr(a, "border_color", "black"),
		BorderWidth:  floatAttr(a, "border_width", 1),
		BorderRadius: floatAttr(a, "border_radius", 0),
	}
}

func decodeEllipse(a map[string]any) *Ellipse {
	rx := floatAttr(a, "radius_x", floatAttr(a, "width", 20)/2)
	ry := floatAttr(a, "radius_y", floatAttr(a, "height", 20)/2)
	return &Ellipse{
		RadiusX:     rx,
		RadiusY:     ry,
		Background:  stringAttr(a, "background", "white"),
		BorderColor: stringAttr(a, "border_color", "black"),
		BorderWidth: floatAttr(a, "border_width", 1),
	}
}

func decodeLine(a map[string]any) *Line {
	return &Line{
		StartX:      floatAttr(a, "start_x", 0),
		StartY:      floatAttr(a, "start_y", 0),
		EndX:        floatAttr(a, "end_x", 0),
		EndY:        floatAttr(a, "end_y", 0),
		Color:       stringAttr(a, "color", "black"),
		StrokeWidth: floatAttr(a, "border_width", 1),
	}
}

func decodeArc(a map[string]any) *Arc {
	return &Arc{
		RadiusX:     floatAttr(a, "radius_x", floatAttr(a, "radius", 20)),
		RadiusY:     floatAttr(a, "radius_y", floatAttr(a, "radius", 20)),
		StartAngle:  floatAttr(a, "start_angle", 0),
		EndAngle:    floatAttr(a, "end_angle", 90),
		Color:       stringAttr(a, "color", "black"),
		StrokeWidth: floatAttr(a, "border_width", 1),
	}
}

func decodeSemicircle(a map[string]any) *Semicircle {
	return &Semicircle{
		Radius:      floatAttr(a, "radius", 20),
		Orientation: stringAttr(a, "orientation", "top"),
		Background:  stringAttr(a, "background", "white"),
		BorderColor: stringAttr(a, "border_color", "black"),
		BorderWidth: floatAttr(a, "border_width", 1),
	}
}

func decodeQuarterCircle(a map[string]any) *QuarterCircle {
	return &QuarterCircle{
		Radius:      floatAttr(a, "radius", 20),
		Orientation: stringAttr(a, "orientation", "top_left"),
		Background:  stringAttr(a, "background", "white"),
		BorderColor: stringAttr(a, "border_color", "black"),
		BorderWidth: floatAttr(a, "border_width", 1),
	}
}

func decodePolyline(a map[string]any) *Polyline {
	raw, _ := attr(a, "points")
	var points [][2]float64
	if arr, ok := raw.([]any); ok {
		for _, e := range arr {
			if pt, ok := e.([]any); ok && len(pt) == 2 {
				x, _ := pt[0].(float64)
				y, _ := pt[1].(float64)
				points = append(points, [2]float64{x, y})
			}
		}
	}
	return &Polyline{
		Points:      points,
		Color:       stringAttr(a, "color", "black"),
		StrokeWidth: floatAttr(a, "border_width", 1),
	}
}

func decodeImage(a map[string]any) *Image {
	return &Image{
		Source: stringAttr(a, "source", ""),
		Width:  dimensionFromAttr(a, "width"),
		Height: dimensionFromAttr(a, "height"),
	}
}

func decodeSpacer(a map[string]any) *Spacer {
	return &Spacer{
		Width:  dimensionFromAttr(a, "width"),
		Height: dimensionFromAttr(a, "height"),
	}
}

func decodeConnector(a map[string]any) *Connector {
	return &Connector{
		SourceID:    stringAttr(a, "source", ""),
		TargetID:    stringAttr(a, "target", ""),
		SourcePort:  stringAttr(a, "source_port", "center"),
		TargetPort:  stringAttr(a, "target_port", "center"),
		Mode:        stringAttr(a, "mode", "straight"),
		CurveOffset: floatAttr(a, "curve_offset", 20),
		ArrowStart:  boolAttr(a, "arrow_start", false),
		ArrowEnd:    boolAttr(a, "arrow_end", true),
		ArrowSize:   floatAttr(a, "arrow_size", 8),
		Color:       stringAttr(a, "color", "black"),
		StrokeWidth: floatAttr(a, "border_width", 1),
	}
}

func decodeVStack(a map[string]any) *VStack {
	return &VStack{
		Spacing:   floatAttr(a, "spacing", 0),
		Alignment: stringAttr(a, "horizontal_alignment", "center"),
		Width:     dimensionFromAttr(a, "width"),
		Height:    dimensionFromAttr(a, "height"),
	}
}

func decodeHStack(a map[string]any) *HStack {
	return &HStack{
		Spacing:   floatAttr(a, "spacing", 0),
		Alignment: stringAttr(a, "vertical_alignment", "center"),
		Width:     dimensionFromAttr(a, "width"),
		Height:    dimensionFromAttr(a, "height"),
	}
}

func decodeTable(a map[string]any) *Table {
	return &Table{
		Columns:         intAttr(a, "columns", 1),
		CellPadding:     floatAttr(a, "cell_padding", firstOf(a, cellPaddingAliases, 4)),
		HeaderFillColor: stringAttr(a, "header_fill_color", "#dddddd"),
		FillColor:       stringAttr(a, "fill_color", "white"),
	}
}

func firstOf(a map[string]any, keys []string, def float64) float64 {
	if v, ok := firstAttr(a, keys...); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

func decodeFreeContainer(a map[string]any) *FreeContainer {
	return &FreeContainer{
		Width:  dimensionFromAttr(a, "width"),
		Height: dimensionFromAttr(a, "height"),
	}
}

func decodeConstraintContainer(a map[string]any) (*ConstraintContainer, error) {
	cc := &ConstraintContainer{
		Width:  dimensionFromAttr(a, "width"),
		Height: dimensionFromAttr(a, "height"),
	}
	raw, ok := attr(a, "constraints")
	if !ok {
		return cc, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return cc, nil
	}
	for _, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		decl := constraint.Declaration{
			Type:     stringVal(m, "type"),
			Entities: stringSliceAttr(m, "entities"),
			Entity:   stringVal(m, "entity"),
			Spacing:  floatVal(m, "spacing"),
			Ratio:    floatVal(m, "ratio"),
			Distance: floatVal(m, "distance"),
			Height:   floatVal(m, "h"),
		}
		cc.Constraints = append(cc.Constraints, decl)
	}
	return cc, nil
}

func stringVal(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func floatVal(m map[string]any, key string) float64 {
	if v, ok := m[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 0
}
