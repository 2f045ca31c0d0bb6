package layout

import "github.com/hugozap/volare-engine/internal/entity"

// defaultShapeSize is the content-mode size of a rect that declares no
// fixed width/height; an image without a fixed size falls back to
// 100x100 instead (spec.md §4.3.2 leaves the content-mode fallback for
// rect/image unspecified).
const defaultShapeSize = 40

func measure(ctx *context, n *entity.Node) error {
	if _, ok := ctx.sizes[n.Ref()]; ok {
		return nil
	}
	size, err := measureKind(ctx, n)
	if err != nil {
		return err
	}
	ctx.sizes[n.Ref()] = size
	return nil
}

func measureKind(ctx *context, n *entity.Node) (Size, error) {
	b := ctx.builder
	switch n.Kind {
	case entity.KindText:
		t := b.Text(n.Index)
		lines := wrapText(t.Content, t.LineWidth)
		advance := ctx.metrics.Advance(t.FontFamily, t.FontSize)
		w := float64(minInt(t.LineWidth, longestLine(lines))) * advance
		h := float64(len(lines)) * (t.FontSize + t.LineSpacing)
		return overrideFixed(t.Width, t.Height, Size{W: w, H: h}), nil

	case entity.KindBox:
		x := b.Box(n.Index)
		if err := measure(ctx, x.Child); err != nil {
			return Size{}, err
		}
		child := ctx.sizes[x.Child.Ref()]
		content := Size{W: child.W + 2*x.Padding, H: child.H + 2*x.Padding}
		return overrideFixed(x.Width, x.Height, content), nil

	case entity.KindRect:
		r := b.Rect(n.Index)
		return overrideFixed(r.Width, r.Height, Size{W: defaultShapeSize, H: defaultShapeSize}), nil

	case entity.KindEllipse:
		e := b.Ellipse(n.Index)
		return Size{W: e.RadiusX * 2, H: e.RadiusY * 2}, nil

	case entity.KindLine:
		l := b.Line(n.Index)
		return Size{W: abs(l.EndX - l.StartX), H: abs(l.EndY - l.StartY)}, nil

	case entity.KindArc:
		a := b.Arc(n.Index)
		return Size{W: a.RadiusX * 2, H: a.RadiusY * 2}, nil

	case entity.KindSemicircle:
		s := b.Semicircle(n.Index)
		switch s.Orientation {
		case "left", "right":
			return Size{W: s.Radius, H: s.Radius * 2}, nil
		default: // "top", "bottom"
			return Size{W: s.Radius * 2, H: s.Radius}, nil
		}

	case entity.KindQuarterCircle:
		q := b.QuarterCircle(n.Index)
		return Size{W: q.Radius, H: q.Radius}, nil

	case entity.KindPolyline:
		p := b.Polyline(n.Index)
		return polylineBounds(p.Points), nil

	case entity.KindImage:
		im := b.Image(n.Index)
		return overrideFixed(im.Width, im.Height, Size{W: 100, H: 100}), nil

	case entity.KindSpacer:
		sp := b.Spacer(n.Index)
		return overrideFixed(sp.Width, sp.Height, Size{}), nil

	case entity.KindConnector:
		// Connectors are not layout participants; their geometry is a
		// function of their resolved endpoints, computed in arrange.
		return Size{}, nil

	case entity.KindVStack:
		return measureStack(ctx, n, true)

	case entity.KindHStack:
		return measureStack(ctx, n, false)

	case entity.KindGroup:
		var size Size
		for _, c := range n.Children {
			if err := measure(ctx, c); err != nil {
				return Size{}, err
			}
			cs := ctx.sizes[c.Ref()]
			if cs.W > size.W {
				size.W = cs.W
			}
			if cs.H > size.H {
				size.H = cs.H
			}
		}
		return size, nil

	case entity.KindTable:
		return measureTable(ctx, n)

	case entity.KindFreeContainer:
		return measureFreeContainer(ctx, n)

	case entity.KindConstraintContainer:
		return measureConstraintContainer(ctx, n)
	}
	return Size{}, &RenderError{Detail: "measure: unhandled kind " + n.Kind.String()}
}

// overrideFixed returns content as-is unless w/h is fixed, in which
// case the fixed value wins regardless of the content measurement
// (spec.md §4.3.1: fixed(n) always carries its declared pixel value).
func overrideFixed(w, h entity.Dimension, content Size) Size {
	out := content
	if w.Mode == entity.SizeFixed {
		out.W = w.Value
	}
	if h.Mode == entity.SizeFixed {
		out.H = h.Value
	}
	return out
}

func measureStack(ctx *context, n *entity.Node, vertical bool) (Size, error) {
	b := ctx.builder
	children := n.Children
	var spacing float64
	var declW, declH entity.Dimension
	if vertical {
		vs := b.VStack(n.Index)
		spacing, declW, declH = vs.Spacing, vs.Width, vs.Height
	} else {
		hs := b.HStack(n.Index)
		spacing, declW, declH = hs.Spacing, hs.Width, hs.Height
	}

	var main, cross float64
	for i, c := range children {
		if err := measure(ctx, c); err != nil {
			return Size{}, err
		}
		cs := ctx.sizes[c.Ref()]
		if vertical {
			main += cs.H
			if cs.W > cross {
				cross = cs.W
			}
		} else {
			main += cs.W
			if cs.H > cross {
				cross = cs.H
			}
		}
		if i > 0 {
			main += spacing
		}
	}

	var content Size
	if vertical {
		content = Size{W: cross, H: main}
	} else {
		content = Size{W: main, H: cross}
	}
	return overrideFixed(declW, declH, content), nil
}

func measureTable(ctx *context, n *entity.Node) (Size, error) {
	b := ctx.builder
	t := b.Table(n.Index)
	cols, widths, heights, err := tableGrid(ctx, t)
	if err != nil {
		return Size{}, err
	}
	_ = cols
	var w, h float64
	for _, cw := range widths {
		w += cw
	}
	for _, rh := range heights {
		h += rh
	}
	return Size{W: w, H: h}, nil
}

// tableGrid measures every cell and returns per-column widths and
// per-row heights, each inflated by 2*cell_padding (spec.md §4.3.5).
func tableGrid(ctx *context, t *entity.Table) (cols int, widths, heights []float64, err error) {
	cols = t.Columns
	if cols < 1 {
		cols = 1
	}
	rows := (len(t.Cells) + cols - 1) / cols
	widths = make([]float64, cols)
	heights = make([]float64, rows)
	for i, cell := range t.Cells {
		if err := measure(ctx, cell); err != nil {
			return 0, nil, nil, err
		}
		cs := ctx.sizes[cell.Ref()]
		col := i % cols
		row := i / cols
		cw := cs.W + 2*t.CellPadding
		ch := cs.H + 2*t.CellPadding
		if cw > widths[col] {
			widths[col] = cw
		}
		if ch > heights[row] {
			heights[row] = ch
		}
	}
	return cols, widths, heights, nil
}

func measureFreeContainer(ctx *context, n *entity.Node) (Size, error) {
	b := ctx.builder
	fc := b.FreeContainer(n.Index)
	var bboxW, bboxH float64
	for i, c := range fc.Children {
		if err := measure(ctx, c); err != nil {
			return Size{}, err
		}
		cs := ctx.sizes[c.Ref()]
		right := fc.ChildX[i] + cs.W
		bottom := fc.ChildY[i] + cs.H
		if right > bboxW {
			bboxW = right
		}
		if bottom > bboxH {
			bboxH = bottom
		}
	}
	return overrideFixed(fc.Width, fc.Height, Size{W: bboxW, H: bboxH}), nil
}

func measureConstraintContainer(ctx *context, n *entity.Node) (Size, error) {
	b := ctx.builder
	cc := b.ConstraintContainer(n.Index)
	rects, err := solveConstraintContainer(ctx, n, cc)
	if err != nil {
		return Size{}, err
	}
	var maxX, maxY float64
	for _, r := range rects {
		if right := r.X + r.W; right > maxX {
			maxX = right
		}
		if bottom := r.Y + r.H; bottom > maxY {
			maxY = bottom
		}
	}
	return overrideFixed(cc.Width, cc.Height, Size{W: maxX, H: maxY}), nil
}

func polylineBounds(points [][2]float64) Size {
	if len(points) == 0 {
		return Size{}
	}
	minX, minY := points[0][0], points[0][1]
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return Size{W: maxX - minX, H: maxY - minY}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
