package layout

import "github.com/hugozap/volare-engine/internal/entity"

func arrange(ctx *context, n *entity.Node, outer Rect) error {
	b := ctx.builder
	switch n.Kind {
	case entity.KindBox:
		return arrangeBox(ctx, n, b.Box(n.Index), outer)
	case entity.KindVStack:
		return arrangeStack(ctx, n, outer, true)
	case entity.KindHStack:
		return arrangeStack(ctx, n, outer, false)
	case entity.KindGroup:
		return arrangeGroup(ctx, n, outer)
	case entity.KindTable:
		return arrangeTable(ctx, n, outer)
	case entity.KindFreeContainer:
		return arrangeFreeContainer(ctx, n, outer)
	case entity.KindConstraintContainer:
		return arrangeConstraintContainer(ctx, n, outer)
	case entity.KindConnector:
		return arrangeConnector(ctx, n, outer)
	case entity.KindText:
		t := b.Text(n.Index)
		ctx.geo[n.Ref()] = Geometry{Rect: outer, Lines: wrapText(t.Content, t.LineWidth)}
		return nil
	default:
		ctx.geo[n.Ref()] = Geometry{Rect: outer}
		return nil
	}
}

func arrangeBox(ctx *context, n *entity.Node, x *entity.Box, outer Rect) error {
	ctx.geo[n.Ref()] = Geometry{Rect: outer}
	pad := x.Padding
	innerW, innerH := nonNeg(outer.W-2*pad), nonNeg(outer.H-2*pad)
	childRect := Rect{X: outer.X + pad, Y: outer.Y + pad, W: innerW, H: innerH}
	childRect.W, childRect.H = resolvedChildSize(ctx, x.Child, innerW, innerH)
	if err := arrange(ctx, x.Child, childRect); err != nil {
		return err
	}
	return arrangeExtras(ctx, n, 1, outer)
}

// arrangeExtras handles connectors that promoteConnectors appended to
// n.Children past knownCount, the number of children a container's
// own decoded struct (Box.Child, Group.Children, ...) accounts for.
// Promotion always appends, so anything beyond knownCount is a
// connector with no slot of its own; arrangeConnector ignores outer
// entirely, so passing the container's own rect through is harmless.
func arrangeExtras(ctx *context, n *entity.Node, knownCount int, outer Rect) error {
	for _, c := range n.Children[knownCount:] {
		if err := arrange(ctx, c, outer); err != nil {
			return err
		}
	}
	return nil
}

// resolvedChildSize returns a child's final width/height given the
// cross/main space its parent allocated: a grow dimension fills the
// allocation, everything else keeps its measured intrinsic size.
func resolvedChildSize(ctx *context, child *entity.Node, allocW, allocH float64) (float64, float64) {
	cs := ctx.sizes[child.Ref()]
	w, h := cs.W, cs.H
	if dw, dh, ok := dimensionOf(child, ctx.builder); ok {
		if dw.Mode == entity.SizeGrow {
			w = allocW
		}
		if dh.Mode == entity.SizeGrow {
			h = allocH
		}
	}
	return w, h
}

func nonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func arrangeStack(ctx *context, n *entity.Node, outer Rect, vertical bool) error {
	ctx.geo[n.Ref()] = Geometry{Rect: outer}
	b := ctx.builder
	// n.Children, not the decoded VStack/HStack's own Children, is the
	// authoritative list: promoteConnectors appends reparented
	// connectors to the Node, never to the decoded struct.
	children := n.Children
	var spacing float64
	var alignment string
	if vertical {
		vs := b.VStack(n.Index)
		spacing, alignment = vs.Spacing, vs.Alignment
	} else {
		hs := b.HStack(n.Index)
		spacing, alignment = hs.Spacing, hs.Alignment
	}
	if len(children) == 0 {
		return nil
	}

	mainAlloc := outer.W
	if vertical {
		mainAlloc = outer.H
	}

	fixedSum := spacing * float64(len(children)-1)
	var growChildren []*entity.Node
	for _, c := range children {
		cs := ctx.sizes[c.Ref()]
		main := cs.H
		if !vertical {
			main = cs.W
		}
		if dw, dh, ok := dimensionOf(c, b); ok {
			growMode := dh.Mode == entity.SizeGrow
			if !vertical {
				growMode = dw.Mode == entity.SizeGrow
			}
			if growMode {
				growChildren = append(growChildren, c)
				continue
			}
		}
		fixedSum += main
	}
	growShare := 0.0
	if len(growChildren) > 0 {
		growShare = nonNeg(mainAlloc-fixedSum) / float64(len(growChildren))
	}

	crossAlloc := outer.H
	if vertical {
		crossAlloc = outer.W
	}

	cursor := 0.0
	for _, c := range children {
		isGrow := containsNode(growChildren, c)
		var mainExtent float64
		cs := ctx.sizes[c.Ref()]
		if isGrow {
			mainExtent = growShare
		} else if vertical {
			mainExtent = cs.H
		} else {
			mainExtent = cs.W
		}

		crossExtent := cs.H
		if vertical {
			crossExtent = cs.W
		}
		stretch := alignment == "stretch"
		if dw, dh, ok := dimensionOf(c, b); ok {
			if vertical && dw.Mode == entity.SizeGrow {
				stretch = true
			}
			if !vertical && dh.Mode == entity.SizeGrow {
				stretch = true
			}
		}
		if stretch {
			crossExtent = crossAlloc
		}

		crossPos := crossAlignOffset(alignment, crossAlloc, crossExtent)

		var childRect Rect
		if vertical {
			childRect = Rect{X: outer.X + crossPos, Y: outer.Y + cursor, W: crossExtent, H: mainExtent}
		} else {
			childRect = Rect{X: outer.X + cursor, Y: outer.Y + crossPos, W: mainExtent, H: crossExtent}
		}
		if err := arrange(ctx, c, childRect); err != nil {
			return err
		}
		cursor += mainExtent + spacing
	}
	return nil
}

func crossAlignOffset(alignment string, alloc, extent float64) float64 {
	switch alignment {
	case "center":
		return nonNeg(alloc-extent) / 2
	case "right", "bottom":
		return nonNeg(alloc - extent)
	default: // "left", "top", "stretch"
		return 0
	}
}

func containsNode(list []*entity.Node, n *entity.Node) bool {
	for _, c := range list {
		if c == n {
			return true
		}
	}
	return false
}

func arrangeGroup(ctx *context, n *entity.Node, outer Rect) error {
	ctx.geo[n.Ref()] = Geometry{Rect: outer}
	// n.Children, not Group.Children, carries any connector promotion
	// appended (see arrangeStack).
	for _, c := range n.Children {
		cs := ctx.sizes[c.Ref()]
		if err := arrange(ctx, c, Rect{X: outer.X, Y: outer.Y, W: cs.W, H: cs.H}); err != nil {
			return err
		}
	}
	return nil
}

func arrangeTable(ctx *context, n *entity.Node, outer Rect) error {
	ctx.geo[n.Ref()] = Geometry{Rect: outer}
	t := ctx.builder.Table(n.Index)
	cols, widths, heights, err := tableGrid(ctx, t)
	if err != nil {
		return err
	}
	colX := make([]float64, cols)
	x := outer.X
	for i := range widths {
		colX[i] = x
		x += widths[i]
	}
	rowY := make([]float64, len(heights))
	y := outer.Y
	for i := range heights {
		rowY[i] = y
		y += heights[i]
	}
	for i, cell := range t.Cells {
		col := i % cols
		row := i / cols
		slotW, slotH := widths[col], heights[row]
		cs := ctx.sizes[cell.Ref()]
		cellW, cellH := cs.W, cs.H
		cellX := colX[col] + (slotW-cellW-2*t.CellPadding)/2 + t.CellPadding
		cellY := rowY[row] + (slotH-cellH-2*t.CellPadding)/2 + t.CellPadding
		if err := arrange(ctx, cell, Rect{X: cellX, Y: cellY, W: cellW, H: cellH}); err != nil {
			return err
		}
	}
	return arrangeExtras(ctx, n, len(t.Cells), outer)
}

func arrangeFreeContainer(ctx *context, n *entity.Node, outer Rect) error {
	ctx.geo[n.Ref()] = Geometry{Rect: outer}
	fc := ctx.builder.FreeContainer(n.Index)
	// fc.ChildX/ChildY are positionally parallel to fc.Children, so
	// cells keep reading off the decoded struct; any connector
	// promotion lands past fc.Children in n.Children (see arrangeExtras).
	for i, c := range fc.Children {
		cs := ctx.sizes[c.Ref()]
		rect := Rect{X: outer.X + fc.ChildX[i], Y: outer.Y + fc.ChildY[i], W: cs.W, H: cs.H}
		if err := arrange(ctx, c, rect); err != nil {
			return err
		}
	}
	return arrangeExtras(ctx, n, len(fc.Children), outer)
}

func arrangeConstraintContainer(ctx *context, n *entity.Node, outer Rect) error {
	ctx.geo[n.Ref()] = Geometry{Rect: outer}
	cc := ctx.builder.ConstraintContainer(n.Index)
	rects, err := solveConstraintContainer(ctx, n, cc)
	if err != nil {
		return err
	}
	// cc.ChildIDs is positionally parallel to cc.Children for the
	// solver; promoted connectors land past cc.Children in n.Children.
	for i, c := range cc.Children {
		r := rects[cc.ChildIDs[i]]
		rect := Rect{X: outer.X + r.X, Y: outer.Y + r.Y, W: r.W, H: r.H}
		if err := arrange(ctx, c, rect); err != nil {
			return err
		}
	}
	return arrangeExtras(ctx, n, len(cc.Children), outer)
}
