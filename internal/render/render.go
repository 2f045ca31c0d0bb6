// Package render implements the Render Driver stage: it walks the
// built tree with resolved geometry and emits draw calls through a
// narrow Renderer interface, never re-querying the builder for
// geometry itself (spec.md §4.5, §6.3).
//
// Grounded on the Renderer interface and RenderElement dispatch of
// waozixyz-kryon/impl/go/render/render.go, generalized from its single
// concrete raylib backend to the renderer-agnostic contract spec.md
// §6.3 requires.
package render

import (
	"fmt"

	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/layout"
)

// RenderError reports a failure raised by the sink a Renderer writes
// to (spec.md §7).
type RenderError struct{ Detail string }

func (e *RenderError) Error() string { return fmt.Sprintf("render: %s", e.Detail) }

// Renderer is the narrow interface a concrete backend (SVG, raster,
// …) implements. Every method receives the entity's own attributes
// plus its resolved Rect; a Renderer must never call back into the
// Builder for geometry (spec.md §6.3).
type Renderer interface {
	Rect(r layout.Rect, fill, borderColor string, borderWidth, borderRadius float64) error
	EllipseArc(r layout.Rect, startAngle, endAngle float64, fill, borderColor string, borderWidth float64) error
	Line(x1, y1, x2, y2 float64, color string, strokeWidth float64, arrowStart, arrowEnd bool, arrowSize float64) error
	Polyline(points [][2]float64, color string, strokeWidth float64) error
	Image(r layout.Rect, source string) error
	Text(x, y float64, lines []string, fontFamily string, fontSize, lineSpacing float64, color string) error
}

// Driver walks a built, laid-out tree and drives a Renderer.
type Driver struct {
	builder *entity.Builder
	geo     map[entity.Ref]layout.Geometry
	sink    Renderer
}

func NewDriver(b *entity.Builder, geo map[entity.Ref]layout.Geometry, sink Renderer) *Driver {
	return &Driver{builder: b, geo: geo, sink: sink}
}

// Render draws root and its whole subtree. Children are drawn after
// their parent's background/border; connectors are drawn after every
// other child of their (already-promoted) container (spec.md §4.5),
// which holds automatically here because promotion appends connectors
// as the last child and this walk visits children in declared order.
func (d *Driver) Render(root *entity.Node) error {
	return d.draw(root)
}

func (d *Driver) draw(n *entity.Node) error {
	geo, ok := d.geo[n.Ref()]
	if !ok {
		return &RenderError{Detail: fmt.Sprintf("no geometry resolved for %s#%d", n.Kind, n.Index)}
	}
	b := d.builder

	switch n.Kind {
	case entity.KindBox:
		x := b.Box(n.Index)
		if err := d.sink.Rect(geo.Rect, x.Background, x.BorderColor, x.BorderWidth, x.BorderRadius); err != nil {
			return err
		}
		if err := d.draw(x.Child); err != nil {
			return err
		}
		return d.drawChildren(n.Children[1:])

	case entity.KindRect:
		r := b.Rect(n.Index)
		return d.sink.Rect(geo.Rect, r.Background, r.BorderColor, r.BorderWidth, r.BorderRadius)

	case entity.KindEllipse:
		e := b.Ellipse(n.Index)
		return d.sink.EllipseArc(geo.Rect, 0, 360, e.Background, e.BorderColor, e.BorderWidth)

	case entity.KindArc:
		a := b.Arc(n.Index)
		return d.sink.EllipseArc(geo.Rect, a.StartAngle, a.EndAngle, "", a.Color, a.StrokeWidth)

	case entity.KindSemicircle:
		s := b.Semicircle(n.Index)
		start, end := semicircleAngles(s.Orientation)
		return d.sink.EllipseArc(geo.Rect, start, end, s.Background, s.BorderColor, s.BorderWidth)

	case entity.KindQuarterCircle:
		q := b.QuarterCircle(n.Index)
		start, end := quarterCircleAngles(q.Orientation)
		return d.sink.EllipseArc(geo.Rect, start, end, q.Background, q.BorderColor, q.BorderWidth)

	case entity.KindLine:
		l := b.Line(n.Index)
		x1, y1, x2, y2 := translateLine(geo.Rect, l.StartX, l.StartY, l.EndX, l.EndY)
		return d.sink.Line(x1, y1, x2, y2, l.Color, l.StrokeWidth, false, false, 0)

	case entity.KindPolyline:
		p := b.Polyline(n.Index)
		return d.sink.Polyline(translatePolyline(geo.Rect, p.Points), p.Color, p.StrokeWidth)

	case entity.KindImage:
		im := b.Image(n.Index)
		return d.sink.Image(geo.Rect, im.Source)

	case entity.KindSpacer:
		return nil

	case entity.KindText:
		t := b.Text(n.Index)
		return d.sink.Text(geo.Rect.X, geo.Rect.Y, geo.Lines, t.FontFamily, t.FontSize, t.LineSpacing, t.Color)

	case entity.KindConnector:
		return d.drawConnector(n, geo)

	case entity.KindVStack, entity.KindHStack, entity.KindGroup:
		// n.Children, not the decoded struct's own Children, carries
		// any connector promotion appended (spec.md §4.2, §9).
		return d.drawChildren(n.Children)
	case entity.KindTable:
		return d.drawTable(n)
	case entity.KindFreeContainer:
		fc := b.FreeContainer(n.Index)
		if err := d.drawChildren(fc.Children); err != nil {
			return err
		}
		return d.drawChildren(n.Children[len(fc.Children):])
	case entity.KindConstraintContainer:
		cc := b.ConstraintContainer(n.Index)
		if err := d.drawChildren(cc.Children); err != nil {
			return err
		}
		return d.drawChildren(n.Children[len(cc.Children):])
	}
	return &RenderError{Detail: "unhandled kind " + n.Kind.String()}
}

func (d *Driver) drawChildren(children []*entity.Node) error {
	for _, c := range children {
		if err := d.draw(c); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) drawTable(n *entity.Node) error {
	t := d.builder.Table(n.Index)
	cols := t.Columns
	if cols < 1 {
		cols = 1
	}
	for i, cell := range t.Cells {
		row := i / cols
		fill := t.FillColor
		if row == 0 {
			fill = t.HeaderFillColor
		}
		geo := d.geo[cell.Ref()]
		pad := t.CellPadding
		slot := layout.Rect{X: geo.Rect.X - pad, Y: geo.Rect.Y - pad, W: geo.Rect.W + 2*pad, H: geo.Rect.H + 2*pad}
		if err := d.sink.Rect(slot, fill, "", 0, 0); err != nil {
			return err
		}
		if err := d.draw(cell); err != nil {
			return err
		}
	}
	return d.drawChildren(n.Children[len(t.Cells):])
}

func (d *Driver) drawConnector(n *entity.Node, geo layout.Geometry) error {
	c := d.builder.Connector(n.Index)
	if geo.Path == nil || len(geo.Path.Points) < 2 {
		return &RenderError{Detail: "connector has no resolved path"}
	}
	if geo.Path.Mode == "curved" {
		return d.sink.Polyline(sampleQuadraticBezier(geo.Path.Points[0], geo.Path.ControlPoint, geo.Path.Points[1], 16), c.Color, c.StrokeWidth)
	}
	pts := geo.Path.Points
	for i := 0; i < len(pts)-1; i++ {
		isLast := i == len(pts)-2
		isFirst := i == 0
		if err := d.sink.Line(pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1],
			c.Color, c.StrokeWidth, isFirst && c.ArrowStart, isLast && c.ArrowEnd, c.ArrowSize); err != nil {
			return err
		}
	}
	return nil
}

func semicircleAngles(orientation string) (float64, float64) {
	switch orientation {
	case "bottom":
		return 0, 180
	case "left":
		return 90, 270
	case "right":
		return 270, 450
	default: // "top"
		return 180, 360
	}
}

func quarterCircleAngles(orientation string) (float64, float64) {
	switch orientation {
	case "top_right":
		return 270, 360
	case "bottom_right":
		return 0, 90
	case "bottom_left":
		return 90, 180
	default: // "top_left"
		return 180, 270
	}
}

// translateLine maps a line's declared (possibly arbitrary-origin)
// local coordinates onto its resolved Rect, which layout computed as
// the line's bounding box placed at (r.X, r.Y).
func translateLine(r layout.Rect, x1, y1, x2, y2 float64) (float64, float64, float64, float64) {
	minX, minY := minF(x1, x2), minF(y1, y2)
	dx, dy := r.X-minX, r.Y-minY
	return x1 + dx, y1 + dy, x2 + dx, y2 + dy
}

func translatePolyline(r layout.Rect, points [][2]float64) [][2]float64 {
	if len(points) == 0 {
		return nil
	}
	minX, minY := points[0][0], points[0][1]
	for _, p := range points[1:] {
		minX, minY = minF(minX, p[0]), minF(minY, p[1])
	}
	dx, dy := r.X-minX, r.Y-minY
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64{p[0] + dx, p[1] + dy}
	}
	return out
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// sampleQuadraticBezier flattens a quadratic Bézier curve (src,
// control, dst) into steps+1 points, the Polyline-friendly form every
// Renderer backend already knows how to draw.
func sampleQuadraticBezier(src, ctrl, dst [2]float64, steps int) [][2]float64 {
	points := make([][2]float64, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		x := mt*mt*src[0] + 2*mt*t*ctrl[0] + t*t*dst[0]
		y := mt*mt*src[1] + 2*mt*t*ctrl[1] + t*t*dst[1]
		points[i] = [2]float64{x, y}
	}
	return points
}
