// Package svg is a thin Renderer backend that writes the primitives
// internal/render drives into a single SVG document, the one concrete
// renderer this module ships (spec.md §6.3 frames renderer backends
// as out of the core's scope beyond this reference adapter).
//
// Grounded on the buffer-and-Fprintf SVG writer of
// matzehuels-stacktower/pkg/render/tower/sink/svg.go and its
// styles.Style RenderBlock/RenderEdge/RenderText split.
package svg

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/hugozap/volare-engine/internal/layout"
	"github.com/hugozap/volare-engine/internal/render"
)

var _ render.Renderer = (*Canvas)(nil)

// Canvas accumulates SVG markup and implements render.Renderer.
type Canvas struct {
	buf           bytes.Buffer
	width, height float64
}

// New starts a canvas with the given document extent.
func New(width, height float64) *Canvas {
	c := &Canvas{width: width, height: height}
	fmt.Fprintf(&c.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.2f" height="%.2f">`+"\n",
		width, height, width, height)
	return c
}

// Bytes closes the document and returns the finished SVG.
func (c *Canvas) Bytes() []byte {
	c.buf.WriteString("</svg>\n")
	return c.buf.Bytes()
}

func (c *Canvas) Rect(r layout.Rect, fill, borderColor string, borderWidth, borderRadius float64) error {
	fmt.Fprintf(&c.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" %s/>`+"\n",
		r.X, r.Y, r.W, r.H, borderRadius, paintAttrs(fill, borderColor, borderWidth))
	return nil
}

func (c *Canvas) EllipseArc(r layout.Rect, startAngle, endAngle float64, fill, borderColor string, borderWidth float64) error {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	rx, ry := r.W/2, r.H/2
	if endAngle-startAngle >= 360 {
		fmt.Fprintf(&c.buf, `  <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" %s/>`+"\n",
			cx, cy, rx, ry, paintAttrs(fill, borderColor, borderWidth))
		return nil
	}
	x1, y1 := ellipsePoint(cx, cy, rx, ry, startAngle)
	x2, y2 := ellipsePoint(cx, cy, rx, ry, endAngle)
	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}
	fmt.Fprintf(&c.buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f" %s/>`+"\n",
		x1, y1, rx, ry, largeArc, x2, y2, paintAttrs(fill, borderColor, borderWidth))
	return nil
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, color string, strokeWidth float64, arrowStart, arrowEnd bool, arrowSize float64) error {
	fmt.Fprintf(&c.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x1, y1, x2, y2, svgColor(color), strokeWidth)
	if arrowStart {
		c.arrowhead(x1, y1, x2, y2, color, arrowSize)
	}
	if arrowEnd {
		c.arrowhead(x2, y2, x1, y1, color, arrowSize)
	}
	return nil
}

func (c *Canvas) Polyline(points [][2]float64, color string, strokeWidth float64) error {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.2f,%.2f", p[0], p[1])
	}
	fmt.Fprintf(&c.buf, `  <polyline points="%s" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		sb.String(), svgColor(color), strokeWidth)
	return nil
}

func (c *Canvas) Image(r layout.Rect, source string) error {
	fmt.Fprintf(&c.buf, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" href="%s"/>`+"\n",
		r.X, r.Y, r.W, r.H, html.EscapeString(source))
	return nil
}

func (c *Canvas) Text(x, y float64, lines []string, fontFamily string, fontSize, lineSpacing float64, color string) error {
	family := fontFamily
	if family == "" {
		family = "monospace"
	}
	fmt.Fprintf(&c.buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" fill="%s">`+"\n",
		x, y+fontSize, html.EscapeString(family), fontSize, svgColor(color))
	lh := fontSize + lineSpacing
	for i, line := range lines {
		fmt.Fprintf(&c.buf, `    <tspan x="%.2f" dy="%.2f">%s</tspan>`+"\n",
			x, lineDY(i, lh), html.EscapeString(line))
	}
	c.buf.WriteString("  </text>\n")
	return nil
}

func lineDY(i int, lh float64) float64 {
	if i == 0 {
		return 0
	}
	return lh
}

func (c *Canvas) arrowhead(tipX, tipY, fromX, fromY float64, color string, size float64) {
	if size <= 0 {
		size = 8
	}
	dx, dy := tipX-fromX, tipY-fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	nx, ny := dx/dist, dy/dist
	backX, backY := tipX-nx*size, tipY-ny*size
	perpX, perpY := -ny*size*0.4, nx*size*0.4
	fmt.Fprintf(&c.buf, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
		tipX, tipY, backX+perpX, backY+perpY, backX-perpX, backY-perpY, svgColor(color))
}

func paintAttrs(fill, borderColor string, borderWidth float64) string {
	var sb strings.Builder
	if fill == "" {
		sb.WriteString(`fill="none" `)
	} else {
		fmt.Fprintf(&sb, `fill="%s" `, svgColor(fill))
	}
	if borderColor != "" && borderWidth > 0 {
		fmt.Fprintf(&sb, `stroke="%s" stroke-width="%.2f"`, svgColor(borderColor), borderWidth)
	}
	return strings.TrimSpace(sb.String())
}

func ellipsePoint(cx, cy, rx, ry, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return cx + rx*math.Cos(rad), cy + ry*math.Sin(rad)
}

func svgColor(c string) string {
	if c == "" {
		return "none"
	}
	return html.EscapeString(c)
}
