package layout

import (
	"math"

	"github.com/hugozap/volare-engine/internal/entity"
)

// ConnectorPath is the route a rendered connector follows, resolved
// from its endpoints' final geometry (spec.md §4.3.8). Arrowhead
// placement is derived by the renderer from Points' first and final
// segments and the connector entity's own ArrowStart/ArrowEnd/ArrowSize.
type ConnectorPath struct {
	Mode         string
	Points       [][2]float64
	ControlPoint [2]float64 // set only for "curved"
}

func arrangeConnector(ctx *context, n *entity.Node, outer Rect) error {
	c := ctx.builder.Connector(n.Index)
	srcGeo, ok := ctx.geo[c.SourceRef]
	if !ok {
		return &RenderError{Detail: "connector source geometry not yet resolved"}
	}
	tgtGeo, ok := ctx.geo[c.TargetRef]
	if !ok {
		return &RenderError{Detail: "connector target geometry not yet resolved"}
	}
	src := portPoint(srcGeo.Rect, c.SourcePort)
	tgt := portPoint(tgtGeo.Rect, c.TargetPort)

	path := buildConnectorPath(c.Mode, src, tgt, c.CurveOffset)
	ctx.geo[n.Ref()] = Geometry{Rect: boundsOf(path.Points), Path: path}
	return nil
}

// portPoint resolves a named anchor on r: center, edge midpoints, or
// corners (spec.md §4.3.8).
func portPoint(r Rect, port string) [2]float64 {
	switch port {
	case "top":
		return [2]float64{r.X + r.W/2, r.Y}
	case "bottom":
		return [2]float64{r.X + r.W/2, r.Y + r.H}
	case "left":
		return [2]float64{r.X, r.Y + r.H/2}
	case "right":
		return [2]float64{r.X + r.W, r.Y + r.H/2}
	case "top_left":
		return [2]float64{r.X, r.Y}
	case "top_right":
		return [2]float64{r.X + r.W, r.Y}
	case "bottom_left":
		return [2]float64{r.X, r.Y + r.H}
	case "bottom_right":
		return [2]float64{r.X + r.W, r.Y + r.H}
	default: // "center"
		return [2]float64{r.X + r.W/2, r.Y + r.H/2}
	}
}

// buildConnectorPath lays out the route for one of the three modes
// spec.md §4.3.8 names.
func buildConnectorPath(mode string, src, tgt [2]float64, curveOffset float64) *ConnectorPath {
	switch mode {
	case "orthogonal":
		dx := tgt[0] - src[0]
		dy := tgt[1] - src[1]
		var mid [2]float64
		if abs(dx) >= abs(dy) {
			mid = [2]float64{src[0] + dx/2, src[1]}
			return &ConnectorPath{Mode: mode, Points: [][2]float64{
				src, {mid[0], src[1]}, {mid[0], tgt[1]}, tgt,
			}}
		}
		mid = [2]float64{src[0], src[1] + dy/2}
		return &ConnectorPath{Mode: mode, Points: [][2]float64{
			src, {src[0], mid[1]}, {tgt[0], mid[1]}, tgt,
		}}
	case "curved":
		mx, my := (src[0]+tgt[0])/2, (src[1]+tgt[1])/2
		dx, dy := tgt[0]-src[0], tgt[1]-src[1]
		length := math.Hypot(dx, dy)
		var nx, ny float64
		if length > 0 {
			nx, ny = -dy/length, dx/length
		}
		ctrl := [2]float64{mx + nx*curveOffset, my + ny*curveOffset}
		return &ConnectorPath{Mode: mode, Points: [][2]float64{src, tgt}, ControlPoint: ctrl}
	default: // "straight"
		return &ConnectorPath{Mode: "straight", Points: [][2]float64{src, tgt}}
	}
}

func boundsOf(points [][2]float64) Rect {
	if len(points) == 0 {
		return Rect{}
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
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

