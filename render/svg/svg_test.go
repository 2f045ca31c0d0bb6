package svg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugozap/volare-engine/internal/layout"
	"github.com/hugozap/volare-engine/render/svg"
)

func TestCanvas_Rect(t *testing.T) {
	c := svg.New(100, 50)
	require.NoError(t, c.Rect(layout.Rect{X: 1, Y: 2, W: 10, H: 20}, "red", "black", 1, 3))
	out := string(c.Bytes())
	assert.Contains(t, out, `<svg`)
	assert.Contains(t, out, `width="10.00" height="20.00"`)
	assert.Contains(t, out, `fill="red"`)
	assert.Contains(t, out, `rx="3.00"`)
	assert.Contains(t, out, `</svg>`)
}

func TestCanvas_EllipseArc_FullSweepUsesEllipseElement(t *testing.T) {
	c := svg.New(100, 100)
	require.NoError(t, c.EllipseArc(layout.Rect{X: 0, Y: 0, W: 20, H: 20}, 0, 360, "blue", "", 0))
	out := string(c.Bytes())
	assert.Contains(t, out, "<ellipse")
	assert.NotContains(t, out, "<path")
}

func TestCanvas_EllipseArc_PartialSweepUsesPath(t *testing.T) {
	c := svg.New(100, 100)
	require.NoError(t, c.EllipseArc(layout.Rect{X: 0, Y: 0, W: 20, H: 20}, 0, 90, "", "black", 1))
	out := string(c.Bytes())
	assert.Contains(t, out, "<path")
	assert.NotContains(t, out, "<ellipse")
}

func TestCanvas_Line_WithArrowheadDrawsPolygon(t *testing.T) {
	c := svg.New(100, 100)
	require.NoError(t, c.Line(0, 0, 10, 0, "black", 1, false, true, 4))
	out := string(c.Bytes())
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, "<polygon")
}

func TestCanvas_Line_NoArrowheadsOmitsPolygon(t *testing.T) {
	c := svg.New(100, 100)
	require.NoError(t, c.Line(0, 0, 10, 0, "black", 1, false, false, 4))
	out := string(c.Bytes())
	assert.NotContains(t, out, "<polygon")
}

func TestCanvas_Polyline(t *testing.T) {
	c := svg.New(100, 100)
	require.NoError(t, c.Polyline([][2]float64{{0, 0}, {10, 10}, {20, 0}}, "green", 2))
	out := string(c.Bytes())
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, "0.00,0.00 10.00,10.00 20.00,0.00")
}

func TestCanvas_Text_MultiLineUsesOneTspanPerLine(t *testing.T) {
	c := svg.New(100, 100)
	require.NoError(t, c.Text(0, 0, []string{"first", "second"}, "monospace", 12, 4, "black"))
	out := string(c.Bytes())
	assert.Equal(t, 2, strings.Count(out, "<tspan"))
}

func TestCanvas_Image(t *testing.T) {
	c := svg.New(100, 100)
	require.NoError(t, c.Image(layout.Rect{X: 1, Y: 2, W: 10, H: 10}, "icon.png"))
	out := string(c.Bytes())
	assert.Contains(t, out, `href="icon.png"`)
}

func TestCanvas_ColorEscaping(t *testing.T) {
	c := svg.New(10, 10)
	require.NoError(t, c.Rect(layout.Rect{W: 1, H: 1}, `"><script>`, "", 0, 0))
	out := string(c.Bytes())
	assert.NotContains(t, out, "<script>")
}

func TestCanvas_EmptyFillRendersNone(t *testing.T) {
	c := svg.New(10, 10)
	require.NoError(t, c.Rect(layout.Rect{W: 1, H: 1}, "", "", 0, 0))
	out := string(c.Bytes())
	assert.Contains(t, out, `fill="none"`)
}
