package entity

import "github.com/hugozap/volare-engine/internal/constraint"

// Text is a wrapped run of monospaced text (spec.md §4.3.2).
type Text struct {
	Content     string
	FontFamily  string
	FontSize    float64
	Color       string
	LineWidth   int // max characters per line before wrapping
	LineSpacing float64
	Width       Dimension
	Height      Dimension
}

// Box wraps exactly one child with uniform padding (spec.md §4.3.3).
type Box struct {
	Child         *Node
	Padding       float64
	Background    string
	BorderColor   string
	BorderWidth   float64
	BorderRadius  float64
	Width         Dimension
	Height        Dimension
}

// Rect is a filled/stroked rectangle shape.
type Rect struct {
	Width        Dimension
	Height       Dimension
	Background   string
	BorderColor  string
	BorderWidth  float64
	BorderRadius float64
}

// Ellipse is drawn from its bounding box; RadiusX/RadiusY are half of
// Width/Height when not declared directly.
type Ellipse struct {
	RadiusX     float64
	RadiusY     float64
	Background  string
	BorderColor string
	BorderWidth float64
}

// Line is a straight segment between two points, sized to its own
// bounding box (spec.md §4.3.2).
type Line struct {
	StartX, StartY float64
	EndX, EndY     float64
	Color          string
	StrokeWidth    float64
}

// Arc is a partial ellipse outline from StartAngle to EndAngle
// (degrees, clockwise from 3 o'clock).
type Arc struct {
	RadiusX, RadiusY       float64
	StartAngle, EndAngle   float64
	Color                  string
	StrokeWidth            float64
}

// Semicircle and QuarterCircle are named convenience shapes whose
// sweep is implied rather than declared via StartAngle/EndAngle.
type Semicircle struct {
	Radius      float64
	Orientation string // "top" | "bottom" | "left" | "right"
	Background  string
	BorderColor string
	BorderWidth float64
}

type QuarterCircle struct {
	Radius      float64
	Orientation string // "top_left" | "top_right" | "bottom_left" | "bottom_right"
	Background  string
	BorderColor string
	BorderWidth float64
}

// Polyline is an ordered sequence of points, sized to its bounding box.
type Polyline struct {
	Points      [][2]float64
	Color       string
	StrokeWidth float64
}

// Image's intrinsic size is its declared dimensions; decoding pixel
// data is the renderer's concern (spec.md §6.3's opaque measurement
// service boundary).
type Image struct {
	Source string
	Width  Dimension
	Height Dimension
}

// Spacer occupies space without drawing anything.
type Spacer struct {
	Width  Dimension
	Height Dimension
}

// Connector references its endpoints by id; it does not own them.
// SourceRef/TargetRef are resolved once the whole tree is built.
type Connector struct {
	SourceID, TargetID string
	SourceRef, TargetRef Ref
	SourcePort, TargetPort string
	Mode                   string // "straight" | "orthogonal" | "curved"
	CurveOffset             float64
	ArrowStart, ArrowEnd    bool
	ArrowSize               float64
	Color                   string
	StrokeWidth              float64
}

// VStack arranges children top-to-bottom (spec.md §4.3.4).
type VStack struct {
	Children  []*Node
	Spacing   float64
	Alignment string // "left" | "center" | "right" | "stretch"
	Width     Dimension
	Height    Dimension
}

// HStack arranges children left-to-right (spec.md §4.3.4).
type HStack struct {
	Children  []*Node
	Spacing   float64
	Alignment string // "top" | "center" | "bottom" | "stretch"
	Width     Dimension
	Height    Dimension
}

// Group is a passive overlay: every child is measured independently
// and anchored at the group's own origin (a child's x/y attributes
// are not read), and the
// group's own size is the union bounding box (spec.md Design Notes:
// group layout mirrors the original's max-of-children sizing, since
// the source models children as already positioned before the group
// measures them).
type Group struct {
	Children []*Node
}

// Table lays cells out in a row-major grid (spec.md §4.3.5).
type Table struct {
	Cells            []*Node
	Columns          int
	CellPadding      float64
	HeaderFillColor  string
	FillColor        string
}

// FreeContainer places children at their declared x/y (spec.md §4.3.6).
type FreeContainer struct {
	Children   []*Node
	ChildX     []float64
	ChildY     []float64
	Width      Dimension
	Height     Dimension
}

// ConstraintContainer delegates its children's geometry to the
// constraint solver (spec.md §4.3.7, §4.4).
type ConstraintContainer struct {
	Children    []*Node
	ChildIDs    []string // declared ids, parallel to Children; constraint.Declaration.Entities reference these
	Constraints []constraint.Declaration
	Width       Dimension
	Height      Dimension
}
