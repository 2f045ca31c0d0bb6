// Package layout implements the Layout Engine stage: a two-phase
// measure/arrange walk over the tree built by internal/entity,
// producing a Rect for every reachable entity.
//
// Grounded on the intertwined measure/arrange walk of
// waozixyz-kryon/impl/go/render/raylib/renderer_processing.go's
// PerformLayout (generalized here into a clean two-phase discipline,
// since the teacher measures and places text in the same pass using a
// concrete raylib font, while this package must stay renderer-agnostic
// per spec.md §6.4), and on the per-kind layout_* dispatch of
// original_source/volare_engine_layout/src/layout.rs.
package layout

import (
	"fmt"

	"github.com/hugozap/volare-engine/internal/constraint"
	"github.com/hugozap/volare-engine/internal/entity"
)

// Rect is one entity's final, absolute geometry (spec.md §3).
type Rect struct{ X, Y, W, H float64 }

// Size is an intrinsic (content) measurement, pre-arrangement.
type Size struct{ W, H float64 }

// Geometry is what Layout records per entity: its resolved Rect, plus
// a connector-specific Path when the entity is a connector.
type Geometry struct {
	Rect  Rect
	Path  *ConnectorPath
	Lines []string // wrapped text lines; set only for KindText entities
}

type context struct {
	builder *entity.Builder
	metrics FontMetrics
	sizes   map[entity.Ref]Size
	solved  map[entity.Ref]map[string]constraint.Rect
	geo     map[entity.Ref]Geometry
}

// Layout measures and arranges every entity reachable from root,
// returning one Geometry per entity (spec.md §4.3). A nil fm uses
// DefaultMetrics.
func Layout(root *entity.Node, b *entity.Builder, fm FontMetrics) (map[entity.Ref]Geometry, error) {
	if fm == nil {
		fm = DefaultMetrics{}
	}
	ctx := &context{
		builder: b,
		metrics: fm,
		sizes:   make(map[entity.Ref]Size),
		solved:  make(map[entity.Ref]map[string]constraint.Rect),
		geo:     make(map[entity.Ref]Geometry),
	}
	if err := measure(ctx, root); err != nil {
		return nil, err
	}
	rootSize := ctx.sizes[root.Ref()]
	if err := arrange(ctx, root, Rect{X: 0, Y: 0, W: rootSize.W, H: rootSize.H}); err != nil {
		return nil, err
	}
	return ctx.geo, nil
}

// RenderError reports a failure encountered while resolving geometry
// that is not one of the tree-builder's own error types (spec.md §7).
type RenderError struct{ Detail string }

func (e *RenderError) Error() string { return fmt.Sprintf("layout: %s", e.Detail) }

// dimensionOf returns the declared width/height Dimension for node
// kinds that carry one. ok is false for kinds whose size is always
// purely content-derived (ellipse, line, arc, semicircle,
// quarter_circle, polyline, connector, group, table).
func dimensionOf(n *entity.Node, b *entity.Builder) (w, h entity.Dimension, ok bool) {
	switch n.Kind {
	case entity.KindText:
		t := b.Text(n.Index)
		return t.Width, t.Height, true
	case entity.KindBox:
		x := b.Box(n.Index)
		return x.Width, x.Height, true
	case entity.KindRect:
		r := b.Rect(n.Index)
		return r.Width, r.Height, true
	case entity.KindImage:
		im := b.Image(n.Index)
		return im.Width, im.Height, true
	case entity.KindSpacer:
		s := b.Spacer(n.Index)
		return s.Width, s.Height, true
	case entity.KindVStack:
		vs := b.VStack(n.Index)
		return vs.Width, vs.Height, true
	case entity.KindHStack:
		hs := b.HStack(n.Index)
		return hs.Width, hs.Height, true
	case entity.KindFreeContainer:
		fc := b.FreeContainer(n.Index)
		return fc.Width, fc.Height, true
	case entity.KindConstraintContainer:
		cc := b.ConstraintContainer(n.Index)
		return cc.Width, cc.Height, true
	default:
		return entity.Dimension{}, entity.Dimension{}, false
	}
}
