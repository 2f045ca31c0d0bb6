// Package constraint wraps a small Cassowary-style linear constraint
// system: given each child's intrinsic size and a declarative list of
// constraints, it resolves (x,y,w,h) for every child.
//
// Grounded on original_source/volare_engine_layout/src/constraints/mod.rs,
// which drives the `cassowary` crate's Solver with one Variable per
// axis per entity and strong/required/weak strengths; the vocabulary
// here is the full set from original_source/volare_engine_layout/src/parser.rs's
// ConstraintDeclaration enum plus the spacing/stacking/size constraints
// spec.md §4.4 adds on top of it. No Cassowary or simplex binding
// appears anywhere in the retrieval pack, so rather than fabricate an
// import this package solves the (in practice acyclic, mostly affine)
// constraint graph directly — see solver.go and DESIGN.md.
package constraint

// Declaration is one constraint as decoded from a constraint_container
// record's `constraints` list (spec.md §4.4).
type Declaration struct {
	Type     string
	Entities []string // listed entities, in declaration order
	Entity   string   // single-entity form (aspect_ratio, min_height)
	Spacing  float64
	Ratio    float64
	Distance float64
	Height   float64 // min_height's declared floor
}

const (
	TypeAlignLeft             = "align_left"
	TypeAlignRight            = "align_right"
	TypeAlignTop              = "align_top"
	TypeAlignBottom           = "align_bottom"
	TypeAlignCenterHorizontal = "align_center_horizontal"
	TypeAlignCenterVertical   = "align_center_vertical"
	TypeRightOf               = "right_of"
	TypeLeftOf                = "left_of"
	TypeAbove                 = "above"
	TypeBelow                 = "below"
	TypeHorizontalSpacing     = "horizontal_spacing"
	TypeVerticalSpacing       = "vertical_spacing"
	TypeFixedDistance         = "fixed_distance"
	TypeStackHorizontal       = "stack_horizontal"
	TypeStackVertical         = "stack_vertical"
	TypeSameWidth             = "same_width"
	TypeSameHeight            = "same_height"
	TypeSameSize              = "same_size"
	TypeAtLeastSameHeight     = "at_least_same_height"
	TypeProportionalWidth     = "proportional_width"
	TypeProportionalHeight    = "proportional_height"
	TypeMinHeight             = "min_height"
	TypeAspectRatio           = "aspect_ratio"
	TypeDistributeHorizontal  = "distribute_horizontally"
	TypeDistributeVertical    = "distribute_vertically"
)
