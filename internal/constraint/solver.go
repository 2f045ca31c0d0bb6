package constraint

import (
	"fmt"
	"math"
)

// Size is a child's intrinsic (content) size, used to seed the strong
// width/height equality spec.md §4.4 describes.
type Size struct{ W, H float64 }

// Rect is one child's resolved geometry.
type Rect struct{ X, Y, W, H float64 }

// OverConstrainedError reports a required-constraint conflict. It
// carries the declarations active at the point of conflict so the
// caller can point at the offending constraint set (spec.md §7).
type OverConstrainedError struct {
	Constraints []Declaration
}

func (e *OverConstrainedError) Error() string {
	return fmt.Sprintf("constraint: over-constrained system (%d conflicting declarations)", len(e.Constraints))
}

// Solve resolves (x,y,w,h) for every id in order, honoring decls.
// order fixes declaration order, used as the tie-break for which
// member of a tied group seeds its group's value.
func Solve(order []string, intrinsic map[string]Size, decls []Declaration) (map[string]Rect, error) {
	sizeGroup := newAffineGroup()
	for _, id := range order {
		sizeGroup.ensure(dim(id, "w"))
		sizeGroup.ensure(dim(id, "h"))
	}

	var floorHeight = map[string]float64{}  // min_height / at_least_same_height post-clamp
	var conflicts []Declaration

	addSize := func(a, b string, scale, offset float64, d Declaration) {
		if !sizeGroup.union(a, b, scale, offset) {
			conflicts = append(conflicts, d)
		}
	}

	for _, d := range decls {
		switch d.Type {
		case TypeSameWidth:
			chain(d.Entities, func(a, b string) { addSize(dim(a, "w"), dim(b, "w"), 1, 0, d) })
		case TypeSameHeight:
			chain(d.Entities, func(a, b string) { addSize(dim(a, "h"), dim(b, "h"), 1, 0, d) })
		case TypeSameSize:
			chain(d.Entities, func(a, b string) {
				addSize(dim(a, "w"), dim(b, "w"), 1, 0, d)
				addSize(dim(a, "h"), dim(b, "h"), 1, 0, d)
			})
		case TypeProportionalWidth:
			if len(d.Entities) == 2 {
				addSize(dim(d.Entities[0], "w"), dim(d.Entities[1], "w"), d.Ratio, 0, d)
			}
		case TypeProportionalHeight:
			if len(d.Entities) == 2 {
				addSize(dim(d.Entities[0], "h"), dim(d.Entities[1], "h"), d.Ratio, 0, d)
			}
		case TypeAspectRatio:
			// w = ratio * h for the same entity.
			addSize(dim(d.Entity, "w"), dim(d.Entity, "h"), d.Ratio, 0, d)
		case TypeMinHeight:
			floorHeight[d.Entity] = math.Max(floorHeight[d.Entity], d.Height)
		case TypeAtLeastSameHeight:
			if len(d.Entities) >= 1 {
				maxH := 0.0
				for _, id := range d.Entities {
					if intrinsic[id].H > maxH {
						maxH = intrinsic[id].H
					}
				}
				for _, id := range d.Entities {
					if maxH > floorHeight[id] {
						floorHeight[id] = maxH
					}
				}
			}
		}
	}

	if len(conflicts) > 0 {
		return nil, &OverConstrainedError{Constraints: conflicts}
	}

	seedOrder := indexOf(order)
	sizeValues := sizeGroup.resolve(func(root string, members []string) float64 {
		return seedSizeRoot(sizeGroup, members, seedOrder, intrinsic)
	})

	width := make(map[string]float64, len(order))
	height := make(map[string]float64, len(order))
	for _, id := range order {
		w := sizeValues[dim(id, "w")]
		h := sizeValues[dim(id, "h")]
		if w < 0 {
			w = 0
		}
		if fl, ok := floorHeight[id]; ok && h < fl {
			h = fl
		}
		width[id] = w
		height[id] = h
	}

	posGroup := newAffineGroup()
	for _, id := range order {
		posGroup.ensure(dim(id, "x"))
		posGroup.ensure(dim(id, "y"))
	}
	addPos := func(a, b string, offset float64, d Declaration) {
		if !posGroup.union(a, b, 1, offset) {
			conflicts = append(conflicts, d)
		}
	}

	for _, d := range decls {
		switch d.Type {
		case TypeAlignLeft:
			chain(d.Entities, func(a, b string) { addPos(dim(a, "x"), dim(b, "x"), 0, d) })
		case TypeAlignTop:
			chain(d.Entities, func(a, b string) { addPos(dim(a, "y"), dim(b, "y"), 0, d) })
		case TypeAlignRight:
			chain(d.Entities, func(a, b string) {
				addPos(dim(a, "x"), dim(b, "x"), width[b]-width[a], d)
			})
		case TypeAlignBottom:
			chain(d.Entities, func(a, b string) {
				addPos(dim(a, "y"), dim(b, "y"), height[b]-height[a], d)
			})
		case TypeAlignCenterHorizontal:
			chain(d.Entities, func(a, b string) {
				addPos(dim(a, "x"), dim(b, "x"), (width[b]-width[a])/2, d)
			})
		case TypeAlignCenterVertical:
			chain(d.Entities, func(a, b string) {
				addPos(dim(a, "y"), dim(b, "y"), (height[b]-height[a])/2, d)
			})
		case TypeRightOf:
			if len(d.Entities) == 2 {
				a, b := d.Entities[0], d.Entities[1]
				addPos(dim(a, "x"), dim(b, "x"), width[b], d)
			}
		case TypeLeftOf:
			if len(d.Entities) == 2 {
				a, b := d.Entities[0], d.Entities[1]
				addPos(dim(a, "x"), dim(b, "x"), -width[a], d)
			}
		case TypeBelow:
			if len(d.Entities) == 2 {
				a, b := d.Entities[0], d.Entities[1]
				addPos(dim(a, "y"), dim(b, "y"), height[b], d)
			}
		case TypeAbove:
			if len(d.Entities) == 2 {
				a, b := d.Entities[0], d.Entities[1]
				addPos(dim(a, "y"), dim(b, "y"), -height[a], d)
			}
		case TypeHorizontalSpacing:
			if len(d.Entities) == 2 {
				a, b := d.Entities[0], d.Entities[1]
				addPos(dim(b, "x"), dim(a, "x"), width[a]+d.Spacing, d)
			}
		case TypeVerticalSpacing:
			if len(d.Entities) == 2 {
				a, b := d.Entities[0], d.Entities[1]
				addPos(dim(b, "y"), dim(a, "y"), height[a]+d.Spacing, d)
			}
		case TypeStackHorizontal, TypeDistributeHorizontal:
			chainPairs(d.Entities, func(a, b string) {
				addPos(dim(b, "x"), dim(a, "x"), width[a]+d.Spacing, d)
			})
		case TypeStackVertical, TypeDistributeVertical:
			chainPairs(d.Entities, func(a, b string) {
				addPos(dim(b, "y"), dim(a, "y"), height[a]+d.Spacing, d)
			})
		case TypeFixedDistance:
			if len(d.Entities) == 2 {
				applyFixedDistance(posGroup, d, width, height, intrinsic, &conflicts)
			}
		}
	}

	if len(conflicts) > 0 {
		return nil, &OverConstrainedError{Constraints: conflicts}
	}

	posValues := posGroup.resolve(func(root string, members []string) float64 {
		// Weak default: unconstrained x/y anchors to 0.
		return 0
	})

	rects := make(map[string]Rect, len(order))
	for _, id := range order {
		rects[id] = Rect{
			X: posValues[dim(id, "x")],
			Y: posValues[dim(id, "y")],
			W: width[id],
			H: height[id],
		}
	}
	return rects, nil
}

func dim(id, axis string) string { return id + "#" + axis }

func indexOf(order []string) map[string]int {
	m := make(map[string]int, len(order))
	for i, id := range order {
		m[id] = i
	}
	return m
}

// seedSizeRoot picks the earliest-declared member's intrinsic value as
// the group's anchor, then back-solves the root's value from that
// member's affine transform relative to the root.
func seedSizeRoot(g *affineGroup, members []string, order map[string]int, intrinsic map[string]Size) float64 {
	best := members[0]
	for _, m := range members[1:] {
		if rankOf(m, order) < rankOf(best, order) {
			best = m
		}
	}
	id, axis := splitDim(best)
	target := intrinsic[id].W
	if axis == "h" {
		target = intrinsic[id].H
	}
	_, s, o := g.find(best)
	if math.Abs(s) < epsilon {
		return 0
	}
	return (target - o) / s
}

func splitDim(d string) (id, axis string) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] == '#' {
			return d[:i], d[i+1:]
		}
	}
	return d, ""
}

func rankOf(id string, order map[string]int) int {
	entID, _ := splitDim(id)
	if r, ok := order[entID]; ok {
		return r
	}
	return len(order)
}

// chain unions entities[0] with each subsequent entity (plain pairwise
// equality group, used by align_*/same_* which don't have direction).
func chain(entities []string, f func(a, b string)) {
	if len(entities) < 2 {
		return
	}
	for _, e := range entities[1:] {
		f(e, entities[0])
	}
}

// chainPairs unions each consecutive pair, used by stacking/distribute
// constraints where order along the axis matters.
func chainPairs(entities []string, f func(a, b string)) {
	for i := 1; i < len(entities); i++ {
		f(entities[i-1], entities[i])
	}
}

// applyFixedDistance implements the linear approximation documented
// in spec.md §4.4 and §9: the Euclidean center-distance constraint is
// decomposed onto the horizontal axis, since this solver is purely
// linear and cannot represent sqrt(dx^2+dy^2)=d directly. b's center
// is placed d to the right of a's center and b's top edge is aligned
// with a's, so the centers are exactly d apart when the heights match.
func applyFixedDistance(pos *affineGroup, d Declaration, width, height map[string]float64, intrinsic map[string]Size, conflicts *[]Declaration) {
	a, b := d.Entities[0], d.Entities[1]
	dx := math.Abs(d.Distance)
	// Without prior positions we cannot know which axis currently
	// separates the pair more; default to the horizontal axis, which
	// matches how horizontal_spacing/stack_horizontal treat pairs in
	// the absence of other evidence.
	offset := dx + width[a]/2 - width[b]/2
	if !pos.union(dim(b, "x"), dim(a, "x"), 1, offset) {
		*conflicts = append(*conflicts, d)
	}
	if !pos.union(dim(b, "y"), dim(a, "y"), 1, 0) {
		*conflicts = append(*conflicts, d)
	}
}
