package layout

import (
	"github.com/hugozap/volare-engine/internal/constraint"
	"github.com/hugozap/volare-engine/internal/entity"
)

// solveConstraintContainer measures cc's children, runs the solver
// exactly once per container (cached on ctx), and returns the raw
// id-keyed rects. Measure and arrange both call this: measure needs
// the rects to compute the container's bounding-box intrinsic size;
// arrange reuses the cached result rather than re-solving, which keeps
// layout idempotent by construction (spec.md §8 property 4) since the
// solver never has to be invoked twice for the same container.
func solveConstraintContainer(ctx *context, n *entity.Node, cc *entity.ConstraintContainer) (map[string]constraint.Rect, error) {
	if cached, ok := ctx.solved[n.Ref()]; ok {
		return cached, nil
	}
	intrinsic := make(map[string]constraint.Size, len(cc.Children))
	for i, c := range cc.Children {
		if err := measure(ctx, c); err != nil {
			return nil, err
		}
		cs := ctx.sizes[c.Ref()]
		intrinsic[cc.ChildIDs[i]] = constraint.Size{W: cs.W, H: cs.H}
	}
	rects, err := constraint.Solve(cc.ChildIDs, intrinsic, cc.Constraints)
	if err != nil {
		return nil, err
	}
	ctx.solved[n.Ref()] = rects
	return rects, nil
}
