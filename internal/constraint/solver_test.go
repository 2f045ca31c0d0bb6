package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugozap/volare-engine/internal/constraint"
)

func TestSolve_RightOfAndSameWidth(t *testing.T) {
	order := []string{"a", "b"}
	intrinsic := map[string]constraint.Size{
		"a": {W: 50, H: 20},
		"b": {W: 30, H: 20},
	}
	decls := []constraint.Declaration{
		{Type: constraint.TypeSameWidth, Entities: []string{"a", "b"}},
		{Type: constraint.TypeRightOf, Entities: []string{"b", "a"}},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)

	assert.Equal(t, rects["a"].W, rects["b"].W)
	assert.Equal(t, rects["a"].W, rects["b"].X-rects["a"].X)
}

func TestSolve_AlignLeft(t *testing.T) {
	order := []string{"a", "b"}
	intrinsic := map[string]constraint.Size{
		"a": {W: 10, H: 10},
		"b": {W: 10, H: 10},
	}
	decls := []constraint.Declaration{
		{Type: constraint.TypeAlignLeft, Entities: []string{"a", "b"}},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)
	assert.Equal(t, rects["a"].X, rects["b"].X)
}

func TestSolve_HorizontalSpacing(t *testing.T) {
	order := []string{"a", "b"}
	intrinsic := map[string]constraint.Size{
		"a": {W: 40, H: 10},
		"b": {W: 20, H: 10},
	}
	decls := []constraint.Declaration{
		{Type: constraint.TypeHorizontalSpacing, Entities: []string{"a", "b"}, Spacing: 5},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)
	assert.InDelta(t, rects["a"].X+rects["a"].W+5, rects["b"].X, 1e-9)
}

func TestSolve_StackHorizontalChainsConsecutivePairs(t *testing.T) {
	order := []string{"a", "b", "c"}
	intrinsic := map[string]constraint.Size{
		"a": {W: 10, H: 10},
		"b": {W: 10, H: 10},
		"c": {W: 10, H: 10},
	}
	decls := []constraint.Declaration{
		{Type: constraint.TypeStackHorizontal, Entities: []string{"a", "b", "c"}, Spacing: 2},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)
	assert.InDelta(t, rects["a"].X+rects["a"].W+2, rects["b"].X, 1e-9)
	assert.InDelta(t, rects["b"].X+rects["b"].W+2, rects["c"].X, 1e-9)
}

func TestSolve_ProportionalWidth(t *testing.T) {
	order := []string{"a", "b"}
	intrinsic := map[string]constraint.Size{
		"a": {W: 100, H: 10},
		"b": {W: 10, H: 10},
	}
	decls := []constraint.Declaration{
		{Type: constraint.TypeProportionalWidth, Entities: []string{"a", "b"}, Ratio: 2},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)
	assert.InDelta(t, rects["a"].W, rects["b"].W*2, 1e-9)
}

func TestSolve_MinHeightFloorsResolvedHeight(t *testing.T) {
	order := []string{"a"}
	intrinsic := map[string]constraint.Size{"a": {W: 10, H: 5}}
	decls := []constraint.Declaration{
		{Type: constraint.TypeMinHeight, Entity: "a", Height: 50},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)
	assert.Equal(t, float64(50), rects["a"].H)
}

func TestSolve_AtLeastSameHeightRaisesAllToMax(t *testing.T) {
	order := []string{"a", "b"}
	intrinsic := map[string]constraint.Size{
		"a": {W: 10, H: 5},
		"b": {W: 10, H: 30},
	}
	decls := []constraint.Declaration{
		{Type: constraint.TypeAtLeastSameHeight, Entities: []string{"a", "b"}},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)
	assert.Equal(t, float64(30), rects["a"].H)
	assert.Equal(t, float64(30), rects["b"].H)
}

func TestSolve_OverConstrainedConflict(t *testing.T) {
	order := []string{"a", "b"}
	intrinsic := map[string]constraint.Size{
		"a": {W: 10, H: 10},
		"b": {W: 10, H: 10},
	}
	decls := []constraint.Declaration{
		{Type: constraint.TypeSameWidth, Entities: []string{"a", "b"}},
		{Type: constraint.TypeProportionalWidth, Entities: []string{"a", "b"}, Ratio: 3},
	}
	_, err := constraint.Solve(order, intrinsic, decls)
	require.Error(t, err)
	var overConstrained *constraint.OverConstrainedError
	assert.ErrorAs(t, err, &overConstrained)
}

func TestSolve_UnconstrainedAxisDefaultsToZero(t *testing.T) {
	order := []string{"a"}
	intrinsic := map[string]constraint.Size{"a": {W: 10, H: 10}}
	rects, err := constraint.Solve(order, intrinsic, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(0), rects["a"].X)
	assert.Equal(t, float64(0), rects["a"].Y)
	assert.Equal(t, float64(10), rects["a"].W)
}

func TestSolve_AspectRatio(t *testing.T) {
	order := []string{"a"}
	intrinsic := map[string]constraint.Size{"a": {W: 10, H: 10}}
	decls := []constraint.Declaration{
		{Type: constraint.TypeAspectRatio, Entity: "a", Ratio: 2},
	}
	rects, err := constraint.Solve(order, intrinsic, decls)
	require.NoError(t, err)
	assert.InDelta(t, rects["a"].W, rects["a"].H*2, 1e-9)
}
