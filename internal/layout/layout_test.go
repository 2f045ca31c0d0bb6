package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/layout"
	"github.com/hugozap/volare-engine/internal/record"
)

func build(t *testing.T, jsonl string) (*entity.Builder, *entity.Node) {
	t.Helper()
	doc, err := record.Parse(strings.NewReader(jsonl))
	require.NoError(t, err)
	b := entity.NewBuilder(doc)
	root, err := b.Build()
	require.NoError(t, err)
	return b, root
}

func TestLayout_RectFixedSize(t *testing.T) {
	b, root := build(t, `{"id":"root","type":"rect","width":40,"height":20}`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	r := geo[root.Ref()].Rect
	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 40, H: 20}, r)
}

func TestLayout_BoxAddsPaddingAroundChild(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"box","children":["a"],"padding":5}
{"id":"a","type":"rect","width":10,"height":10}
`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	boxRect := geo[root.Ref()].Rect
	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 20, H: 20}, boxRect)

	childRef, err := b.Lookup("a")
	require.NoError(t, err)
	childRect := geo[childRef.Ref()].Rect
	assert.Equal(t, layout.Rect{X: 5, Y: 5, W: 10, H: 10}, childRect)
}

// TestLayout_HStackDefaultAlignmentCentersCrossAxis exercises the
// scenario where a shorter child must land centered on the hstack's
// cross (vertical) axis against a taller sibling, the default
// behavior when no vertical_alignment is declared.
func TestLayout_HStackDefaultAlignmentCentersCrossAxis(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"hstack","children":["tall","short"],"spacing":0}
{"id":"tall","type":"rect","width":10,"height":40}
{"id":"short","type":"rect","width":10,"height":20}
`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	shortRef, err := b.Lookup("short")
	require.NoError(t, err)
	shortRect := geo[shortRef.Ref()].Rect
	// cross alloc (hstack height) is 40 (the tallest child); a 20-tall
	// child centered within that allocation sits at y=10.
	assert.Equal(t, float64(10), shortRect.Y)
}

func TestLayout_VStackSpacingBetweenChildren(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"vstack","children":["a","b"],"spacing":4}
{"id":"a","type":"rect","width":10,"height":10}
{"id":"b","type":"rect","width":10,"height":10}
`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	aRef, _ := b.Lookup("a")
	bRef, _ := b.Lookup("b")
	aRect := geo[aRef.Ref()].Rect
	bRect := geo[bRef.Ref()].Rect
	assert.Equal(t, float64(0), aRect.Y)
	assert.Equal(t, float64(14), bRect.Y)
}

func TestLayout_GrowChildFillsStackAllocation(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"vstack","children":["fixed","grower"],"width":100,"height":100}
{"id":"fixed","type":"rect","width":10,"height":20}
{"id":"grower","type":"rect","width":10,"height":"grow"}
`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	rootRect := geo[root.Ref()].Rect
	assert.Equal(t, float64(100), rootRect.H)

	growerRef, _ := b.Lookup("grower")
	growerRect := geo[growerRef.Ref()].Rect
	assert.Equal(t, float64(80), growerRect.H)
}

func TestLayout_TextWrapsToLineWidth(t *testing.T) {
	b, root := build(t, `{"id":"root","type":"text","content":"one two three four","line_width":8}`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	lines := geo[root.Ref()].Lines
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 8)
	}
	assert.Greater(t, len(lines), 1)
}

func TestLayout_FreeContainerPlacesChildrenAtDeclaredOffsets(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"free_container","children":["a"]}
{"id":"a","type":"rect","x":15,"y":25,"width":5,"height":5}
`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	aRef, _ := b.Lookup("a")
	aRect := geo[aRef.Ref()].Rect
	assert.Equal(t, layout.Rect{X: 15, Y: 25, W: 5, H: 5}, aRect)
}

func TestLayout_ConstraintContainerAppliesSolverOffsets(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"constraint_container","children":["a","b"],"constraints":[{"type":"right_of","entities":["b","a"]}]}
{"id":"a","type":"rect","width":30,"height":10}
{"id":"b","type":"rect","width":20,"height":10}
`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	aRef, _ := b.Lookup("a")
	bRef, _ := b.Lookup("b")
	aRect := geo[aRef.Ref()].Rect
	bRect := geo[bRef.Ref()].Rect
	assert.Equal(t, aRect.X+aRect.W, bRect.X)
}

func TestLayout_TableGridPositionsCells(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"table","columns":2,"cell_padding":2,"children":["a","b","c","d"]}
{"id":"a","type":"rect","width":10,"height":10}
{"id":"b","type":"rect","width":10,"height":10}
{"id":"c","type":"rect","width":10,"height":10}
{"id":"d","type":"rect","width":10,"height":10}
`)
	geo, err := layout.Layout(root, b, nil)
	require.NoError(t, err)
	cRef, _ := b.Lookup("c")
	cRect := geo[cRef.Ref()].Rect
	// c is the first cell of the second row; its Y must be strictly
	// below the first row's cells.
	aRef, _ := b.Lookup("a")
	aRect := geo[aRef.Ref()].Rect
	assert.Greater(t, cRect.Y, aRect.Y)
}
