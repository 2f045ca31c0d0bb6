package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/record"
)

func buildSingle(t *testing.T, jsonl string) (*entity.Builder, *entity.Node) {
	t.Helper()
	doc, err := record.Parse(strings.NewReader(jsonl))
	require.NoError(t, err)
	b := entity.NewBuilder(doc)
	root, err := b.Build()
	require.NoError(t, err)
	return b, root
}

func TestDecodeRect_Aliases(t *testing.T) {
	b, root := buildSingle(t, `{"id":"root","type":"rect","width":10,"height":10,"background_color":"red","stroke":"blue","stroke_width":2}`)
	r := b.Rect(root.Index)
	assert.Equal(t, "red", r.Background)
	assert.Equal(t, "blue", r.BorderColor)
	assert.Equal(t, float64(2), r.BorderWidth)
}

func TestDecodeRect_Defaults(t *testing.T) {
	b, root := buildSingle(t, `{"id":"root","type":"rect"}`)
	r := b.Rect(root.Index)
	assert.Equal(t, "white", r.Background)
	assert.Equal(t, "black", r.BorderColor)
	assert.Equal(t, float64(1), r.BorderWidth)
	assert.Equal(t, entity.Content(), r.Width)
}

func TestDimensionFromAttr_FixedGrowContent(t *testing.T) {
	b, root := buildSingle(t, `{"id":"root","type":"rect","width":42,"height":"grow"}`)
	r := b.Rect(root.Index)
	assert.Equal(t, entity.Fixed(42), r.Width)
	assert.Equal(t, entity.Grow(), r.Height)
}

func TestDecodeVStack_DefaultAlignmentIsCenter(t *testing.T) {
	b, root := buildSingle(t, `{"id":"root","type":"vstack","children":["a"]}
{"id":"a","type":"spacer","width":1,"height":1}`)
	_ = root
	stack := b.VStack(root.Index)
	assert.Equal(t, "center", stack.Alignment)
}

func TestDecodeHStack_DefaultAlignmentIsCenter(t *testing.T) {
	b, root := buildSingle(t, `{"id":"root","type":"hstack","children":["a"]}
{"id":"a","type":"spacer","width":1,"height":1}`)
	stack := b.HStack(root.Index)
	assert.Equal(t, "center", stack.Alignment)
}

func TestDecodeConnector_Defaults(t *testing.T) {
	b, root := buildSingle(t, `
{"id":"root","type":"group","children":["a","b","c"]}
{"id":"a","type":"spacer","width":1,"height":1}
{"id":"b","type":"spacer","width":1,"height":1}
{"id":"c","type":"connector","from":"a","to":"b"}
`)
	var conn *entity.Node
	for _, c := range root.Children {
		if c.Kind == entity.KindConnector {
			conn = c
		}
	}
	require.NotNil(t, conn)
	c := b.Connector(conn.Index)
	assert.Equal(t, "straight", c.Mode)
	assert.False(t, c.ArrowStart)
	assert.True(t, c.ArrowEnd)
	assert.Equal(t, "center", c.SourcePort)
}

func TestDecodeTable_CellPaddingAliasIsTableScoped(t *testing.T) {
	b, root := buildSingle(t, `
{"id":"root","type":"table","children":["a"],"columns":1,"padding":7}
{"id":"a","type":"spacer","width":1,"height":1}
`)
	tbl := b.Table(root.Index)
	assert.Equal(t, float64(7), tbl.CellPadding)
}

func TestDecodePolyline_ParsesPointPairs(t *testing.T) {
	b, root := buildSingle(t, `{"id":"root","type":"polyline","points":[[0,0],[10,0],[10,10]]}`)
	p := b.Polyline(root.Index)
	require.Len(t, p.Points, 3)
	assert.Equal(t, [2]float64{10, 10}, p.Points[2])
}
