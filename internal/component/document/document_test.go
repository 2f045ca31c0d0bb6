package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugozap/volare-engine/internal/component/docstyle"
	"github.com/hugozap/volare-engine/internal/component/document"
	"github.com/hugozap/volare-engine/internal/entity"
	"github.com/hugozap/volare-engine/internal/record"
)

func build(t *testing.T, jsonl string) (*entity.Builder, *entity.Node) {
	t.Helper()
	doc, err := record.Parse(strings.NewReader(jsonl))
	require.NoError(t, err)
	b := entity.NewBuilder(doc)
	document.Register(b)
	root, err := b.Build()
	require.NoError(t, err)
	return b, root
}

func TestCreateDocument_AssemblesHeaderContentFooterIntoBox(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"document","header_id":"h","content_id":"c","footer_id":"f"}
{"id":"h","type":"text","content":"Header"}
{"id":"c","type":"text","content":"Content"}
{"id":"f","type":"text","content":"Footer"}
`)
	require.Equal(t, entity.KindBox, root.Kind)
	box := b.Box(root.Index)
	assert.Equal(t, docstyle.DocumentPadding, box.Padding)

	require.Equal(t, entity.KindVStack, box.Child.Kind)
	vstack := b.VStack(box.Child.Index)
	require.Len(t, vstack.Children, 3)

	var contents []string
	for _, c := range vstack.Children {
		contents = append(contents, b.Text(c.Index).Content)
	}
	assert.Equal(t, []string{"Header", "Content", "Footer"}, contents)
}

func TestCreateDocument_OmitsMissingSlots(t *testing.T) {
	b, root := build(t, `
{"id":"root","type":"document","content_id":"c"}
{"id":"c","type":"text","content":"Content"}
`)
	box := b.Box(root.Index)
	vstack := b.VStack(box.Child.Index)
	require.Len(t, vstack.Children, 1)
	assert.Equal(t, "Content", b.Text(vstack.Children[0].Index).Content)
}

func TestCreateSection_TitleAndBodyBecomeTwoStackedTexts(t *testing.T) {
	b, root := build(t, `{"id":"root","type":"document.section","title":"Intro","content":"Body text"}`)
	require.Equal(t, entity.KindVStack, root.Kind)
	stack := b.VStack(root.Index)
	assert.Equal(t, "left", stack.Alignment)
	require.Len(t, stack.Children, 2)
	assert.Equal(t, "Intro", b.Text(stack.Children[0].Index).Content)
	assert.Equal(t, "Body text", b.Text(stack.Children[1].Index).Content)
}

func TestCreateSection_TitleOnlyOmitsBodyChild(t *testing.T) {
	b, root := build(t, `{"id":"root","type":"document.section","title":"Only title"}`)
	stack := b.VStack(root.Index)
	require.Len(t, stack.Children, 1)
	assert.Equal(t, "Only title", b.Text(stack.Children[0].Index).Content)
}

func TestCreateProperties_ItemsShape(t *testing.T) {
	b, root := build(t, `{"id":"root","type":"document.properties","items":[{"name":"Owner","value":"Ada"},{"name":"Status","value":"Open"}]}`)
	require.Equal(t, entity.KindVStack, root.Kind)
	outer := b.VStack(root.Index)
	require.Len(t, outer.Children, 2)

	row := b.HStack(outer.Children[0].Index)
	require.Len(t, row.Children, 2)
	assert.Equal(t, "Owner", b.Text(row.Children[0].Index).Content)
	assert.Equal(t, "Ada", b.Text(row.Children[1].Index).Content)
}

func TestCreateProperties_PairsShape(t *testing.T) {
	b, root := build(t, `{"id":"root","type":"document.properties","properties":[["Owner","Ada"],["Status","Open"]]}`)
	outer := b.VStack(root.Index)
	require.Len(t, outer.Children, 2)

	row := b.HStack(outer.Children[1].Index)
	assert.Equal(t, "Status", b.Text(row.Children[0].Index).Content)
	assert.Equal(t, "Open", b.Text(row.Children[1].Index).Content)
}

func TestCreateText_ThinWrapperOverNativeText(t *testing.T) {
	b, root := build(t, `{"id":"root","type":"document.text","text":"hello"}`)
	require.Equal(t, entity.KindText, root.Kind)
	txt := b.Text(root.Index)
	assert.Equal(t, "hello", txt.Content)
	assert.Equal(t, docstyle.BodyColor, txt.Color)
}
