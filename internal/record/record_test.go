package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugozap/volare-engine/internal/record"
)

func TestParse_RootIsFirstNonIgnoredLine(t *testing.T) {
	input := `# a leading comment, ignored

{"id":"root","type":"box","width":100,"height":50}
{"id":"child","type":"text","value":"hi"}
`
	doc, err := record.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "root", doc.RootID)
	assert.Len(t, doc.Records, 2)

	root := doc.Records["root"]
	require.NotNil(t, root)
	assert.Equal(t, "box", root.Type)
	v, ok := root.Get("width")
	require.True(t, ok)
	assert.EqualValues(t, 100, v)
}

func TestParse_DuplicateID(t *testing.T) {
	input := `{"id":"a","type":"box"}
{"id":"a","type":"text"}
`
	_, err := record.Parse(strings.NewReader(input))
	require.Error(t, err)
	var dup *record.DuplicateIDError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.ID)
}

func TestParse_MissingIDOrType(t *testing.T) {
	cases := []string{
		`{"type":"box"}`,
		`{"id":"a"}`,
		`{"id":"","type":"box"}`,
	}
	for _, c := range cases {
		_, err := record.Parse(strings.NewReader(c))
		require.Error(t, err)
		var malformed *record.MalformedRecordError
		assert.ErrorAs(t, err, &malformed)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := record.Parse(strings.NewReader(`{not json`))
	require.Error(t, err)
	var parseErr *record.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.LineNo)
}

func TestParse_EmptyStreamIsMalformed(t *testing.T) {
	_, err := record.Parse(strings.NewReader("\n\n# just comments\n"))
	require.Error(t, err)
	var malformed *record.MalformedRecordError
	assert.ErrorAs(t, err, &malformed)
}

func TestParse_BlankAndCommentLinesSkipped(t *testing.T) {
	input := "\n  \n# comment\n{\"id\":\"root\",\"type\":\"box\"}\n"
	doc, err := record.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "root", doc.RootID)
	assert.Len(t, doc.Records, 1)
}
