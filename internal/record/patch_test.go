package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugozap/volare-engine/internal/record"
)

func newDoc() *record.Document {
	return &record.Document{
		RootID: "root",
		Records: map[string]*record.Record{
			"root": {ID: "root", Type: "box", Attributes: map[string]any{"id": "root", "type": "box"}},
		},
	}
}

func TestParseOperation(t *testing.T) {
	op, err := record.ParseOperation([]byte(`{"action":"add","item":{"id":"n1","type":"text","value":"hi"}}`))
	require.NoError(t, err)
	assert.Equal(t, "add", op.Action)
	assert.Equal(t, "n1", op.Item["id"])
}

func TestParseOperation_Invalid(t *testing.T) {
	_, err := record.ParseOperation([]byte(`not json`))
	assert.Error(t, err)
}

func TestApplyOperation_Add(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{
		Action: "add",
		Item:   map[string]any{"id": "n1", "type": "text"},
	})
	require.NoError(t, err)
	assert.Contains(t, doc.Records, "n1")
	assert.Equal(t, "text", doc.Records["n1"].Type)
}

func TestApplyOperation_AddDuplicate(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{
		Action: "add",
		Item:   map[string]any{"id": "root", "type": "box"},
	})
	require.Error(t, err)
	var dup *record.DuplicateIDError
	assert.ErrorAs(t, err, &dup)
}

func TestApplyOperation_AddMissingFields(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{Action: "add", Item: map[string]any{"id": "n1"}})
	require.Error(t, err)
	var malformed *record.MalformedRecordError
	assert.ErrorAs(t, err, &malformed)
}

func TestApplyOperation_Update(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{
		Action: "update",
		Item:   map[string]any{"id": "root", "width": 200},
	})
	require.NoError(t, err)
	v, ok := doc.Records["root"].Get("width")
	require.True(t, ok)
	assert.EqualValues(t, 200, v)
}

func TestApplyOperation_UpdateUnknownID(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{
		Action: "update",
		Item:   map[string]any{"id": "missing", "width": 1},
	})
	assert.Error(t, err)
}

func TestApplyOperation_Delete(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{Action: "delete", Item: map[string]any{"id": "root"}})
	require.NoError(t, err)
	assert.NotContains(t, doc.Records, "root")
}

func TestApplyOperation_DeleteUnknownID(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{Action: "delete", Item: map[string]any{"id": "missing"}})
	assert.Error(t, err)
}

func TestApplyOperation_UnknownAction(t *testing.T) {
	doc := newDoc()
	err := record.ApplyOperation(doc, record.Operation{Action: "rename", Item: map[string]any{"id": "root"}})
	assert.Error(t, err)
}
