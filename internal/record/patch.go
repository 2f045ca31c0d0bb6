package record

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Operation is one line of the companion patch stream (spec.md §6.2):
// {"action":"add|update|delete","item":{...}}.
type Operation struct {
	Action string         `json:"action"`
	Item   map[string]any `json:"item"`
}

// ApplyOperation mutates doc in place per the patch semantics. The
// engine does not rewrite parent `children` arrays on delete; the
// patch producer is responsible for emitting the corresponding update.
func ApplyOperation(doc *Document, op Operation) error {
	switch op.Action {
	case "add":
		idVal, _ := op.Item["id"].(string)
		typeVal, _ := op.Item["type"].(string)
		if idVal == "" || typeVal == "" {
			return &MalformedRecordError{LineNo: 0}
		}
		if _, exists := doc.Records[idVal]; exists {
			return &DuplicateIDError{ID: idVal}
		}
		doc.Records[idVal] = &Record{ID: idVal, Type: typeVal, Attributes: op.Item}
		return nil

	case "update":
		idVal, _ := op.Item["id"].(string)
		rec, exists := doc.Records[idVal]
		if !exists {
			return fmt.Errorf("record: update references unknown id %q", idVal)
		}
		for k, v := range op.Item {
			if k == "id" {
				continue
			}
			rec.Attributes[k] = v
		}
		return nil

	case "delete":
		idVal, _ := op.Item["id"].(string)
		if _, exists := doc.Records[idVal]; !exists {
			return fmt.Errorf("record: delete references unknown id %q", idVal)
		}
		delete(doc.Records, idVal)
		return nil

	default:
		return fmt.Errorf("record: unknown patch action %q", op.Action)
	}
}

// ParseOperation decodes a single patch-stream line.
func ParseOperation(line []byte) (Operation, error) {
	var op Operation
	if err := json.Unmarshal(line, &op); err != nil {
		return Operation{}, fmt.Errorf("record: invalid patch operation: %w", err)
	}
	return op, nil
}
