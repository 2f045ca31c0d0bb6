// Package record implements the first pipeline stage: reading a
// newline-delimited JSON stream into raw attribute bags keyed by id.
//
// Grounded on the record/element decoding in
// waozixyz-kryon/impl/go/krb/reader.go (one pass over a byte stream,
// building typed structures as it goes) and on
// original_source/volare_engine_layout/src/parser.rs, whose
// JsonEntity is the one-object-per-line, id+type+flattened-attributes
// shape this package decodes.
package record

import (
	"bufio"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/charmbracelet/log"
)

// Record is the raw attribute bag stored for one JSONL line. Attribute
// resolution (aliases, forward references) happens in later stages;
// this stage only validates structure.
type Record struct {
	ID         string
	Type       string
	Line       int
	Attributes map[string]any
}

// Get returns the raw value for key, or ok=false if absent.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.Attributes[key]
	return v, ok
}

// Document is the parser's output: every record keyed by id, plus the
// id of the declared root (the first non-ignored line).
type Document struct {
	RootID  string
	Records map[string]*Record
}

// Parse reads stream line by line. Blank lines and lines beginning
// with '#' are skipped. The first non-ignored line's id becomes the
// root. Duplicate ids and malformed records abort the parse.
func Parse(stream io.Reader) (*Document, error) {
	logger := log.WithPrefix("record")
	doc := &Document{Records: make(map[string]*Record)}

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, &ParseError{LineNo: lineNo, Detail: err.Error()}
		}

		idVal, hasID := raw["id"]
		typeVal, hasType := raw["type"]
		id, idOK := idVal.(string)
		typ, typeOK := typeVal.(string)
		if !hasID || !hasType || !idOK || !typeOK || id == "" || typ == "" {
			return nil, &MalformedRecordError{LineNo: lineNo}
		}

		if _, exists := doc.Records[id]; exists {
			return nil, &DuplicateIDError{ID: id}
		}

		rec := &Record{ID: id, Type: typ, Line: lineNo, Attributes: raw}
		doc.Records[id] = rec

		if doc.RootID == "" {
			doc.RootID = id
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{LineNo: lineNo, Detail: err.Error()}
	}
	if doc.RootID == "" {
		return nil, &MalformedRecordError{LineNo: 0}
	}

	logger.Debug("parsed records", "count", len(doc.Records), "root", doc.RootID)
	return doc, nil
}
