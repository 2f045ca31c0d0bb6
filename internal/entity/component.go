package entity

import (
	"github.com/google/uuid"

	"github.com/hugozap/volare-engine/internal/record"
)

// Factory builds a custom component's subtree. It receives the
// record's id and raw attributes, the full record map (for resolving
// ids the factory itself looks up, e.g. document's
// header_id/content_id/footer_id), and the Builder so it can
// recursively construct native or further custom subtrees. It must
// return the root of the subtree it assembled (spec.md §4.2, §9).
type Factory func(id string, attrs map[string]any, doc *record.Document, b *Builder) (*Node, error)

// RegisterFactory associates a custom component type name with its
// Factory. Re-registering a name overwrites the previous factory.
func (b *Builder) RegisterFactory(typeName string, f Factory) {
	b.factories[typeName] = f
}

// Synthesize injects a freshly-built native record into doc under a
// generated id and immediately materializes it, giving custom
// component factories a way to assemble primitives (vstack/hstack/
// text/line, …) into a standard subtree (spec.md §9) without reaching
// into the builder's private per-kind stores.
func (b *Builder) Synthesize(doc *record.Document, typ string, attrs map[string]any) (*Node, string, error) {
	id := typ + "_" + uuid.NewString()
	rec := map[string]any{"id": id, "type": typ}
	for k, v := range attrs {
		rec[k] = v
	}
	doc.Records[id] = &record.Record{ID: id, Type: typ, Attributes: rec}
	node, err := b.Lookup(id)
	return node, id, err
}
