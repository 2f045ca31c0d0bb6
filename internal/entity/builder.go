package entity

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/hugozap/volare-engine/internal/record"
)

// Builder owns every entity produced by one pipeline run (spec.md §3,
// §9: "process-local context owning all entities produced by one
// pipeline run"). It is built once from a parsed Document and
// discarded after the render stage reads it; it is never shared
// across concurrent pipeline runs (spec.md §5).
type Builder struct {
	doc *record.Document

	texts                 []*Text
	boxes                 []*Box
	rects                 []*Rect
	ellipses              []*Ellipse
	lines                 []*Line
	arcs                  []*Arc
	semicircles           []*Semicircle
	quarterCircles        []*QuarterCircle
	polylines             []*Polyline
	images                []*Image
	spacers               []*Spacer
	connectors            []*Connector
	vstacks               []*VStack
	hstacks               []*HStack
	groups                []*Group
	tables                []*Table
	freeContainers        []*FreeContainer
	constraintContainers  []*ConstraintContainer

	ids        map[string]Ref   // declared id -> resolved slot
	nodes      map[string]*Node // declared id -> built tree node, children included
	inProgress map[string]bool  // cycle guard
	factories  map[string]Factory

	logger *log.Logger
}

// NewBuilder creates an empty Builder bound to doc's record map.
func NewBuilder(doc *record.Document) *Builder {
	return &Builder{
		doc:        doc,
		ids:        make(map[string]Ref),
		nodes:      make(map[string]*Node),
		inProgress: make(map[string]bool),
		factories:  make(map[string]Factory),
		logger:     log.WithPrefix("entity"),
	}
}

// Lookup resolves a declared id to its slot, building it on demand if
// it has not been built yet (forward references across `children` /
// `source` / `target` / `*_id` are routine, per spec.md §4.1).
func (b *Builder) Lookup(id string) (*Node, error) {
	if ref, ok := b.ids[id]; ok {
		return &Node{Kind: ref.Kind, Index: ref.Index}, nil
	}
	return b.buildNode(id)
}

// Build materializes the whole tree starting from doc.RootID.
func (b *Builder) Build() (*Node, error) {
	root, err := b.buildNode(b.doc.RootID)
	if err != nil {
		return nil, err
	}
	if err := b.promoteConnectors(root); err != nil {
		return nil, err
	}
	return root, nil
}

func (b *Builder) buildNode(id string) (*Node, error) {
	if node, ok := b.nodes[id]; ok {
		return node, nil
	}
	if b.inProgress[id] {
		return nil, &CycleError{ID: id}
	}
	rec, ok := b.doc.Records[id]
	if !ok {
		return nil, &UnresolvedReferenceError{ToID: id}
	}
	b.inProgress[id] = true
	defer delete(b.inProgress, id)

	node, err := b.dispatch(rec)
	if err != nil {
		return nil, err
	}
	b.ids[id] = node.Ref()
	b.nodes[id] = node
	return node, nil
}

func (b *Builder) dispatch(rec *record.Record) (*Node, error) {
	if kind, ok := nativeKinds[rec.Type]; ok {
		return b.buildNative(kind, rec)
	}
	if factory, ok := b.factories[rec.Type]; ok {
		node, err := factory(rec.ID, rec.Attributes, b.doc, b)
		if err != nil {
			return nil, &CustomComponentError{Name: rec.Type, Cause: err}
		}
		b.logger.Debug("expanded custom component", "type", rec.Type, "id", rec.ID)
		return node, nil
	}
	return nil, &UnknownKindError{Type: rec.Type}
}

func (b *Builder) buildChildren(ids []string) ([]*Node, error) {
	nodes := make([]*Node, 0, len(ids))
	for _, id := range ids {
		n, err := b.buildNode(id)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (b *Builder) buildNative(kind Kind, rec *record.Record) (*Node, error) {
	switch kind {
	case KindText:
		b.texts = append(b.texts, decodeText(rec.Attributes))
		return &Node{Kind: KindText, Index: len(b.texts) - 1}, nil

	case KindBox:
		childIDs := stringSliceAttr(rec.Attributes, "children")
		if len(childIDs) != 1 {
			return nil, &ArityError{ID: rec.ID, Detail: fmt.Sprintf("box requires exactly 1 child, got %d", len(childIDs))}
		}
		children, err := b.buildChildren(childIDs)
		if err != nil {
			return nil, err
		}
		box := decodeBox(rec.Attributes)
		box.Child = children[0]
		b.boxes = append(b.boxes, box)
		node := &Node{Kind: KindBox, Index: len(b.boxes) - 1}
		node.Children = children
		return node, nil

	case KindRect:
		b.rects = append(b.rects, decodeRect(rec.Attributes))
		return &Node{Kind: KindRect, Index: len(b.rects) - 1}, nil

	case KindEllipse:
		b.ellipses = append(b.ellipses, decodeEllipse(rec.Attributes))
		return &Node{Kind: KindEllipse, Index: len(b.ellipses) - 1}, nil

	case KindLine:
		b.lines = append(b.lines, decodeLine(rec.Attributes))
		return &Node{Kind: KindLine, Index: len(b.lines) - 1}, nil

	case KindArc:
		b.arcs = append(b.arcs, decodeArc(rec.Attributes))
		return &Node{Kind: KindArc, Index: len(b.arcs) - 1}, nil

	case KindSemicircle:
		b.semicircles = append(b.semicircles, decodeSemicircle(rec.Attributes))
		return &Node{Kind: KindSemicircle, Index: len(b.semicircles) - 1}, nil

	case KindQuarterCircle:
		b.quarterCircles = append(b.quarterCircles, decodeQuarterCircle(rec.Attributes))
		return &Node{Kind: KindQuarterCircle, Index: len(b.quarterCircles) - 1}, nil

	case KindPolyline:
		b.polylines = append(b.polylines, decodePolyline(rec.Attributes))
		return &Node{Kind: KindPolyline, Index: len(b.polylines) - 1}, nil

	case KindImage:
		b.images = append(b.images, decodeImage(rec.Attributes))
		return &Node{Kind: KindImage, Index: len(b.images) - 1}, nil

	case KindSpacer:
		b.spacers = append(b.spacers, decodeSpacer(rec.Attributes))
		return &Node{Kind: KindSpacer, Index: len(b.spacers) - 1}, nil

	case KindConnector:
		b.connectors = append(b.connectors, decodeConnector(rec.Attributes))
		return &Node{Kind: KindConnector, Index: len(b.connectors) - 1}, nil

	case KindVStack:
		return b.buildStack(rec, true)

	case KindHStack:
		return b.buildStack(rec, false)

	case KindGroup:
		childIDs := stringSliceAttr(rec.Attributes, "children")
		children, err := b.buildChildren(childIDs)
		if err != nil {
			return nil, err
		}
		b.groups = append(b.groups, &Group{Children: children})
		node := &Node{Kind: KindGroup, Index: len(b.groups) - 1}
		node.Children = children
		return node, nil

	case KindTable:
		childIDs := stringSliceAttr(rec.Attributes, "children")
		children, err := b.buildChildren(childIDs)
		if err != nil {
			return nil, err
		}
		table := decodeTable(rec.Attributes)
		table.Cells = children
		b.tables = append(b.tables, table)
		node := &Node{Kind: KindTable, Index: len(b.tables) - 1}
		node.Children = children
		return node, nil

	case KindFreeContainer:
		childIDs := stringSliceAttr(rec.Attributes, "children")
		children, err := b.buildChildren(childIDs)
		if err != nil {
			return nil, err
		}
		fc := decodeFreeContainer(rec.Attributes)
		fc.Children = children
		fc.ChildX = make([]float64, len(children))
		fc.ChildY = make([]float64, len(children))
		for i, id := range childIDs {
			childRec := b.doc.Records[id]
			fc.ChildX[i] = floatAttr(childRec.Attributes, "x", 0)
			fc.ChildY[i] = floatAttr(childRec.Attributes, "y", 0)
		}
		b.freeContainers = append(b.freeContainers, fc)
		node := &Node{Kind: KindFreeContainer, Index: len(b.freeContainers) - 1}
		node.Children = children
		return node, nil

	case KindConstraintContainer:
		childIDs := stringSliceAttr(rec.Attributes, "children")
		children, err := b.buildChildren(childIDs)
		if err != nil {
			return nil, err
		}
		cc, err := decodeConstraintContainer(rec.Attributes)
		if err != nil {
			return nil, err
		}
		cc.Children = children
		cc.ChildIDs = childIDs
		b.constraintContainers = append(b.constraintContainers, cc)
		node := &Node{Kind: KindConstraintContainer, Index: len(b.constraintContainers) - 1}
		node.Children = children
		return node, nil
	}
	return nil, &UnknownKindError{Type: kind.String()}
}

func (b *Builder) buildStack(rec *record.Record, vertical bool) (*Node, error) {
	childIDs := stringSliceAttr(rec.Attributes, "children")
	children, err := b.buildChildren(childIDs)
	if err != nil {
		return nil, err
	}
	if vertical {
		stack := decodeVStack(rec.Attributes)
		stack.Children = children
		b.vstacks = append(b.vstacks, stack)
		node := &Node{Kind: KindVStack, Index: len(b.vstacks) - 1}
		node.Children = children
		return node, nil
	}
	stack := decodeHStack(rec.Attributes)
	stack.Children = children
	b.hstacks = append(b.hstacks, stack)
	node := &Node{Kind: KindHStack, Index: len(b.hstacks) - 1}
	node.Children = children
	return node, nil
}

// --- Accessors used by the layout and render stages ---

func (b *Builder) Text(i int) *Text                               { return b.texts[i] }
func (b *Builder) Box(i int) *Box                                 { return b.boxes[i] }
func (b *Builder) Rect(i int) *Rect                                { return b.rects[i] }
func (b *Builder) Ellipse(i int) *Ellipse                          { return b.ellipses[i] }
func (b *Builder) Line(i int) *Line                                { return b.lines[i] }
func (b *Builder) Arc(i int) *Arc                                  { return b.arcs[i] }
func (b *Builder) Semicircle(i int) *Semicircle                    { return b.semicircles[i] }
func (b *Builder) QuarterCircle(i int) *QuarterCircle              { return b.quarterCircles[i] }
func (b *Builder) Polyline(i int) *Polyline                        { return b.polylines[i] }
func (b *Builder) Image(i int) *Image                              { return b.images[i] }
func (b *Builder) Spacer(i int) *Spacer                            { return b.spacers[i] }
func (b *Builder) Connector(i int) *Connector                      { return b.connectors[i] }
func (b *Builder) VStack(i int) *VStack                            { return b.vstacks[i] }
func (b *Builder) HStack(i int) *HStack                            { return b.hstacks[i] }
func (b *Builder) Group(i int) *Group                              { return b.groups[i] }
func (b *Builder) Table(i int) *Table                              { return b.tables[i] }
func (b *Builder) FreeContainer(i int) *FreeContainer              { return b.freeContainers[i] }
func (b *Builder) ConstraintContainer(i int) *ConstraintContainer  { return b.constraintContainers[i] }

// RefOf resolves a declared id to its slot without building anything.
func (b *Builder) RefOf(id string) (Ref, bool) {
	ref, ok := b.ids[id]
	return ref, ok
}
