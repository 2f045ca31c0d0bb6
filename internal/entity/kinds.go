// Package entity implements the Tree Builder stage: it turns raw
// records into typed entities held in per-kind slot-addressed stores,
// and assembles the ownership-free tree of (kind, index) handles that
// the rest of the pipeline walks.
//
// Grounded on the slot-indexed element store and ElementType tagging
// in waozixyz-kryon/impl/go/krb/types.go, and on the typed per-kind
// Vec<...> fields of DiagramBuilder in
// original_source/volare_engine_layout/src/diagram_builder.rs (there
// ported from a HashMap<EntityID,_> keying scheme to direct slice
// indices, matching this repo's index-stability contract).
package entity

// Kind discriminates the entity variant held at a given slot index.
type Kind uint8

const (
	KindText Kind = iota
	KindBox
	KindRect
	KindEllipse
	KindLine
	KindArc
	KindSemicircle
	KindQuarterCircle
	KindPolyline
	KindImage
	KindSpacer
	KindConnector
	KindVStack
	KindHStack
	KindGroup
	KindTable
	KindFreeContainer
	KindConstraintContainer
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBox:
		return "box"
	case KindRect:
		return "rect"
	case KindEllipse:
		return "ellipse"
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindSemicircle:
		return "semicircle"
	case KindQuarterCircle:
		return "quarter_circle"
	case KindPolyline:
		return "polyline"
	case KindImage:
		return "image"
	case KindSpacer:
		return "spacer"
	case KindConnector:
		return "connector"
	case KindVStack:
		return "vstack"
	case KindHStack:
		return "hstack"
	case KindGroup:
		return "group"
	case KindTable:
		return "table"
	case KindFreeContainer:
		return "free_container"
	case KindConstraintContainer:
		return "constraint_container"
	default:
		return "unknown"
	}
}

// nativeKinds maps the record "type" string to its native Kind. Types
// not present here are either a registered custom component or
// UnknownKind.
var nativeKinds = map[string]Kind{
	"text":                 KindText,
	"box":                  KindBox,
	"rect":                 KindRect,
	"ellipse":              KindEllipse,
	"line":                 KindLine,
	"arc":                  KindArc,
	"semicircle":           KindSemicircle,
	"quarter_circle":       KindQuarterCircle,
	"polyline":             KindPolyline,
	"image":                KindImage,
	"spacer":               KindSpacer,
	"connector":            KindConnector,
	"vstack":               KindVStack,
	"hstack":               KindHStack,
	"group":                KindGroup,
	"table":                KindTable,
	"free_container":       KindFreeContainer,
	"constraint_container": KindConstraintContainer,
}

// Node is an ownership-free handle into the builder's stores plus the
// declared children, in declared order. It carries no pointers into
// the store, so a copy of a Node is always valid.
type Node struct {
	Kind     Kind
	Index    int
	Children []*Node
}

// Ref is the lightweight (kind,index) half of a Node, used as a map
// key when a Node's Children are irrelevant (e.g. connector
// endpoints, the id->slot table).
type Ref struct {
	Kind  Kind
	Index int
}

func (n *Node) Ref() Ref { return Ref{Kind: n.Kind, Index: n.Index} }
