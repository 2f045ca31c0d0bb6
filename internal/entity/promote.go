package entity

// promoteConnectors resolves every connector's endpoints and, if
// necessary, reparents the connector to the lowest ancestor container
// that transitively holds both endpoints (spec.md §4.2 "Connector
// promotion", §9 "Promotion (connector)").
func (b *Builder) promoteConnectors(root *Node) error {
	var connectors []*Node
	var collect func(n *Node)
	collect = func(n *Node) {
		if n.Kind == KindConnector {
			connectors = append(connectors, n)
		}
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(root)

	for _, cn := range connectors {
		c := b.connectors[cn.Index]
		srcNode, err := b.Lookup(c.SourceID)
		if err != nil {
			return &UnresolvedReferenceError{FromID: "connector", ToID: c.SourceID}
		}
		tgtNode, err := b.Lookup(c.TargetID)
		if err != nil {
			return &UnresolvedReferenceError{FromID: "connector", ToID: c.TargetID}
		}
		c.SourceRef = srcNode.Ref()
		c.TargetRef = tgtNode.Ref()
	}

	for _, cn := range connectors {
		c := b.connectors[cn.Index]
		srcPath := findPath(root, c.SourceRef, nil)
		tgtPath := findPath(root, c.TargetRef, nil)
		if srcPath == nil || tgtPath == nil {
			continue
		}
		lca := lowestContainerAncestor(srcPath, tgtPath)
		if lca == nil {
			continue
		}
		if n := len(lca.Children); n > 0 && lca.Children[n-1] == cn {
			continue
		}
		removeChild(root, cn)
		lca.Children = append(lca.Children, cn)
	}
	return nil
}

func findPath(root *Node, target Ref, path []*Node) []*Node {
	path = append(path, root)
	if root.Ref() == target {
		out := make([]*Node, len(path))
		copy(out, path)
		return out
	}
	for _, c := range root.Children {
		if p := findPath(c, target, path); p != nil {
			return p
		}
	}
	return nil
}

// isContainerKind reports whether a kind's Children slice is a real
// layout relationship (a node whose children a promoted connector may
// be appended to), as opposed to a shape's always-empty list.
func isContainerKind(k Kind) bool {
	switch k {
	case KindBox, KindVStack, KindHStack, KindGroup, KindTable, KindFreeContainer, KindConstraintContainer:
		return true
	default:
		return false
	}
}

// lowestContainerAncestor walks the common prefix of two root-to-node
// paths and returns the deepest container found in it, defaulting to
// the root if no container further down qualifies.
func lowestContainerAncestor(a, b []*Node) *Node {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var commonDepth int
	for commonDepth = 0; commonDepth < n; commonDepth++ {
		if a[commonDepth].Ref() != b[commonDepth].Ref() {
			break
		}
	}
	for i := commonDepth - 1; i >= 0; i-- {
		if isContainerKind(a[i].Kind) {
			return a[i]
		}
	}
	if len(a) > 0 {
		return a[0] // root
	}
	return nil
}

func removeChild(root *Node, target *Node) bool {
	for i, c := range root.Children {
		if c == target {
			root.Children = append(root.Children[:i], root.Children[i+1:]...)
			return true
		}
	}
	for _, c := range root.Children {
		if removeChild(c, target) {
			return true
		}
	}
	return false
}
