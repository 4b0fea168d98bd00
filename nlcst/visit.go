package nlcst

// VisitFunc is called for every visited node with its position among its
// siblings and its parent. The tree root is reported with index -1 and a nil
// parent.
type VisitFunc func(node *Node, index int, parent *Node) error

// Visit walks tree depth-first in document order, calling fn for each node of
// the given kind. An empty kind visits every node. The first error returned by
// fn stops the walk and is returned as is.
func Visit(tree *Node, kind Kind, fn VisitFunc) error {
	if tree == nil {
		return nil
	}
	w := walker{kind: kind, fn: fn}
	return w.walk(tree, -1, nil)
}

type walker struct {
	kind Kind
	fn   VisitFunc
}

func (w walker) walk(n *Node, index int, parent *Node) error {
	if w.kind == "" || n.Kind == w.kind {
		if err := w.fn(n, index, parent); err != nil {
			return err
		}
	}

	for i, child := range n.Children {
		if child == nil {
			continue
		}
		if err := w.walk(child, i, n); err != nil {
			return err
		}
	}
	return nil
}
