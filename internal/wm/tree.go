package wm

import (
	"errors"
	"slices"

	"go.i3wm.org/i3/v4"
)

// ErrNoFocus is returned when the tree has no focused container.
var ErrNoFocus = errors.New("no focused container")

// children returns tiled children followed by floating ones.
func children(n *i3.Node) []*i3.Node {
	out := make([]*i3.Node, 0, len(n.Nodes)+len(n.FloatingNodes))
	out = append(out, n.Nodes...)
	return append(out, n.FloatingNodes...)
}

// findFocused walks the tree depth first and returns the focused node and the
// workspace enclosing it. A focused workspace is its own workspace.
func findFocused(root *i3.Node) (focused, workspace *i3.Node) {
	var walk func(n, ws *i3.Node) bool
	walk = func(n, ws *i3.Node) bool {
		if n.Type == i3.WorkspaceNode {
			ws = n
		}
		if n.Focused {
			focused, workspace = n, ws
			return true
		}
		for _, c := range children(n) {
			if walk(c, ws) {
				return true
			}
		}
		return false
	}
	if root != nil {
		walk(root, nil)
	}
	return focused, workspace
}

// leaves returns the window containers below n in breadth-first order.
// Containers directly inside a dock area are not windows the user arranges.
// sway reports a floating window as a childless floating_con with no con
// wrapper, so those count as windows too.
func leaves(n *i3.Node) []*i3.Node {
	type entry struct {
		node   *i3.Node
		parent *i3.Node
	}
	var out []*i3.Node
	queue := make([]entry, 0)
	for _, c := range children(n) {
		queue = append(queue, entry{c, n})
	}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if isWindow(e.node, e.parent) {
			out = append(out, e.node)
		}
		for _, c := range children(e.node) {
			queue = append(queue, entry{c, e.node})
		}
	}
	return out
}

func isWindow(n, parent *i3.Node) bool {
	if len(n.Nodes) > 0 {
		return false
	}
	switch n.Type {
	case i3.Con:
		return parent.Type != i3.DockareaNode
	case i3.FloatingCon:
		return slices.Contains(parent.FloatingNodes, n)
	}
	return false
}

func toWindow(n *i3.Node) Window {
	return Window{ID: int64(n.ID), Name: n.Name}
}

func workspaceOf(root *i3.Node) (Workspace, error) {
	focused, ws := findFocused(root)
	if focused == nil {
		return Workspace{}, ErrNoFocus
	}
	if ws == nil {
		// focus on an output or the root has no enclosing workspace
		return Workspace{}, nil
	}
	out := Workspace{Name: ws.Name}
	for _, leaf := range leaves(ws) {
		out.Leaves = append(out.Leaves, toWindow(leaf))
	}
	return out, nil
}
