package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.i3wm.org/i3/v4"
)

func con(id int64, name string, kids ...*i3.Node) *i3.Node {
	return &i3.Node{ID: i3.NodeID(id), Name: name, Type: i3.Con, Nodes: kids}
}

func sampleTree(focusID int64) *i3.Node {
	term := con(11, "Terminal")
	browser := con(12, "Browser")
	editor := con(13, "Editor")
	split := con(20, "", browser, editor)
	floatingInner := con(14, "Calculator")
	floating := &i3.Node{ID: 30, Type: i3.FloatingCon, Nodes: []*i3.Node{floatingInner}}

	ws1 := &i3.Node{
		ID: 100, Name: "ws1", Type: i3.WorkspaceNode,
		Nodes:         []*i3.Node{term, split},
		FloatingNodes: []*i3.Node{floating},
	}
	ws2 := &i3.Node{ID: 101, Name: "ws2", Type: i3.WorkspaceNode}

	bar := con(40, "bar")
	dock := &i3.Node{ID: 41, Type: i3.DockareaNode, Nodes: []*i3.Node{bar}}
	content := con(42, "content", ws1, ws2)
	output := &i3.Node{ID: 50, Name: "DP-1", Type: i3.OutputNode, Nodes: []*i3.Node{dock, content}}
	root := &i3.Node{ID: 1, Name: "root", Type: i3.Root, Nodes: []*i3.Node{output}}

	var mark func(n *i3.Node)
	mark = func(n *i3.Node) {
		if int64(n.ID) == focusID {
			n.Focused = true
		}
		for _, c := range children(n) {
			mark(c)
		}
	}
	mark(root)
	return root
}

func TestFindFocused(t *testing.T) {
	focused, ws := findFocused(sampleTree(13))
	require.NotNil(t, focused)
	require.NotNil(t, ws)
	assert.Equal(t, "Editor", focused.Name)
	assert.Equal(t, "ws1", ws.Name)
}

func TestFindFocusedFloating(t *testing.T) {
	focused, ws := findFocused(sampleTree(14))
	require.NotNil(t, focused)
	assert.Equal(t, "Calculator", focused.Name)
	assert.Equal(t, "ws1", ws.Name)
}

func TestFindFocusedEmptyWorkspace(t *testing.T) {
	focused, ws := findFocused(sampleTree(101))
	require.NotNil(t, focused)
	assert.Same(t, focused, ws)
}

func TestLeavesBreadthFirstWithFloating(t *testing.T) {
	_, ws := findFocused(sampleTree(11))

	var names []string
	for _, leaf := range leaves(ws) {
		names = append(names, leaf.Name)
	}
	assert.Equal(t, []string{"Terminal", "Browser", "Editor", "Calculator"}, names)
}

func TestLeavesSkipDockarea(t *testing.T) {
	root := sampleTree(11)
	output := root.Nodes[0]

	var names []string
	for _, leaf := range leaves(output) {
		names = append(names, leaf.Name)
	}
	assert.NotContains(t, names, "bar")
	assert.Contains(t, names, "Terminal")
}

func TestWorkspaceOf(t *testing.T) {
	ws, err := workspaceOf(sampleTree(12))
	require.NoError(t, err)
	assert.Equal(t, "ws1", ws.Name)
	assert.Equal(t, []Window{
		{ID: 11, Name: "Terminal"},
		{ID: 12, Name: "Browser"},
		{ID: 13, Name: "Editor"},
		{ID: 14, Name: "Calculator"},
	}, ws.Leaves)

	ws, err = workspaceOf(sampleTree(101))
	require.NoError(t, err)
	assert.Equal(t, Workspace{Name: "ws2"}, ws)
}

func TestWorkspaceOfNoFocus(t *testing.T) {
	_, err := workspaceOf(sampleTree(-1))
	require.ErrorIs(t, err, ErrNoFocus)
}

// swayTree mirrors sway's layout: floating windows sit in the workspace's
// floating list as childless floating_con nodes.
func swayTree() *i3.Node {
	browser := con(8, "Browser")
	browser.Focused = true
	terminal := &i3.Node{ID: 9, Name: "Terminal", Type: i3.FloatingCon}
	ws := &i3.Node{
		ID: 5, Name: "ws1", Type: i3.WorkspaceNode,
		Nodes:         []*i3.Node{browser},
		FloatingNodes: []*i3.Node{terminal},
	}
	output := &i3.Node{ID: 3, Name: "DP-1", Type: i3.OutputNode, Nodes: []*i3.Node{ws}}
	return &i3.Node{ID: 1, Name: "root", Type: i3.Root, Nodes: []*i3.Node{output}}
}

func TestWorkspaceOfSwayFloatingWindow(t *testing.T) {
	ws, err := workspaceOf(swayTree())
	require.NoError(t, err)
	assert.Equal(t, "ws1", ws.Name)
	assert.Equal(t, []Window{
		{ID: 8, Name: "Browser"},
		{ID: 9, Name: "Terminal"},
	}, ws.Leaves)
}

func TestLeavesIgnoreEmptyFloatingConOutsideFloatingList(t *testing.T) {
	stray := &i3.Node{ID: 7, Type: i3.FloatingCon}
	ws := &i3.Node{ID: 5, Name: "ws1", Type: i3.WorkspaceNode, Nodes: []*i3.Node{stray}}
	assert.Empty(t, leaves(ws))
}
