package render_test

import (
	"strings"
	"testing"

	"github.com/mkravets/repotxt/internal/render"
	"github.com/mkravets/repotxt/internal/types"
)

// newDirectoryNode builds a directory node for rendering tests.
func newDirectoryNode(name string, children ...*types.Node) *types.Node {
	return &types.Node{Name: name, Kind: types.NodeKindDirectory, Children: children}
}

// newFileNode builds a file node for rendering tests.
func newFileNode(name string, content string) *types.Node {
	return &types.Node{Name: name, Kind: types.NodeKindFile, Size: int64(len(content)), Content: content}
}

// TestTreeDirectoriesFirstOrdering verifies the diagram layout: directories
// precede files even when a file name sorts earlier alphabetically.
func TestTreeDirectoriesFirstOrdering(testingInstance *testing.T) {
	rootNode := newDirectoryNode("root",
		newFileNode("aa.txt", "aa"),
		newDirectoryNode("bb_dir", newFileNode("c.txt", "c")),
	)

	expectedDiagram := strings.Join([]string{
		"└── root",
		"    ├── bb_dir",
		"    │   └── c.txt",
		"    └── aa.txt",
		"",
	}, "\n")

	actualDiagram := render.Tree(rootNode)
	if actualDiagram != expectedDiagram {
		testingInstance.Errorf("tree diagram mismatch:\nexpected:\n%s\nactual:\n%s", expectedDiagram, actualDiagram)
	}
}

// TestTreeCaseInsensitiveOrdering verifies that names within a kind group are
// ordered without regard to case.
func TestTreeCaseInsensitiveOrdering(testingInstance *testing.T) {
	rootNode := newDirectoryNode("root",
		newFileNode("B.txt", "b"),
		newFileNode("a.txt", "a"),
	)

	actualDiagram := render.Tree(rootNode)
	firstIndex := strings.Index(actualDiagram, "a.txt")
	secondIndex := strings.Index(actualDiagram, "B.txt")
	if firstIndex < 0 || secondIndex < 0 || firstIndex > secondIndex {
		testingInstance.Errorf("expected a.txt before B.txt in:\n%s", actualDiagram)
	}
}

// TestTreeOmitsEmptyRootName verifies that a root with an empty name emits no
// line of its own while its children keep the root-level indentation.
func TestTreeOmitsEmptyRootName(testingInstance *testing.T) {
	rootNode := newDirectoryNode("", newFileNode("a.txt", "a"))

	expectedDiagram := "    └── a.txt\n"
	actualDiagram := render.Tree(rootNode)
	if actualDiagram != expectedDiagram {
		testingInstance.Errorf("expected %q, got %q", expectedDiagram, actualDiagram)
	}
}

// TestTreeDoesNotMutateChildOrder verifies the renderer sorts a copy, leaving
// the scan-order children untouched for the content renderer.
func TestTreeDoesNotMutateChildOrder(testingInstance *testing.T) {
	rootNode := newDirectoryNode("root",
		newFileNode("aa.txt", "aa"),
		newDirectoryNode("bb_dir"),
	)

	_ = render.Tree(rootNode)

	if rootNode.Children[0].Name != "aa.txt" || rootNode.Children[1].Name != "bb_dir" {
		testingInstance.Error("rendering must not reorder the node's children")
	}
}
