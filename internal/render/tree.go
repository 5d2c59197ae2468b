// Package render converts a scanned node tree into the two textual views of
// the report: the branch-drawn tree diagram and the flat content dump.
package render

import (
	"sort"
	"strings"

	"github.com/mkravets/repotxt/internal/types"
)

const (
	// lastChildConnector draws the corner glyph for the final sibling.
	lastChildConnector = "└── "
	// middleChildConnector draws the tee glyph for non-final siblings.
	middleChildConnector = "├── "
	// lastChildIndent continues the prefix below a final sibling.
	lastChildIndent = "    "
	// continuationIndent continues the prefix below a non-final sibling.
	continuationIndent = "│   "
)

// Tree renders the node hierarchy as an indented ASCII diagram, one line per
// node. The root line is omitted when the root's name is empty. Within every
// directory, children are listed directories first, each group ordered
// case-insensitively by name. This ordering deliberately differs from the
// content dump's purely alphabetical order; the two must not be unified.
func Tree(node *types.Node) string {
	var diagramBuilder strings.Builder
	writeTreeNode(&diagramBuilder, node, "", true)
	return diagramBuilder.String()
}

func writeTreeNode(diagramBuilder *strings.Builder, node *types.Node, linePrefix string, isLastSibling bool) {
	if node.Name != "" {
		connector := middleChildConnector
		if isLastSibling {
			connector = lastChildConnector
		}
		diagramBuilder.WriteString(linePrefix)
		diagramBuilder.WriteString(connector)
		diagramBuilder.WriteString(node.Name)
		diagramBuilder.WriteString("\n")
	}

	if !node.IsDir() {
		return
	}

	childPrefix := linePrefix + continuationIndent
	if isLastSibling {
		childPrefix = linePrefix + lastChildIndent
	}

	orderedChildren := sortedDirectoriesFirst(node.Children)
	for childIndex, childNode := range orderedChildren {
		writeTreeNode(diagramBuilder, childNode, childPrefix, childIndex == len(orderedChildren)-1)
	}
}

// sortedDirectoriesFirst returns a copy of children ordered with directories
// before files and case-insensitively by name within each kind. The stable
// sort keeps raw scan order for names that differ only by case.
func sortedDirectoriesFirst(children []*types.Node) []*types.Node {
	orderedChildren := make([]*types.Node, len(children))
	copy(orderedChildren, children)
	sort.SliceStable(orderedChildren, func(firstIndex, secondIndex int) bool {
		firstNode, secondNode := orderedChildren[firstIndex], orderedChildren[secondIndex]
		if firstNode.IsDir() != secondNode.IsDir() {
			return firstNode.IsDir()
		}
		return strings.ToLower(firstNode.Name) < strings.ToLower(secondNode.Name)
	})
	return orderedChildren
}
