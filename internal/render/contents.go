package render

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkravets/repotxt/internal/types"
)

// separatorLine is the fixed 48-character delimiter framing every file header.
const separatorLine = "================================================\n"

// fileHeaderPrefix starts the path line of every file block.
const fileHeaderPrefix = "File: "

// Contents renders the flat content dump: for every included file, a
// separator-framed header naming the file's path relative to the scan root,
// followed by the file's content field verbatim and a blank line. Children
// of a directory are visited purely alphabetically, case-insensitively by
// name, regardless of kind. This deliberately diverges from the tree
// diagram's directories-first order and must stay that way.
func Contents(node *types.Node, basePath string) string {
	var dumpBuilder strings.Builder
	writeContentNode(&dumpBuilder, node, basePath)
	return dumpBuilder.String()
}

func writeContentNode(dumpBuilder *strings.Builder, node *types.Node, basePath string) {
	if !node.IsDir() {
		relativePath := filepath.Join(basePath, node.Name)
		dumpBuilder.WriteString(separatorLine)
		dumpBuilder.WriteString(fileHeaderPrefix)
		dumpBuilder.WriteString(relativePath)
		dumpBuilder.WriteString("\n")
		dumpBuilder.WriteString(separatorLine)
		dumpBuilder.WriteString(node.Content)
		dumpBuilder.WriteString("\n\n")
		return
	}

	currentPath := ""
	if node.Name != "" {
		currentPath = filepath.Join(basePath, node.Name)
	}
	for _, childNode := range sortedAlphabetically(node.Children) {
		writeContentNode(dumpBuilder, childNode, currentPath)
	}
}

// sortedAlphabetically returns a copy of children ordered case-insensitively
// by name alone.
func sortedAlphabetically(children []*types.Node) []*types.Node {
	orderedChildren := make([]*types.Node, len(children))
	copy(orderedChildren, children)
	sort.SliceStable(orderedChildren, func(firstIndex, secondIndex int) bool {
		return strings.ToLower(orderedChildren[firstIndex].Name) < strings.ToLower(orderedChildren[secondIndex].Name)
	})
	return orderedChildren
}
