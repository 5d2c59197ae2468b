package render

import "github.com/mkravets/repotxt/internal/types"

const (
	// structureHeader opens the tree diagram section of the report.
	structureHeader = "Repository Structure:\n"
	// contentsHeader opens the content dump section of the report.
	contentsHeader = "\nFiles Content:\n"
)

// Report assembles the full consolidated report for a scanned tree: the
// structure header and tree diagram followed by the contents header and the
// content dump. File paths in the dump are relative to the scan root.
func Report(rootNode *types.Node) string {
	return structureHeader + Tree(rootNode) + contentsHeader + Contents(rootNode, "")
}
