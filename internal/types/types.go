// Package types defines the data structures shared across the repotxt pipeline.
package types

// NodeKind identifies whether a Node represents a file or a directory.
type NodeKind int

const (
	// NodeKindDirectory marks a Node that represents a directory.
	NodeKindDirectory NodeKind = iota
	// NodeKindFile marks a Node that represents a regular file.
	NodeKindFile
)

const (
	// BinaryContentSentinel replaces the content of files classified as binary.
	BinaryContentSentinel = "[Binary file]"
	// TooLargeContentSentinel replaces the content of files exceeding the size threshold.
	TooLargeContentSentinel = "[File too large to include]"
)

// Node is the in-memory representation of one filesystem entry discovered
// during a scan. Directory nodes own their children outright; the tree is
// built once and read immutably by both renderers afterwards.
type Node struct {
	// Name is the entry's base name, not its full path. It is empty only
	// when the root of a scan resolves to a path with an empty base name.
	Name string
	// Kind distinguishes directories from files.
	Kind NodeKind
	// Size is the file's byte size, or for a directory the sum of all
	// descendant file sizes.
	Size int64
	// Children holds the ordered child nodes of a directory in raw lexical
	// scan order. Renderers re-sort copies as needed.
	Children []*Node
	// FileCount is the total number of file descendants at any depth.
	// Meaningful for directories only.
	FileCount int
	// DirCount is the total number of directory descendants at any depth,
	// not counting the node itself. Meaningful for directories only.
	DirCount int
	// Content holds a file's decoded text or one of the sentinel values.
	// Meaningful for files only.
	Content string
}

// IsDir reports whether the node represents a directory.
func (node *Node) IsDir() bool {
	return node.Kind == NodeKindDirectory
}
