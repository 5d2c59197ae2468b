package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/mkravets/repotxt/internal/types"
)

const (
	// warningPermissionDeniedFormat reports a directory whose entries could not be listed.
	warningPermissionDeniedFormat = "Permission denied: %s"
	// warningReadDirectoryFormat reports a non-permission directory listing failure.
	warningReadDirectoryFormat = "Warning: unable to read directory %s: %v"
	// warningStatEntryFormat reports an entry whose file information could not be retrieved.
	warningStatEntryFormat = "Warning: unable to stat %s: %v"
)

// Scanner builds an in-memory Node tree for a directory using the configured
// exclusion rules and size threshold. The zero value is not usable; populate
// IgnorePatterns and MaxFileSize before calling Scan.
type Scanner struct {
	// IgnorePatterns is the full exclusion list, defaults plus user additions.
	IgnorePatterns []string
	// MaxFileSize is the byte threshold above which file content is replaced
	// with the too-large sentinel without reading the file.
	MaxFileSize int64
	// Gitignore optionally excludes entries matched by the scan root's
	// .gitignore file. Nil disables gitignore matching.
	Gitignore gitignore.IgnoreMatcher
	// Warn receives recoverable scan warnings. Nil discards them.
	Warn func(message string)
}

// Scan recursively walks rootPath and returns a fully populated directory
// Node named after the path's base name. Traversal is single-threaded and
// enumeration is sorted by raw entry name, so identical filesystem state
// yields byte-identical trees. Permission failures while listing a directory
// degrade to a warning and a partial subtree rather than aborting the scan.
func (scanner *Scanner) Scan(rootPath string) *types.Node {
	return scanner.scanDirectory(rootPath)
}

func (scanner *Scanner) scanDirectory(directoryPath string) *types.Node {
	directoryName := filepath.Base(directoryPath)
	if directoryName == string(filepath.Separator) {
		// Scanning the filesystem root: the node carries an empty name so the
		// renderers skip the root line and emit bare relative paths.
		directoryName = ""
	}
	directoryNode := &types.Node{
		Name: directoryName,
		Kind: types.NodeKindDirectory,
	}

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		if os.IsPermission(readDirectoryError) {
			scanner.warn(fmt.Sprintf(warningPermissionDeniedFormat, directoryPath))
		} else {
			scanner.warn(fmt.Sprintf(warningReadDirectoryFormat, directoryPath, readDirectoryError))
		}
	}

	// os.ReadDir returns the entries it managed to read even on error, and
	// sorts them by name, which keeps partial results deterministic.
	for _, directoryEntry := range directoryEntries {
		entryPath := filepath.Join(directoryPath, directoryEntry.Name())

		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			scanner.warn(fmt.Sprintf(warningStatEntryFormat, entryPath, infoError))
			continue
		}
		// Symlinks scan as whatever they point at: the target decides
		// between directory recursion and file inclusion, and supplies the
		// size checked against the threshold. A dangling link is neither a
		// file nor a directory and drops out of the tree.
		if entryInfo.Mode()&os.ModeSymlink != 0 {
			targetInfo, statError := os.Stat(entryPath)
			if statError != nil {
				continue
			}
			entryInfo = targetInfo
		}
		isDirectory := entryInfo.IsDir()

		if ShouldExclude(entryPath, directoryPath, isDirectory, scanner.IgnorePatterns) {
			continue
		}
		if scanner.matchesGitignore(entryPath, isDirectory) {
			continue
		}

		if isDirectory {
			subdirectoryNode := scanner.scanDirectory(entryPath)
			directoryNode.Children = append(directoryNode.Children, subdirectoryNode)
			directoryNode.Size += subdirectoryNode.Size
			directoryNode.FileCount += subdirectoryNode.FileCount
			directoryNode.DirCount += 1 + subdirectoryNode.DirCount
			continue
		}

		// FIFOs, sockets, and device nodes are neither files nor
		// directories; opening one can block indefinitely, so they never
		// reach the classifier.
		if !entryInfo.Mode().IsRegular() {
			continue
		}

		fileNode := &types.Node{
			Name:    directoryEntry.Name(),
			Kind:    types.NodeKindFile,
			Size:    entryInfo.Size(),
			Content: scanner.readFileContent(entryPath, entryInfo.Size()),
		}
		directoryNode.Children = append(directoryNode.Children, fileNode)
		directoryNode.Size += fileNode.Size
		directoryNode.FileCount++
	}

	return directoryNode
}

// readFileContent resolves the content field for a file: the too-large
// sentinel when the size threshold is exceeded (checked before any read),
// the decoded text for files classified as text, and the binary sentinel
// otherwise. Read failures after classification also degrade to the binary
// sentinel rather than failing the scan.
func (scanner *Scanner) readFileContent(filePath string, fileSize int64) string {
	if fileSize > scanner.MaxFileSize {
		return types.TooLargeContentSentinel
	}
	if !IsTextFile(filePath) {
		return types.BinaryContentSentinel
	}
	fileBytes, readError := os.ReadFile(filePath)
	if readError != nil {
		return types.BinaryContentSentinel
	}
	// Lossy decode: malformed byte sequences are dropped, never fatal.
	return strings.ToValidUTF8(string(fileBytes), "")
}

// matchesGitignore asks the optional gitignore matcher about an entry. The
// matcher resolves entryPath against its own base directory, so the scan
// root and the .gitignore location must agree (the CLI guarantees both are
// the same absolute path).
func (scanner *Scanner) matchesGitignore(entryPath string, isDirectory bool) bool {
	if scanner.Gitignore == nil {
		return false
	}
	return scanner.Gitignore.Match(entryPath, isDirectory)
}

func (scanner *Scanner) warn(message string) {
	if scanner.Warn != nil {
		scanner.Warn(message)
	}
}
