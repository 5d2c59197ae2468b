package scan

import (
	"io"
	"os"
)

// classificationSampleLength is the number of leading bytes sampled when
// deciding whether a file holds text.
const classificationSampleLength = 1024

// textByteAllowSet marks every byte value that may appear in a file still
// considered text: bell, backspace, tab, line feed, form feed, carriage
// return, escape, and the full 0x20-0xFF range.
var textByteAllowSet = buildTextByteAllowSet()

func buildTextByteAllowSet() [256]bool {
	var allowSet [256]bool
	for _, controlByte := range []byte{7, 8, 9, 10, 12, 13, 27} {
		allowSet[controlByte] = true
	}
	for byteValue := 0x20; byteValue <= 0xFF; byteValue++ {
		allowSet[byteValue] = true
	}
	return allowSet
}

// IsTextData reports whether every byte of the sample falls inside the
// text allow-set. An empty sample counts as text.
func IsTextData(sample []byte) bool {
	for _, byteValue := range sample {
		if !textByteAllowSet[byteValue] {
			return false
		}
	}
	return true
}

// IsTextFile samples up to the first 1024 bytes of the file at filePath and
// reports whether the sample looks like text. Any failure to open or read
// the file classifies it as binary; the scan must never fail on an
// unreadable file. The heuristic accepts all of 0x20-0xFF, so exotic
// encodings can be misclassified as text.
func IsTextFile(filePath string) bool {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return false
	}
	defer fileHandle.Close()

	sampleBuffer := make([]byte, classificationSampleLength)
	bytesRead, readError := io.ReadFull(fileHandle, sampleBuffer)
	if readError != nil && readError != io.EOF && readError != io.ErrUnexpectedEOF {
		return false
	}
	return IsTextData(sampleBuffer[:bytesRead])
}
