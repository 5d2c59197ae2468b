package utils

import (
	"fmt"
	"strings"
)

// FormatFileSize converts a byte length into a human-readable lower-case unit
// string, e.g. 2048 -> "2kb".
func FormatFileSize(byteLength int64) string {
	if byteLength < 0 {
		return "0b"
	}
	unitNames := []string{"b", "kb", "mb", "gb", "tb", "pb"}
	scaledValue := float64(byteLength)
	unitIndex := 0
	for scaledValue >= 1024 && unitIndex < len(unitNames)-1 {
		scaledValue /= 1024
		unitIndex++
	}
	if unitIndex == 0 {
		return fmt.Sprintf("%db", byteLength)
	}
	if scaledValue < 10 {
		formattedValue := fmt.Sprintf("%.1f", scaledValue)
		formattedValue = strings.TrimSuffix(formattedValue, ".0")
		return formattedValue + unitNames[unitIndex]
	}
	return fmt.Sprintf("%.0f%s", scaledValue, unitNames[unitIndex])
}
