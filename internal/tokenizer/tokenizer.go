// Package tokenizer estimates token counts for report text.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	// Name identifies the model or encoding the counter resolves to.
	Name() string
	// CountString returns the number of tokens in the input.
	CountString(input string) (int, error)
}

const (
	// DefaultModel is used when no model is requested.
	DefaultModel = "gpt-4o"
	// defaultEncodingName backs models tiktoken has no table for.
	defaultEncodingName = "cl100k_base"
)

// NewCounter returns a Counter for the requested model together with the
// resolved model or encoding name. Unknown models fall back to the
// cl100k_base encoding rather than failing.
func NewCounter(modelName string) (Counter, string, error) {
	resolvedModel := strings.ToLower(strings.TrimSpace(modelName))
	if resolvedModel == "" {
		resolvedModel = DefaultModel
	}

	modelEncoding, encodingError := tiktoken.EncodingForModel(resolvedModel)
	if encodingError == nil && modelEncoding != nil {
		return encodingCounter{encoding: modelEncoding, name: resolvedModel}, resolvedModel, nil
	}

	fallbackEncoding, fallbackError := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackError != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer: %w", fallbackError)
	}
	return encodingCounter{encoding: fallbackEncoding, name: defaultEncodingName}, defaultEncodingName, nil
}

// encodingCounter counts tokens with a tiktoken encoding.
type encodingCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (counter encodingCounter) Name() string {
	return counter.name
}

func (counter encodingCounter) CountString(input string) (int, error) {
	return len(counter.encoding.Encode(input, nil, nil)), nil
}

var _ Counter = encodingCounter{}
