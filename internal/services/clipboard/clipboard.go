// Package clipboard exports generated reports to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier places a rendered report on the system clipboard. An error means the
// report could not be exported; the report itself has already been delivered
// to stdout or the output file by then.
type Copier interface {
	Copy(report string) error
}

// Service is the default Copier, backed by github.com/atotto/clipboard, which
// delegates to the platform clipboard utility (pbcopy, xclip, clip).
type Service struct{}

// NewService constructs the default clipboard-backed Copier.
func NewService() *Service {
	return &Service{}
}

// Copy replaces the clipboard contents with the report text.
func (service *Service) Copy(report string) error {
	return clipboard.WriteAll(report)
}

var _ Copier = (*Service)(nil)
