// Package clipboard copies passwords to the system clipboard when one exists.
package clipboard

import (
	"fmt"

	"github.com/Veraticus/passgen/internal/common"
	"github.com/atotto/clipboard"
)

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System uses the platform clipboard through atotto/clipboard.
type System struct{}

// Copy writes text to the system clipboard. It returns an error wrapping
// common.ErrClipboardUnavailable when no clipboard tool is installed or the
// write fails.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", common.ErrClipboardUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", common.ErrClipboardUnavailable, err)
	}
	return nil
}

// Func adapts a function to the Copier interface.
type Func func(text string) error

// Copy calls f(text).
func (f Func) Copy(text string) error {
	return f(text)
}
