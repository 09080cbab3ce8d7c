// Package value holds small, dependency-free value types shared across the
// window tree's domain services: configuration, error sentinels and the
// enums used by traversal and resize.
package value

import "errors"

// Sentinel errors for the window tree's signaled conditions. Operations
// return these directly or wrap them with fmt.Errorf("...: %w", err) when
// more context is useful; callers should compare with errors.Is.
var (
	// ErrArgumentTypeMismatch: operand is not a window / number / buffer / configuration.
	ErrArgumentTypeMismatch = errors.New("wintree: argument type mismatch")

	// ErrNoSuchSibling: change-height on an axis with no sibling to borrow from
	// (e.g. width on a single-column screen).
	ErrNoSuchSibling = errors.New("wintree: no sibling along that axis")

	// ErrMinSizeViolation: a split would leave a window below the configured minimum.
	ErrMinSizeViolation = errors.New("wintree: split size below minimum")

	// ErrSoleOrdinaryWindow: delete would leave no non-minibuffer leaf.
	ErrSoleOrdinaryWindow = errors.New("wintree: attempt to delete the sole ordinary window")

	// ErrMinibufferOperation: split of the minibuffer, or delete of the only
	// remaining ordinary window attempted via the minibuffer.
	ErrMinibufferOperation = errors.New("wintree: operation not allowed on the minibuffer window")

	// ErrDedicatedWindow: set-buffer on a dedicated window bound to a different buffer.
	ErrDedicatedWindow = errors.New("wintree: window is dedicated to its buffer")

	// ErrDeletedWindow: operand is a window that has already been deleted.
	ErrDeletedWindow = errors.New("wintree: window has been deleted")

	// ErrBeginningOfBuffer: scroll attempted past the beginning of the buffer.
	ErrBeginningOfBuffer = errors.New("wintree: beginning of buffer")

	// ErrEndOfBuffer: scroll attempted past the end of the buffer.
	ErrEndOfBuffer = errors.New("wintree: end of buffer")

	// ErrScreenSizeMismatch: restoring a configuration whose screen
	// dimensions differ from the live screen's.
	ErrScreenSizeMismatch = errors.New("wintree: screen size mismatch")

	// ErrUnsplittableScreen: split attempted on a screen marked no-split.
	ErrUnsplittableScreen = errors.New("wintree: screen does not allow splitting")
)
