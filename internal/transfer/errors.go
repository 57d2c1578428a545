package transfer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOperation is reported when a returned item had no usable
	// recorded slot and was appended to the end of the source instead.
	ErrInvalidOperation = errors.New("invalid transfer operation")

	// ErrUnknownItem is returned when an id is not visible in the list it
	// was addressed to.
	ErrUnknownItem = errors.New("unknown item")

	// ErrUnknownPair is returned when a registry lookup misses.
	ErrUnknownPair = errors.New("unknown list pair")

	// ErrDuplicateItem is returned when two items share an id within one
	// source list, or two pairs share a name within one registry.
	ErrDuplicateItem = errors.New("duplicate item")
)

// InvalidOperationError lists the items that were recovered by appending
// them to the source. The pair is left consistent.
type InvalidOperationError struct {
	Pair string
	IDs  []string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("%s: returned without a recorded position: %s", e.Pair, strings.Join(e.IDs, ", "))
}

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }
