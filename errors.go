package tape

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrEmptyIndex is returned by Walk when the structural index has no
// structurals at all. It is distinguished from a successful walk so a
// caller can tell "no document yet" apart from a valid empty object or
// array, which instead succeeds and reports EmptyObject/EmptyArray.
var ErrEmptyIndex = errors.New("tape: empty structural index")

// ErrDepthLimit is returned by Depth.Push when a Visitor using Depth for
// its own container bookkeeping has configured a maximum nesting depth and
// a new container would exceed it. Walk itself never enforces a depth
// limit; that is left to the Visitor.
var ErrDepthLimit = errors.New("tape: maximum nesting depth exceeded")

// Reason is a static, human-readable label identifying which grammar
// production a TapeError violated. The fixed set below is exhaustive: the
// Walk Engine never reports a grammar violation outside this list.
type Reason string

// The fixed set of grammar-violation reasons the Walk Engine can report.
const (
	ReasonNoKeyInFirstField  Reason = "no key in first object field"
	ReasonMissingColon       Reason = "missing colon after key in object"
	ReasonKeyMissingAtField  Reason = "key string missing at beginning of field in object"
	ReasonNoCommaInObject    Reason = "no comma between object fields"
	ReasonMissingCommaArray  Reason = "missing comma between array values"
	ReasonRootArrayNotClosed Reason = "root array not closed"
	ReasonTrailingContent    Reason = "more than one JSON value at the root of the document, or extra characters at the end of the JSON"
)

var knownReasons = []Reason{
	ReasonNoKeyInFirstField,
	ReasonMissingColon,
	ReasonKeyMissingAtField,
	ReasonNoCommaInObject,
	ReasonMissingCommaArray,
	ReasonRootArrayNotClosed,
	ReasonTrailingContent,
}

// IsKnownReason reports whether r is one of the fixed grammar-violation
// reasons the engine can produce. It exists mainly for tests that want to
// assert a TapeError carries a reason from the documented set, rather than
// an ad-hoc string.
func IsKnownReason(r Reason) bool { return slices.Contains(knownReasons, r) }

// TapeError reports a JSON grammar violation discovered while walking a
// structural index. Grammar violations are terminal: the engine returns a
// TapeError immediately and invokes no further Visitor methods.
//
// Offset is the buffer byte offset of the structural that triggered the
// error. Its exact position is implementation-defined and must not be used
// to resume a walk.
type TapeError struct {
	Reason Reason
	Offset uint32
}

func (e *TapeError) Error() string {
	return fmt.Sprintf("tape: %s (at offset %d)", e.Reason, e.Offset)
}

// Is reports whether target is a *TapeError with the same Reason, so
// callers can write errors.Is(err, &TapeError{Reason: ReasonMissingColon}).
// A target with an empty Reason matches any *TapeError.
func (e *TapeError) Is(target error) bool {
	t, ok := target.(*TapeError)
	if !ok {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

func tapeError(it *Iterator, reason Reason) *TapeError {
	return &TapeError{Reason: reason, Offset: it.Offset()}
}
