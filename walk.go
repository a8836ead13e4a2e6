package tape

import "log/slog"

// A Walker drives the JSON grammar over a structural Index, invoking a
// Visitor at every semantic boundary. A zero Walker is ready to use;
// SetLogger attaches optional structured logging.
type Walker struct {
	logger *slog.Logger
}

// NewWalker constructs a ready-to-use Walker with no logging.
func NewWalker() *Walker { return &Walker{} }

// SetLogger attaches a structured logger. Walk itself writes one Debug
// record per grammar violation, carrying "sign" (empty), "type" ("ERROR"),
// "detail" (the violation's Reason), and "offset" attributes; it does not
// log the other visitor-boundary crossings. A Visitor can add such records
// through the Iterator's LogValue, LogStartValue, and LogEndValue methods,
// which write to the same logger. Passing nil disables logging; this is also the
// zero-value default, and the check is a plain nil comparison on every call
// site, so there is no cost when logging is off.
func (w *Walker) SetLogger(logger *slog.Logger) { w.logger = logger }

// walkState names a position in the grammar's transition graph. The Walker
// realizes the grammar as a flat loop over these states rather than as
// mutually recursive descent functions, because recursion would make host
// call-stack depth track JSON nesting depth. Depth tracking is delegated
// entirely to the Visitor via ContainerMarker.
type walkState int

const (
	stateObjectFirstField walkState = iota
	stateObjectField
	stateObjectContinue
	stateArrayFirstValue
	stateArrayValue
	stateArrayContinue
	stateScopeEnd
	stateDocumentEnd
)

// Walk drives v over idx starting at structural position start, and
// reports the structural position immediately after the walk on success —
// the value a subsequent streaming call should pass as its own start.
//
// streaming selects strict mode (false: the walk must consume the entire
// index, or a TapeError reports trailing content) or streaming mode (true:
// the walk stops after one top-level value, leaving the rest of the index
// for the caller's next call).
//
// Walk returns ErrEmptyIndex if idx has no structurals at all, a
// *TapeError for any grammar violation, or a Visitor error verbatim. After
// any error, the returned position must not be used to resume; the
// cursor's position on error is implementation-defined.
//
// idx is assumed to come from a structural scan that never opens a
// container without eventually recording its matching close (the balance
// check belongs to whatever produced the index, not here) — the
// object/array continuation states check for exhaustion and report the
// same TapeError a stray byte there would produce, but a container opened
// as the very last structural in the index, with nothing after it at all,
// is outside that contract and
// is not defended against beyond the explicit root-array check below.
func (w *Walker) Walk(idx *Index, start uint32, streaming bool, v Visitor) (next uint32, err error) {
	it := idx.Iterator(start)
	it.logger = w.logger

	if it.AtEnd() {
		return it.NextIndex(), ErrEmptyIndex
	}
	if err := v.StartDocument(it); err != nil {
		return it.NextIndex(), err
	}

	counter, countable := v.(ElementCounter)

	// Read the first value. "value" tracks the byte most recently fetched
	// via Advance when a state needs to dispatch on it without re-reading
	// the iterator; it is always it.PeekLastByte() at the moment it matters.
	value := it.Advance()

	var state walkState
	switch value {
	case '{':
		value = it.Advance()
		switch value {
		case '"':
			state = stateObjectFirstField
		case '}':
			if err := v.EmptyObject(it); err != nil {
				return it.NextIndex(), err
			}
			state = stateDocumentEnd
		default:
			it.LogError(string(ReasonNoKeyInFirstField))
			return it.NextIndex(), tapeError(it, ReasonNoKeyInFirstField)
		}
	case '[':
		if !streaming && idx.lastStructuralByte() != ']' {
			it.LogError(string(ReasonRootArrayNotClosed))
			return it.NextIndex(), tapeError(it, ReasonRootArrayNotClosed)
		}
		value = it.Advance()
		switch value {
		case ']':
			if err := v.EmptyArray(it); err != nil {
				return it.NextIndex(), err
			}
			state = stateDocumentEnd
		default:
			state = stateArrayFirstValue
		}
	default:
		if err := v.RootPrimitive(it); err != nil {
			return it.NextIndex(), err
		}
		state = stateDocumentEnd
	}

	for {
		switch state {

		case stateObjectFirstField:
			if err := v.StartObject(it); err != nil {
				return it.NextIndex(), err
			}
			if countable {
				if err := counter.IncrementCount(it); err != nil {
					return it.NextIndex(), err
				}
			}
			state = stateObjectField

		case stateObjectField:
			if err := v.Key(it); err != nil {
				return it.NextIndex(), err
			}
			if it.AtEnd() || it.Advance() != ':' {
				it.LogError(string(ReasonMissingColon))
				return it.NextIndex(), tapeError(it, ReasonMissingColon)
			}
			value = it.Advance()
			switch value {
			case '{':
				value = it.Advance()
				switch value {
				case '"':
					state = stateObjectFirstField
				case '}':
					if err := v.EmptyObject(it); err != nil {
						return it.NextIndex(), err
					}
					state = stateObjectContinue
				default:
					it.LogError(string(ReasonNoKeyInFirstField))
					return it.NextIndex(), tapeError(it, ReasonNoKeyInFirstField)
				}
			case '[':
				value = it.Advance()
				switch value {
				case ']':
					if err := v.EmptyArray(it); err != nil {
						return it.NextIndex(), err
					}
					state = stateObjectContinue
				default:
					state = stateArrayFirstValue
				}
			default:
				if err := v.Primitive(it); err != nil {
					return it.NextIndex(), err
				}
				state = stateObjectContinue
			}

		case stateObjectContinue:
			if it.AtEnd() {
				it.LogError(string(ReasonNoCommaInObject))
				return it.NextIndex(), tapeError(it, ReasonNoCommaInObject)
			}
			switch it.Advance() {
			case ',':
				if err := v.NextField(it); err != nil {
					return it.NextIndex(), err
				}
				if countable {
					if err := counter.IncrementCount(it); err != nil {
						return it.NextIndex(), err
					}
				}
				value = it.Advance()
				if value != '"' {
					it.LogError(string(ReasonKeyMissingAtField))
					return it.NextIndex(), tapeError(it, ReasonKeyMissingAtField)
				}
				state = stateObjectField
			case '}':
				if err := v.EndObject(it); err != nil {
					return it.NextIndex(), err
				}
				state = stateScopeEnd
			default:
				it.LogError(string(ReasonNoCommaInObject))
				return it.NextIndex(), tapeError(it, ReasonNoCommaInObject)
			}

		case stateScopeEnd:
			marker := v.EndContainer(it)
			if !marker.InContainer() {
				state = stateDocumentEnd
			} else if marker.InArray() {
				state = stateArrayContinue
			} else {
				state = stateObjectContinue
			}

		case stateArrayFirstValue:
			if err := v.StartArray(it); err != nil {
				return it.NextIndex(), err
			}
			if countable {
				if err := counter.IncrementCount(it); err != nil {
					return it.NextIndex(), err
				}
			}
			state = stateArrayValue

		case stateArrayValue:
			switch value {
			case '{':
				value = it.Advance()
				switch value {
				case '"':
					state = stateObjectFirstField
				case '}':
					if err := v.EmptyObject(it); err != nil {
						return it.NextIndex(), err
					}
					state = stateArrayContinue
				default:
					it.LogError(string(ReasonNoKeyInFirstField))
					return it.NextIndex(), tapeError(it, ReasonNoKeyInFirstField)
				}
			case '[':
				value = it.Advance()
				switch value {
				case ']':
					if err := v.EmptyArray(it); err != nil {
						return it.NextIndex(), err
					}
					state = stateArrayContinue
				default:
					state = stateArrayFirstValue
				}
			default:
				if err := v.Primitive(it); err != nil {
					return it.NextIndex(), err
				}
				state = stateArrayContinue
			}

		case stateArrayContinue:
			if it.AtEnd() {
				it.LogError(string(ReasonMissingCommaArray))
				return it.NextIndex(), tapeError(it, ReasonMissingCommaArray)
			}
			switch it.Advance() {
			case ',':
				if err := v.NextArrayElement(it); err != nil {
					return it.NextIndex(), err
				}
				if countable {
					if err := counter.IncrementCount(it); err != nil {
						return it.NextIndex(), err
					}
				}
				value = it.Advance()
				state = stateArrayValue
			case ']':
				if err := v.EndArray(it); err != nil {
					return it.NextIndex(), err
				}
				state = stateScopeEnd
			default:
				it.LogError(string(ReasonMissingCommaArray))
				return it.NextIndex(), tapeError(it, ReasonMissingCommaArray)
			}

		case stateDocumentEnd:
			if err := v.EndDocument(it); err != nil {
				return it.NextIndex(), err
			}
			if !streaming && it.NextIndex() != uint32(idx.Len()) {
				it.LogError(string(ReasonTrailingContent))
				return it.NextIndex(), tapeError(it, ReasonTrailingContent)
			}
			return it.NextIndex(), nil
		}
	}
}
