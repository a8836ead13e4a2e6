package tape

import "log/slog"

// An Index bundles a byte buffer together with the ordered structural
// offsets that name every JSON-significant byte within it: the opening
// quote of each key or string value, the first byte of each number,
// boolean, or null literal, and each of "{ } [ ] , :".
//
// An Index does not copy buf or offsets; it borrows both for as long as the
// caller keeps using it. Offsets must be strictly increasing and each must
// be less than len(buf).
type Index struct {
	buf     []byte
	offsets []uint32
}

// NewIndex constructs an Index over buf using the given structural offsets.
// Both slices are borrowed, not copied.
func NewIndex(buf []byte, offsets []uint32) *Index {
	return &Index{buf: buf, offsets: offsets}
}

// Len reports the number of structural offsets in the index.
func (x *Index) Len() int { return len(x.offsets) }

// Buf returns the byte buffer the index points into.
func (x *Index) Buf() []byte { return x.buf }

// Iterator returns a cursor over x starting at structural position start.
// Start is a position within the structural offset sequence, not a byte
// offset into the buffer; 0 begins at the first structural.
func (x *Index) Iterator(start uint32) *Iterator {
	return &Iterator{idx: x, cursor: start, start: start}
}

// An Iterator is a single cursor over the structural offsets of an Index.
// It owns no data beyond the cursor position and the offset of the most
// recently advanced structural.
//
// The same Iterator value is threaded through every Visitor callback during
// a walk, so a visitor performing its own primitive materialization (number
// parsing, string unescaping) can bound its reads with RemainingLen or
// Bytes without a second cursor type.
type Iterator struct {
	idx    *Index
	cursor uint32 // position of the NEXT structural to advance to
	start  uint32 // cursor value at construction, for AtBeginning
	last   uint32 // byte offset of the most recently advanced structural
	logger *slog.Logger
}

// Advance returns the byte at the structural the cursor currently points
// at, then moves the cursor forward by one. The byte's buffer offset
// becomes the new "last advanced" offset, retrievable via Offset.
//
// Advance's precondition is !AtEnd(); calling it at the end of the index is
// a programming error and panics, since there is no well-defined byte to
// return.
func (it *Iterator) Advance() byte {
	if it.AtEnd() {
		panic("tape: Advance called at end of structural index")
	}
	off := it.idx.offsets[it.cursor]
	it.cursor++
	it.last = off
	return it.idx.buf[off]
}

// PeekLastByte returns the byte at the most recently advanced structural,
// without moving the cursor. It is used to re-examine the byte that
// disambiguated a grammar transition.
func (it *Iterator) PeekLastByte() byte { return it.idx.buf[it.last] }

// Offset returns the buffer byte offset of the most recently advanced
// structural.
func (it *Iterator) Offset() uint32 { return it.last }

// RemainingLen reports the number of bytes from the most recently advanced
// offset to the end of the buffer. Helpers that materialize primitives
// (number parsing, string unescaping) use this to bound their reads.
func (it *Iterator) RemainingLen() int { return len(it.idx.buf) - int(it.last) }

// Bytes returns the buffer slice backing RemainingLen: the bytes from the
// most recently advanced offset to the end of the buffer.
func (it *Iterator) Bytes() []byte { return it.idx.buf[it.last:] }

// AtEnd reports whether the cursor has consumed every structural in the
// index.
func (it *Iterator) AtEnd() bool { return it.cursor == uint32(len(it.idx.offsets)) }

// AtBeginning reports whether the cursor has not yet advanced past its
// starting position.
func (it *Iterator) AtBeginning() bool { return it.cursor == it.start }

// NextIndex returns the cursor's current structural position, suitable for
// passing as the start of a subsequent streaming walk over the same Index.
func (it *Iterator) NextIndex() uint32 { return it.cursor }

// LogValue emits a structured log line for an atomic event (a key, a
// primitive, an empty container) at the most recently advanced offset, if a
// logger has been configured on the Walker driving this Iterator. It is a
// no-op otherwise, with no allocation beyond the no-op check.
func (it *Iterator) LogValue(typ string) { it.logEvent("", typ, "") }

// LogStartValue emits a structured log line for entering a container.
func (it *Iterator) LogStartValue(typ string) { it.logEvent("+", typ, "") }

// LogEndValue emits a structured log line for leaving a container.
func (it *Iterator) LogEndValue(typ string) { it.logEvent("-", typ, "") }

// LogError emits a structured log line for a grammar violation.
func (it *Iterator) LogError(detail string) { it.logEvent("", "ERROR", detail) }

func (it *Iterator) logEvent(sign, typ, detail string) {
	if it.logger == nil {
		return
	}
	it.logger.Debug("structural event",
		slog.String("sign", sign),
		slog.String("type", typ),
		slog.String("detail", detail),
		slog.Uint64("offset", uint64(it.last)),
	)
}

// lastStructuralByte returns the byte named by the final offset in the
// index, used by the root-array safety check in Walk. It does not move the
// cursor.
func (x *Index) lastStructuralByte() byte {
	return x.buf[x.offsets[len(x.offsets)-1]]
}
