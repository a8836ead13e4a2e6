package tape_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"

	"github.com/gostructural/tape"
)

func TestIndex_basics(t *testing.T) {
	buf := []byte(`{"a":1}`)
	offsets := []uint32{0, 1, 4, 5, 6}
	idx := tape.NewIndex(buf, offsets)

	if got, want := idx.Len(), len(offsets); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got := idx.Buf(); string(got) != string(buf) {
		t.Errorf("Buf() = %q, want %q", got, buf)
	}
}

func TestIterator_advanceAndOffsets(t *testing.T) {
	buf := []byte(`{"a":1}`)
	offsets := []uint32{0, 1, 4, 5, 6}
	idx := tape.NewIndex(buf, offsets)
	it := idx.Iterator(0)

	if !it.AtBeginning() {
		t.Error("AtBeginning() = false at construction, want true")
	}
	if it.AtEnd() {
		t.Error("AtEnd() = true at construction, want false")
	}

	if got := it.Advance(); got != '{' {
		t.Errorf("Advance() = %q, want '{'", got)
	}
	if it.AtBeginning() {
		t.Error("AtBeginning() = true after one Advance, want false")
	}
	if got := it.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}

	it.Advance() // '"' at offset 1
	if got := it.PeekLastByte(); got != '"' {
		t.Errorf("PeekLastByte() = %q, want '\"'", got)
	}
	if got, want := it.RemainingLen(), len(buf)-1; got != want {
		t.Errorf("RemainingLen() = %d, want %d", got, want)
	}
	if got, want := string(it.Bytes()), string(buf[1:]); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}

	it.Advance() // ':' at offset 4
	it.Advance() // '1' at offset 5
	it.Advance() // '}' at offset 6
	if !it.AtEnd() {
		t.Error("AtEnd() = false after consuming every structural, want true")
	}
	if got, want := it.NextIndex(), uint32(len(offsets)); got != want {
		t.Errorf("NextIndex() = %d, want %d", got, want)
	}
}

func TestIterator_advancePastEndPanics(t *testing.T) {
	idx := tape.NewIndex([]byte("{}"), []uint32{0, 1})
	it := idx.Iterator(0)
	it.Advance()
	it.Advance()
	mtest.MustPanic(t, func() {
		it.Advance()
	})
}

func TestIterator_resumeFromMidIndex(t *testing.T) {
	buf := []byte(`{"a":1} "b"`)
	offsets := []uint32{0, 1, 4, 5, 6, 8}
	idx := tape.NewIndex(buf, offsets)

	it := idx.Iterator(4)
	if !it.AtBeginning() {
		t.Error("AtBeginning() = false at a non-zero start, want true")
	}
	if got := it.Advance(); got != '}' {
		t.Errorf("Advance() from structural position 4 = %q, want '}'", got)
	}
}
