package tape_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gostructural/tape"
)

// traceVisitor renders every callback it receives into a line of text: one
// short tag per event, with the triggering lexeme for events that carry
// one. It uses a Depth to answer EndContainer, and optionally counts
// elements when built with counting=true.
type traceVisitor struct {
	buf      bytes.Buffer
	depth    *tape.Depth
	counting bool
	counts   []int
}

func newTraceVisitor() *traceVisitor {
	return &traceVisitor{depth: tape.NewDepth()}
}

func newCountingTraceVisitor() *traceVisitor {
	return &traceVisitor{depth: tape.NewDepth(), counting: true}
}

func (t *traceVisitor) pr(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(&t.buf, msg, args...)
}

func (t *traceVisitor) output() string { return t.buf.String() }

// lexeme scans forward from it's current offset to find the extent of the
// value lexeme starting there (a string, number, or named literal), the way
// a visitor materializing primitives itself would bound its own read with
// RemainingLen/Bytes.
func lexeme(it *tape.Iterator) string {
	b := it.Bytes()
	switch b[0] {
	case '"':
		i := 1
		for i < len(b) {
			if b[i] == '\\' {
				i += 2
				continue
			}
			if b[i] == '"' {
				i++
				break
			}
			i++
		}
		return string(b[:i])
	case 't':
		return string(b[:4])
	case 'f':
		return string(b[:5])
	case 'n':
		return string(b[:4])
	default: // number
		i := 0
		for i < len(b) && strings.IndexByte("-+.eE0123456789", b[i]) >= 0 {
			i++
		}
		return string(b[:i])
	}
}

func (t *traceVisitor) StartDocument(it *tape.Iterator) error { return nil }

func (t *traceVisitor) RootPrimitive(it *tape.Iterator) error {
	t.pr("Value <%s>", lexeme(it))
	return nil
}

func (t *traceVisitor) StartObject(it *tape.Iterator) error {
	t.pr("BeginObject")
	return t.depth.Push(false)
}

func (t *traceVisitor) EndObject(it *tape.Iterator) error {
	t.pr("EndObject")
	return nil
}

func (t *traceVisitor) EmptyObject(it *tape.Iterator) error {
	t.pr("BeginObject")
	t.pr("EndObject")
	return nil
}

func (t *traceVisitor) Key(it *tape.Iterator) error {
	t.pr("Key <%s>", lexeme(it))
	return nil
}

func (t *traceVisitor) NextField(it *tape.Iterator) error {
	t.pr("NextField")
	return nil
}

func (t *traceVisitor) StartArray(it *tape.Iterator) error {
	t.pr("BeginArray")
	return t.depth.Push(true)
}

func (t *traceVisitor) EndArray(it *tape.Iterator) error {
	t.pr("EndArray")
	return nil
}

func (t *traceVisitor) EmptyArray(it *tape.Iterator) error {
	t.pr("BeginArray")
	t.pr("EndArray")
	return nil
}

func (t *traceVisitor) NextArrayElement(it *tape.Iterator) error {
	t.pr("NextElement")
	return nil
}

func (t *traceVisitor) Primitive(it *tape.Iterator) error {
	t.pr("Value <%s>", lexeme(it))
	return nil
}

func (t *traceVisitor) EndContainer(it *tape.Iterator) tape.ContainerMarker {
	return t.depth.Pop()
}

func (t *traceVisitor) EndDocument(it *tape.Iterator) error {
	t.pr(".")
	return nil
}

func (t *traceVisitor) IncrementCount(it *tape.Iterator) error {
	if !t.counting {
		return nil
	}
	n := t.depth.Len()
	for len(t.counts) <= n {
		t.counts = append(t.counts, 0)
	}
	t.counts[n]++
	return nil
}
