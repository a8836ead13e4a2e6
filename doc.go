// Package tape implements the structural walk engine of a two-stage JSON
// parser: given a byte buffer and a precomputed index of the offsets of
// every JSON-significant byte within it (produced by some Stage 1
// classifier, out of scope here), it drives a Visitor through the document
// to validate its grammar and emit semantic events.
//
// # Walking
//
// An Index bundles a buffer with its structural offsets. Construct a
// Walker and call Walk to drive a Visitor over it:
//
//	idx := tape.NewIndex(buf, offsets)
//	w := tape.NewWalker()
//	if _, err := w.Walk(idx, 0, false, visitor); err != nil {
//	    log.Fatalf("walk failed: %v", err)
//	}
//
// Walk returns tape.ErrEmptyIndex if the index has no structurals, a
// *tape.TapeError for a grammar violation, or whatever error the Visitor
// itself returned. In case of error, no further Visitor methods are
// called.
//
// # Streaming
//
// Passing streaming=true to Walk consumes exactly one top-level value
// instead of requiring the whole index to be consumed; the returned
// position is the start for a subsequent call over the same Index:
//
//	next := uint32(0)
//	for next < uint32(idx.Len()) {
//	    n, err := w.Walk(idx, next, true, visitor)
//	    if err != nil {
//	        log.Fatalf("walk failed: %v", err)
//	    }
//	    next = n
//	}
//
// # Visitors
//
// The Visitor interface accepts walk events. Its methods correspond to the
// syntax of JSON values:
//
//	JSON type | Methods                    | Description
//	--------- | -------------------------- | -----------------------------
//	object    | StartObject, EndObject     | { ... }
//	array     | StartArray, EndArray       | [ ... ]
//	empty obj | EmptyObject                | {}
//	empty arr | EmptyArray                 | []
//	member    | Key, NextField             | "key": value
//	element   | NextArrayElement           | , between array values
//	value     | Primitive, RootPrimitive   | true, false, null, number, string
//	--        | StartDocument, EndDocument | bracket the whole walk
//	--        | EndContainer               | reports the enclosing scope
//
// Every method receives the *Iterator driving the walk, valid only for the
// duration of that call. A Visitor that needs to retain a byte offset or
// text beyond the call must copy it first.
package tape
