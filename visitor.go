package tape

// A Visitor receives semantic events from a Walker as it drives the JSON
// grammar over a structural index. If a method returns an error, the walk
// stops immediately and that error is returned from Walk verbatim — the
// engine never wraps or inspects visitor errors.
//
// Every method is passed the Iterator driving the walk. A visitor that
// materializes primitives itself (number parsing, string unescaping) uses
// the Iterator's RemainingLen/Bytes to bound those reads; the Walker never
// does this on the visitor's behalf, since primitive materialization is
// explicitly outside the walk engine's job.
//
// The Iterator passed to a method is only valid for the duration of that
// call; a visitor that needs to retain the byte offset or text beyond the
// call must copy it.
type Visitor interface {
	// StartDocument is called once, at the first structural of the walk.
	StartDocument(it *Iterator) error

	// RootPrimitive is called when the top-level value is not an object or
	// array. it.Offset() names the value's opening byte.
	RootPrimitive(it *Iterator) error

	// StartObject is called when entering a non-empty object, after the
	// engine has advanced past the opening brace and confirmed a key
	// follows. EndObject is called when leaving it, at the closing brace.
	StartObject(it *Iterator) error
	EndObject(it *Iterator) error

	// EmptyObject is called when a "{" is immediately followed by "}".
	// Neither StartObject nor EndObject is called for an empty object.
	EmptyObject(it *Iterator) error

	// Key is called when the cursor has advanced to an object key's opening
	// quote. it.Offset() names that quote.
	Key(it *Iterator) error

	// NextField is called at the "," between two object members.
	NextField(it *Iterator) error

	// StartArray and EndArray bracket a non-empty array.
	StartArray(it *Iterator) error
	EndArray(it *Iterator) error

	// EmptyArray is called when a "[" is immediately followed by "]".
	// Neither StartArray nor EndArray is called for an empty array.
	EmptyArray(it *Iterator) error

	// NextArrayElement is called at the "," between two array elements.
	NextArrayElement(it *Iterator) error

	// Primitive is called for a non-composite value inside a container.
	// it.Offset() names the value's opening byte.
	Primitive(it *Iterator) error

	// EndContainer is called immediately after EndObject or EndArray, when
	// a non-empty container is closed; it is not called for an empty
	// container (EmptyObject/EmptyArray). It reports whether the walk is still inside an enclosing container and,
	// if so, what kind. The Walk Engine has no depth counter of its own; it
	// relies entirely on this return value to decide whether to resume
	// object or array continuation, or to finish the document.
	EndContainer(it *Iterator) ContainerMarker

	// EndDocument is called once, after the top-level value has been walked
	// without a grammar violation. In strict mode the trailing-content check
	// runs after it, so Walk can still return a TapeError with
	// ReasonTrailingContent once EndDocument has been called. It is never
	// called after any other grammar violation.
	EndDocument(it *Iterator) error
}

// ElementCounter is an optional capability a Visitor may implement to be
// notified once per container element, including the first. The Walker
// checks for this interface with a type assertion and calls it if present;
// a Visitor that doesn't need per-element counting simply doesn't implement
// it.
//
// It fires right after StartObject/StartArray for the first element of a
// non-empty container, and again for every subsequent element at its
// preceding ",". It never fires for an empty container, since no element
// is ever seen.
type ElementCounter interface {
	IncrementCount(it *Iterator) error
}

// A ContainerMarker answers the two questions a Walker asks after closing a
// container: is there still an enclosing container, and if so, is it an
// array? Visitors typically produce this from a small stack of booleans —
// see Depth.
type ContainerMarker struct {
	inContainer bool
	inArray     bool
}

// InContainer reports whether there is still an enclosing container after
// the close that produced this marker.
func (c ContainerMarker) InContainer() bool { return c.inContainer }

// InArray reports whether the enclosing container reported by InContainer
// is an array (as opposed to an object). Meaningless if InContainer is
// false.
func (c ContainerMarker) InArray() bool { return c.inArray }

// RootMarker is the ContainerMarker a Visitor should return from
// EndContainer when closing a container that has no parent, i.e. the
// top-level value itself was that container.
func RootMarker() ContainerMarker { return ContainerMarker{} }

// ObjectMarker reports that the enclosing container is an object.
func ObjectMarker() ContainerMarker { return ContainerMarker{inContainer: true} }

// ArrayMarker reports that the enclosing container is an array.
func ArrayMarker() ContainerMarker { return ContainerMarker{inContainer: true, inArray: true} }
