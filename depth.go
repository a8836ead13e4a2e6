package tape

// Depth is a ready-made container-depth tracker a Visitor implementation
// can embed to answer EndContainer without hand-rolling a stack. It records
// only the kind (object or array) of each currently open container, one bool
// per level.
//
// A Depth is not a Visitor itself; it is a helper a Visitor calls from its
// own StartObject/StartArray/EndContainer methods.
type Depth struct {
	kinds []bool // kinds[i] is true if level i is an array
	max   int    // 0 means unlimited
}

// NewDepth constructs a Depth with no maximum nesting limit.
func NewDepth() *Depth { return &Depth{} }

// NewDepthLimited constructs a Depth that reports ErrDepthLimit from Push
// once more than max containers are open at once. A max of 0 means
// unlimited, matching NewDepth.
func NewDepthLimited(max int) *Depth { return &Depth{max: max} }

// Push records that a new container of the given kind has been opened.
// It reports ErrDepthLimit if doing so would exceed the configured maximum.
func (d *Depth) Push(isArray bool) error {
	if d.max > 0 && len(d.kinds) >= d.max {
		return ErrDepthLimit
	}
	d.kinds = append(d.kinds, isArray)
	return nil
}

// Pop removes the innermost open container and returns a ContainerMarker
// describing what, if anything, now encloses the walk. Pop panics if called
// with no container open — that would indicate a Walker/Visitor pairing bug,
// since EndContainer is only ever called once per container StartObject or
// StartArray opened.
func (d *Depth) Pop() ContainerMarker {
	n := len(d.kinds) - 1
	if n < 0 {
		panic("tape: Depth.Pop called with no open container")
	}
	d.kinds = d.kinds[:n]
	if n == 0 {
		return RootMarker()
	}
	if d.kinds[n-1] {
		return ArrayMarker()
	}
	return ObjectMarker()
}

// Len reports the number of currently open containers.
func (d *Depth) Len() int { return len(d.kinds) }
