package interpreter

// Scope is the single activation record visible to evaluation and
// execution. There is never more than one live frame: a call copies
// the frame aside, mutates the live one, and reinstates the copy on
// return (value semantics, not a stack of frames).
type Scope struct {
	vars map[string]Value
}

// NewScope creates an empty scope frame.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]Value)}
}

// Get reads a variable from the live frame.
func (s *Scope) Get(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set creates or overwrites a variable in the live frame.
func (s *Scope) Set(name string, v Value) {
	s.vars[name] = v
}

// Binding is one parameter-to-argument pair for a call.
type Binding struct {
	Name  string
	Value Value
}

// Snapshot holds the caller's frame across a call boundary.
type Snapshot struct {
	vars map[string]Value
}

// EnterCall copies the live frame verbatim into a snapshot, then binds
// the parameters over the live frame. The returned handle must be
// passed to ExitCall on every exit path of the callee.
func (s *Scope) EnterCall(bindings []Binding) Snapshot {
	saved := make(map[string]Value, len(s.vars))
	for name, v := range s.vars {
		saved[name] = v
	}

	for _, b := range bindings {
		s.vars[b.Name] = b.Value
	}

	return Snapshot{vars: saved}
}

// ExitCall reinstates the frame captured at entry, discarding every
// mutation made during the call. Only the return value survives the
// call boundary.
func (s *Scope) ExitCall(snap Snapshot) {
	s.vars = snap.vars
}
