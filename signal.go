package aspen

// ListenerID identifies a single Signal registration, for targeted removal.
// Go functions are not comparable, so removal is by ID (or in bulk by owner)
// rather than by the callback value itself.
type ListenerID uint32

type listener[T any] struct {
	id    ListenerID
	owner any
	fn    func(T)
}

// Signal is a minimal synchronous observer list. Listeners are invoked in
// registration order. Emission snapshots the listener list first, so a
// listener may add or remove listeners (including itself) without corrupting
// the iteration; such changes take effect from the next emission.
//
// A listener that panics aborts the remaining listeners for that emission and
// unwinds to the caller. Signal never recovers on the listener's behalf.
//
// The zero value is ready to use.
type Signal[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

// NewSignal creates an empty signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Add registers fn bound to an owning context. The owner is a key for later
// bulk removal (see RemoveOwner); it may be nil for listeners nobody tears
// down. Returns an ID usable with Remove.
func (s *Signal[T]) Add(fn func(T), owner any) ListenerID {
	s.nextID++
	s.listeners = append(s.listeners, listener[T]{id: s.nextID, owner: owner, fn: fn})
	return s.nextID
}

// Remove unregisters the listener with the given ID. No-op if already gone.
func (s *Signal[T]) Remove(id ListenerID) {
	for i := range s.listeners {
		if s.listeners[i].id == id {
			copy(s.listeners[i:], s.listeners[i+1:])
			s.listeners[len(s.listeners)-1] = listener[T]{}
			s.listeners = s.listeners[:len(s.listeners)-1]
			return
		}
	}
}

// RemoveOwner unregisters every listener bound to owner.
func (s *Signal[T]) RemoveOwner(owner any) {
	kept := s.listeners[:0]
	for _, l := range s.listeners {
		if l.owner != owner {
			kept = append(kept, l)
		}
	}
	// Zero the tail so dropped callbacks don't linger in the backing array.
	for i := len(kept); i < len(s.listeners); i++ {
		s.listeners[i] = listener[T]{}
	}
	s.listeners = kept
}

// Emit invokes all currently-registered listeners synchronously with v.
func (s *Signal[T]) Emit(v T) {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := append([]listener[T](nil), s.listeners...)
	for _, l := range snapshot {
		l.fn(v)
	}
}

// Clear removes all listeners.
func (s *Signal[T]) Clear() {
	for i := range s.listeners {
		s.listeners[i] = listener[T]{}
	}
	s.listeners = s.listeners[:0]
}

// Len returns the number of registered listeners.
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}
