package engine

// ListenerID identifies a registered listener so it can be removed later.
type ListenerID int

// Event is a multicast event with no payload.
type Event struct {
	inner EventWithArg[struct{}]
}

// AddListener registers callback and returns its id. Nil callbacks are ignored.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.inner.AddListener(func(struct{}) { callback() })
}

func (e *Event) RemoveListener(id ListenerID) { e.inner.RemoveListener(id) }

func (e *Event) RemoveAllListeners() { e.inner.RemoveAllListeners() }

// Invoke calls every listener in registration order.
func (e *Event) Invoke() { e.inner.Invoke(struct{}{}) }

func (e *Event) GetListenerCount() int { return e.inner.GetListenerCount() }

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg is a multicast event carrying one value.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

// AddListener registers callback and returns its id. Ids start at 1; 0 means nothing was added.
func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener in registration order. Listeners added during
// Invoke are not called until the next one.
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
