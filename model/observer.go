package model

// ChangeEvent describes a committed channel change
type ChangeEvent struct {
	Channel Channel
	Old     int
	New     int
}

// Observer receives change notifications from a Color
// Called synchronously on the goroutine that performed the write
type Observer interface {
	Notify(ev ChangeEvent)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(ev ChangeEvent)

// Notify calls f(ev)
func (f ObserverFunc) Notify(ev ChangeEvent) {
	f(ev)
}

// Subscription is the registry handle returned by Subscribe
// The zero value is an inactive subscription
type Subscription struct {
	id    uint64
	color *Color
}

// Active reports whether the subscription is still registered
func (s Subscription) Active() bool {
	if s.color == nil {
		return false
	}
	_, ok := s.color.index(s.id)
	return ok
}

// Cancel removes the observer from its model, idempotent
func (s Subscription) Cancel() {
	if s.color != nil {
		s.color.Unsubscribe(s)
	}
}

type registration struct {
	id       uint64
	observer Observer
}
