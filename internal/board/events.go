package board

import "slices"

type EventKind string

const (
	EventAdded     EventKind = "added"
	EventDeleted   EventKind = "deleted"
	EventReordered EventKind = "reordered"
	EventCleared   EventKind = "cleared"
	EventModal     EventKind = "modal"
	EventView      EventKind = "view"
	EventFilter    EventKind = "filter"
	EventReloaded  EventKind = "reloaded"
)

// Event is delivered to subscribers after the board state changed (and, for list changes,
// after the snapshot was written).
type Event struct {
	Kind      EventKind
	EmotionID string
	From, To  int
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn and returns a function that removes it. Listeners run synchronously,
// in registration order, on the goroutine that mutated the board.
func (b *Board) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.nextSubID++
	id := b.nextSubID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() {
		b.listeners = slices.DeleteFunc(b.listeners, func(l listener) bool { return l.id == id })
	}
}

func (b *Board) notify(ev Event) {
	// Snapshot so listeners may unsubscribe (or subscribe) while being called.
	ls := slices.Clone(b.listeners)
	for _, l := range ls {
		l.fn(ev)
	}
}
