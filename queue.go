package window

// DefaultQueueCapacity is the most events an EventQueue holds before it
// starts dropping the oldest.
const DefaultQueueCapacity = 64

// EventQueue is a bounded FIFO of normalized events. When full, Push drops
// the oldest event so a stalled consumer sees the most recent input.
//
// EventQueue is not synchronized; backends guard it with their own lock.
type EventQueue struct {
	buf   []Event
	head  int
	size  int
	drops int
}

// NewEventQueue creates a queue holding at most capacity events.
// capacity <= 0 uses DefaultQueueCapacity.
func NewEventQueue(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &EventQueue{buf: make([]Event, capacity)}
}

// Push appends ev, evicting the oldest event when the queue is full.
func (q *EventQueue) Push(ev Event) {
	if q.size == len(q.buf) {
		inputLogger.Debug("event queue full, dropping oldest", "event", FormatEvent(q.buf[q.head]))
		q.buf[q.head] = nil
		q.head = (q.head + 1) % len(q.buf)
		q.size--
		q.drops++
	}
	q.buf[(q.head+q.size)%len(q.buf)] = ev
	q.size++
}

// Pop removes and returns the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if q.size == 0 {
		return nil, false
	}
	ev := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return ev, true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return q.size }

// Cap returns the queue bound.
func (q *EventQueue) Cap() int { return len(q.buf) }

// Dropped returns how many events were evicted because the queue was full.
func (q *EventQueue) Dropped() int { return q.drops }

// DeferredText holds at most one synthesized character to be delivered on
// the next poll. Backends without text composition use it to emit the
// Backspace (8) and Delete (127) text events one poll after the key event.
//
// It is a single slot: deferring while a character is still pending replaces
// it, and the earlier character is lost.
type DeferredText struct {
	r       rune
	dropped int
}

// Defer stores r for the next poll.
func (d *DeferredText) Defer(r rune) {
	if d.r != 0 {
		d.dropped++
		inputLogger.Debug("deferred text overwritten", "lost", d.r, "new", r)
	}
	d.r = r
}

// Take returns the pending character, if any, and empties the slot.
func (d *DeferredText) Take() (TextEntered, bool) {
	if d.r == 0 {
		return TextEntered{}, false
	}
	ev := TextEntered{Unicode: d.r}
	d.r = 0
	return ev, true
}

// Pending reports whether a character is waiting.
func (d *DeferredText) Pending() bool { return d.r != 0 }

// Dropped returns how many deferred characters were overwritten.
func (d *DeferredText) Dropped() int { return d.dropped }
