package confetti

import "time"

// Queue is a single-threaded Scheduler. Callbacks run in the order they were
// scheduled; callbacks scheduled while a frame runs wait for the next frame.
type Queue struct {
	pending []FrameFunc
}

// ScheduleFrame queues fn for the next frame.
func (q *Queue) ScheduleFrame(fn FrameFunc) {
	q.pending = append(q.pending, fn)
}

// Pending reports whether any callback waits for a frame.
func (q *Queue) Pending() bool {
	return len(q.pending) > 0
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}

// RunFrame runs every callback queued before the call with timestamp now.
func (q *Queue) RunFrame(now time.Time) {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn(now)
	}
}
