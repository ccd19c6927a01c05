// Package subtitle coordinates the transient subtitle of a title view: a FIFO
// message queue, the appear/disappear transition state machine, and the
// coordinator that ties them to a presentation surface.
package subtitle

import "navtitle/models"

// Queue holds pending messages and whether a display cycle is in progress.
// It is not safe for concurrent use; the Coordinator serializes access.
type Queue struct {
	pending    []*models.Message
	displaying bool
}

// NewQueue creates an empty, idle queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends m to the tail.
func (q *Queue) Enqueue(m *models.Message) {
	q.pending = append(q.pending, m)
}

// ResetAndEnqueue drops every pending message, forces the queue idle and
// appends m. It returns the number of messages dropped.
func (q *Queue) ResetAndEnqueue(m *models.Message) int {
	dropped := len(q.pending)
	clear(q.pending)
	q.pending = q.pending[:0]
	q.displaying = false
	q.pending = append(q.pending, m)
	return dropped
}

// DequeueNext removes and returns the head when the queue is idle and
// non-empty, marking it displaying. Otherwise it returns nil.
func (q *Queue) DequeueNext() *models.Message {
	if q.displaying || len(q.pending) == 0 {
		return nil
	}
	m := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	q.displaying = true
	return m
}

// MarkIdle ends the current display cycle. The caller must attempt
// DequeueNext afterwards.
func (q *Queue) MarkIdle() {
	q.displaying = false
}

// IsDisplaying reports whether a display cycle is in progress.
func (q *Queue) IsDisplaying() bool {
	return q.displaying
}

// Len returns the number of pending messages.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Pending returns a copy of the pending messages in display order.
func (q *Queue) Pending() []*models.Message {
	out := make([]*models.Message, len(q.pending))
	copy(out, q.pending)
	return out
}
