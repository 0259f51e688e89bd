// Package input turns raw key presses into the ordered stream of actions the
// game core consumes.
package input

import (
	"errors"
	"sync"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// ErrQueueClosed is returned by Push once the consumer has gone away.
var ErrQueueClosed = errors.New("input: action queue closed")

// Queue is a FIFO of actions shared between the reader goroutine and the
// game loop. Push never blocks on the consumer and Drain never blocks on
// the producer.
type Queue struct {
	mu     sync.Mutex
	items  []core.Action
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: make([]core.Action, 0, 16)}
}

// Push appends an action.
func (q *Queue) Push(a core.Action) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, a)
	return nil
}

// Drain appends every queued action to dst in push order and empties the queue.
func (q *Queue) Drain(dst []core.Action) []core.Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	dst = append(dst, q.items...)
	q.items = q.items[:0]
	return dst
}

// Len returns the number of queued actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close marks the consumer as gone. Later pushes fail with ErrQueueClosed.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}
