// Implements the GroupQueue, which holds all client groups waiting for a table.
// Groups are enqueued on admission and leave only when seated.

package sim

import (
	"fmt"
	"strings"
)

// GroupQueue represents a FIFO queue of client groups waiting to be seated.
// Groups are served strictly in arrival order.
type GroupQueue struct {
	queue []*ClientGroup // FIFO queue of groups
}

// Enqueue adds a group to the back of the queue.
func (gq *GroupQueue) Enqueue(g *ClientGroup) {
	if g == nil {
		panic("Enqueue: group must not be nil")
	}
	gq.queue = append(gq.queue, g)
}

func (gq *GroupQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range gq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(gq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of groups in the queue.
func (gq *GroupQueue) Len() int {
	return len(gq.queue)
}

// Empty reports whether no group is waiting.
func (gq *GroupQueue) Empty() bool {
	return len(gq.queue) == 0
}

// Peek returns the group at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (gq *GroupQueue) Peek() *ClientGroup {
	if len(gq.queue) == 0 {
		return nil
	}
	return gq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers MUST NOT
// append to or reslice it.
func (gq *GroupQueue) Items() []*ClientGroup {
	return gq.queue
}

// Dequeue removes and returns the group at the front of the queue.
// Returns nil if the queue is empty.
func (gq *GroupQueue) Dequeue() *ClientGroup {
	if len(gq.queue) == 0 {
		return nil
	}
	g := gq.queue[0]
	gq.queue[0] = nil
	gq.queue = gq.queue[1:]
	return g
}
