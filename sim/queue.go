// Implements the ReadyQueue, which holds the ids of bots holding two chips.
// Bots are enqueued the moment their second chip arrives.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO worklist of bots that can fire.
// A bot id appears at most once: a bot is enqueued when it reaches two chips
// and is drained back to zero chips before it could be enqueued again.
type ReadyQueue struct {
	queue []int
}

// Enqueue adds a bot to the back of the queue.
func (rq *ReadyQueue) Enqueue(bot int) {
	rq.queue = append(rq.queue, bot)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, id := range rq.queue {
		sb.WriteString(fmt.Sprint(id))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of ready bots.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// ReadySelector.OrderQueue is the primary consumer.
// fn MUST NOT change the slice length.
func (rq *ReadyQueue) Reorder(fn func([]int)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}

// Dequeue removes and returns the bot at the front of the queue.
func (rq *ReadyQueue) Dequeue() (int, bool) {
	if len(rq.queue) == 0 {
		return 0, false
	}
	bot := rq.queue[0]
	rq.queue = rq.queue[1:]
	return bot, true
}
