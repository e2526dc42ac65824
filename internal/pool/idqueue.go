// internal/pool/idqueue.go
package pool

// idQueue is a fixed-capacity FIFO of slot ids backed by a ring buffer.
// It never allocates after construction. Overflow cannot happen: the two
// queues partition a fixed id set whose size equals each queue's capacity.
type idQueue struct {
	buf  []int
	head int
	n    int
}

func newIDQueue(capacity int) *idQueue {
	return &idQueue{buf: make([]int, capacity)}
}

func (q *idQueue) len() int { return q.n }

func (q *idQueue) push(id int) {
	q.buf[(q.head+q.n)%len(q.buf)] = id
	q.n++
}

func (q *idQueue) pop() (int, bool) {
	if q.n == 0 {
		return 0, false
	}
	id := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return id, true
}
