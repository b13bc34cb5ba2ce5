package catch

// positionQueue is a FIFO of sequence positions backed by a growable ring buffer.
// The zero value is an empty queue ready to use.
type positionQueue struct {
	buf  []int
	head int
	size int
}

// newPositionQueue returns a queue with room for capacity positions.
func newPositionQueue(capacity int) positionQueue {
	if capacity <= 0 {
		return positionQueue{}
	}

	return positionQueue{buf: make([]int, capacity)}
}

// Len returns the number of queued positions.
func (q *positionQueue) Len() int { return q.size }

// Empty reports whether the queue holds no positions.
func (q *positionQueue) Empty() bool { return q.size == 0 }

// Push appends pos at the back.
func (q *positionQueue) Push(pos int) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = pos
	q.size++
}

// Front returns the oldest position without removing it.
// The second result is false when the queue is empty.
func (q *positionQueue) Front() (int, bool) {
	if q.size == 0 {
		return 0, false
	}

	return q.buf[q.head], true
}

// Pop removes and returns the oldest position.
// The second result is false when the queue is empty.
func (q *positionQueue) Pop() (int, bool) {
	if q.size == 0 {
		return 0, false
	}
	pos := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	if q.size == 0 {
		q.head = 0
	}

	return pos, true
}

// grow doubles the buffer, unrolling the ring so head lands at index 0.
func (q *positionQueue) grow() {
	n := 2 * len(q.buf)
	if n == 0 {
		n = 8
	}
	buf := make([]int, n)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
