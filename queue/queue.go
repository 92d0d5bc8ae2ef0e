package queue

// DefaultChunkSize is the number of elements stored per chunk when New is
// given a non-positive size.
const DefaultChunkSize = 8

// chunk is one fixed-capacity block of the queue.
// items[head:] are the live elements; next links toward the tail.
type chunk[T any] struct {
	items []T
	head  int
	next  *chunk[T]
}

func newChunk[T any](size int) *chunk[T] {
	return &chunk[T]{items: make([]T, 0, size)}
}

func (c *chunk[T]) full() bool { return len(c.items) == cap(c.items) }

func (c *chunk[T]) live() int { return len(c.items) - c.head }

// Queue is a first-in first-out queue backed by a singly linked list of
// chunks. It is not safe for concurrent use.
type Queue[T any] struct {
	top    *chunk[T] // dequeue side
	bottom *chunk[T] // enqueue side
	size   int
	chunk  int
}

// New returns an empty queue whose chunks hold chunkSize elements.
// A chunkSize ≤ 0 selects DefaultChunkSize.
func New[T any](chunkSize int) *Queue[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	c := newChunk[T](chunkSize)
	return &Queue[T]{top: c, bottom: c, chunk: chunkSize}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// ChunkSize returns the per-chunk capacity chosen at construction.
func (q *Queue[T]) ChunkSize() int { return q.chunk }

// Push appends items at the tail in argument order.
func (q *Queue[T]) Push(items ...T) {
	for _, it := range items {
		if q.bottom.full() {
			c := newChunk[T](q.chunk)
			q.bottom.next = c
			q.bottom = c
		}
		q.bottom.items = append(q.bottom.items, it)
	}
	q.size += len(items)
}

// Pop removes and returns the head element. ok is false when the queue is
// empty, in which case the zero value is returned.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	c := q.top
	item = c.items[c.head]
	var zero T
	c.items[c.head] = zero // drop the reference for the GC
	c.head++
	q.size--

	switch {
	case q.size == 0:
		// Reuse the current chunk from the start instead of allocating.
		c.items = c.items[:0]
		c.head = 0
		c.next = nil
		q.bottom = c
	case c.live() == 0 && c.full():
		q.top = c.next
	}
	return item, true
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	return q.top.items[q.top.head], true
}

// Last returns the most recently pushed element without removing it.
func (q *Queue[T]) Last() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	return q.bottom.items[len(q.bottom.items)-1], true
}

// Clear drops every element and releases all chunks but one.
func (q *Queue[T]) Clear() {
	c := newChunk[T](q.chunk)
	q.top, q.bottom, q.size = c, c, 0
}
