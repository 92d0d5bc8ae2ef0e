// Package queue provides a FIFO queue that allocates storage in fixed-size
// chunks instead of one node per element.
//
// Queue is the frontier used by the level-graph BFS in package flow, but it is
// generic and has no knowledge of graphs.
//
// # Behavior
//
//   - Push appends at the tail; Pop removes from the head.
//   - Storage grows one chunk at a time. A chunk is released once every
//     element in it has been popped, so memory follows the live window rather
//     than the total number of elements ever pushed.
//   - Pop, Peek and Last report ok=false on an empty queue instead of
//     panicking.
//
// Complexity:
//
//	Push, Pop, Peek, Last, Len: O(1) amortized.
//	Memory: O(live + chunk).
//
// The zero value is not ready for use; call New.
package queue
