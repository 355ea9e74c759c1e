// Package basic provides two generic list containers built from scratch:
// ArrayList, backed by a slice that doubles when full, and LinkedList, a
// doubly linked list with O(1) head and tail operations.
//
// Both share one bounds rule. Insert positions may range over [0, Size()],
// where Size() appends; Get and Remove require [0, Size()). Any other index
// yields an error wrapping ErrIndexOutOfRange and leaves the list unchanged.
//
// Neither container is safe for concurrent use. Callers that share a list
// between goroutines must guard every call with their own lock.
package basic
