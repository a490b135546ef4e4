package tess

import "container/heap"

// pendingEdge is the part of an edge below the current sweep position,
// seen from its upper endpoint.
type pendingEdge struct {
	to      fixedPoint
	winding int16
}

// sweepEvent gathers everything that starts at one position. Coincident
// events are merged when popped, so the sweep sees each position
// exactly once.
type sweepEvent struct {
	at    fixedPoint
	below []pendingEdge
}

// eventHeap is a min-heap of events in sweep order.
type eventHeap []sweepEvent

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return sweepLess(h[i].at, h[j].at) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(sweepEvent))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	old[n-1] = sweepEvent{}
	*h = old[:n-1]
	return ev
}

// eventQueue is the sweep's priority queue. Events for all path
// endpoints are pushed up front; intersection events are pushed while
// the sweep runs.
type eventQueue struct {
	h eventHeap
}

func (q *eventQueue) reset() {
	q.h = q.h[:0]
	heap.Init(&q.h)
}

func (q *eventQueue) empty() bool {
	return len(q.h) == 0
}

// pushEdge queues an edge seen from its upper endpoint.
func (q *eventQueue) pushEdge(from, to fixedPoint, winding int16) {
	heap.Push(&q.h, sweepEvent{
		at:    from,
		below: []pendingEdge{{to: to, winding: winding}},
	})
}

// pushVertex queues a bare position. Lower edge endpoints are queued
// this way so every endpoint becomes an event even when no edge starts
// there.
func (q *eventQueue) pushVertex(at fixedPoint) {
	heap.Push(&q.h, sweepEvent{at: at})
}

// pop removes the next event in sweep order, merging all queued events
// that share its position.
func (q *eventQueue) pop() sweepEvent {
	ev := heap.Pop(&q.h).(sweepEvent)
	for len(q.h) > 0 && q.h[0].at == ev.at {
		next := heap.Pop(&q.h).(sweepEvent)
		ev.below = append(ev.below, next.below...)
	}
	return ev
}
