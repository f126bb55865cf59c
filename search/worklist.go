package search

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/linkedliststack"

	"github.com/katalvlaran/mazegraph/core"
)

// Worklist is the frontier of a search: the order in which Remove yields
// vertices decides the traversal. It also serves as a breadcrumb trail.
type Worklist interface {
	Add(v core.VertexID)
	// Remove pops the next vertex; ok is false when empty.
	Remove() (v core.VertexID, ok bool)
	// Peek returns the next vertex without removing it.
	Peek() (v core.VertexID, ok bool)
	Empty() bool
	Size() int
	// Values returns the elements in removal order.
	Values() []core.VertexID
}

// NewQueue returns a FIFO worklist (breadth-first order).
func NewQueue() Worklist { return &queue{q: linkedlistqueue.New()} }

// NewStack returns a LIFO worklist (depth-first order, breadcrumb trails).
func NewStack() Worklist { return &stack{s: linkedliststack.New()} }

type queue struct{ q *linkedlistqueue.Queue }

func (w *queue) Add(v core.VertexID) { w.q.Enqueue(v) }

func (w *queue) Remove() (core.VertexID, bool) { return unbox(w.q.Dequeue()) }

func (w *queue) Peek() (core.VertexID, bool) { return unbox(w.q.Peek()) }

func (w *queue) Empty() bool { return w.q.Empty() }

func (w *queue) Size() int { return w.q.Size() }

func (w *queue) Values() []core.VertexID { return unboxAll(w.q.Values()) }

type stack struct{ s *linkedliststack.Stack }

func (w *stack) Add(v core.VertexID) { w.s.Push(v) }

func (w *stack) Remove() (core.VertexID, bool) { return unbox(w.s.Pop()) }

func (w *stack) Peek() (core.VertexID, bool) { return unbox(w.s.Peek()) }

func (w *stack) Empty() bool { return w.s.Empty() }

func (w *stack) Size() int { return w.s.Size() }

func (w *stack) Values() []core.VertexID { return unboxAll(w.s.Values()) }

func unbox(x interface{}, ok bool) (core.VertexID, bool) {
	if !ok {
		return core.NoVertex, false
	}
	return x.(core.VertexID), true
}

func unboxAll(xs []interface{}) []core.VertexID {
	out := make([]core.VertexID, len(xs))
	for i, x := range xs {
		out[i] = x.(core.VertexID)
	}
	return out
}
