// Package rsf execution tracing: an append-only delta log replayable into
// per-step snapshots for external rendering layers.
//
// The log stores one small event per walk step instead of copying the
// cumulative edge set at every step, so memory stays linear in the number
// of steps. Replay reconstructs the cumulative view incrementally.
package rsf

import (
	"errors"

	"github.com/riccardo1803/Wilson-algorithm-RSF/graphmodel"
)

// ErrBadTrace indicates a replayed event sequence that no Build run could
// have produced (e.g. a move before any walk start).
var ErrBadTrace = errors.New("rsf: malformed trace")

// EventKind tags one recorded build event.
type EventKind uint8

const (
	// EventStart - a walk began at Node (occupies one walk position).
	EventStart EventKind = iota
	// EventExtend - the walk moved to Node, extending its path by one edge.
	EventExtend
	// EventErase - the walk revisited Node; the closed loop was erased and
	// the path truncated to Keep nodes.
	EventErase
	// EventRoot - the walk was absorbed; Node is a new root.
	EventRoot
	// EventMerge - the walk hit covered Node and was grafted onto the forest.
	EventMerge
)

// Event is one entry of the delta log.
// Step is the global walk-position index the event refers to; EventRoot
// and EventMerge share the position of the walk's final node.
type Event struct {
	Kind EventKind
	Node graphmodel.NodeID
	Step int
	Keep int // EventErase only: surviving path length
}

// Snapshot is the cumulative state at one walk position, as a rendering
// layer would draw it: the node the walk sits on, every edge discovered so
// far (committed trees plus the open trajectory), and the roots found so
// far. The Edges and Roots slices are views owned by Replay, valid only
// for the duration of the callback; callers must copy to retain them.
type Snapshot struct {
	Step    int
	Current graphmodel.NodeID
	Edges   []Edge
	Roots   []graphmodel.NodeID
}

// Trace is the append-only event log of one Build run. Pass it via
// WithTrace; recording is pure observation and never changes the forest.
// The zero value is an empty, ready-to-use trace.
type Trace struct {
	events []Event
}

// append records one event. Only the builder writes to a Trace.
func (t *Trace) append(ev Event) { t.events = append(t.events, ev) }

// Len returns the number of recorded events.
func (t *Trace) Len() int { return len(t.events) }

// Events returns a copy of the recorded event sequence.
func (t *Trace) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)

	return out
}

// Replay walks the event log and invokes visit with the snapshot at every
// walk position, in order. Returning false from visit stops the replay
// early. Replay is read-only: it never mutates the trace and cannot affect
// the Forest the trace was derived from.
//
// Returns ErrBadTrace if the event sequence is not one a build could emit.
// Complexity: O(steps + total erased) time, O(V+E) memory.
func (t *Trace) Replay(visit func(Snapshot) bool) error {
	var (
		edges     []Edge // committed prefix + open trajectory edges
		committed int    // length of the committed prefix of edges
		open      []graphmodel.NodeID
		roots     []graphmodel.NodeID
		pending   Snapshot
		hasPend   bool
	)
	// Snapshots are flushed one event late so that a root discovered at a
	// position is already visible in that position's snapshot.
	flush := func() bool {
		if !hasPend {
			return true
		}
		hasPend = false
		pending.Edges = edges
		pending.Roots = roots
		return visit(pending)
	}

	for _, ev := range t.events {
		switch ev.Kind {
		case EventStart:
			if !flush() {
				return nil
			}
			open = append(open[:0], ev.Node)
			pending = Snapshot{Step: ev.Step, Current: ev.Node}
			hasPend = true

		case EventExtend:
			if len(open) == 0 {
				return ErrBadTrace
			}
			if !flush() {
				return nil
			}
			edges = append(edges, Edge{From: open[len(open)-1], To: ev.Node})
			open = append(open, ev.Node)
			pending = Snapshot{Step: ev.Step, Current: ev.Node}
			hasPend = true

		case EventErase:
			if ev.Keep < 1 || ev.Keep > len(open) || open[ev.Keep-1] != ev.Node {
				return ErrBadTrace
			}
			if !flush() {
				return nil
			}
			open = open[:ev.Keep]
			edges = edges[:committed+ev.Keep-1]
			pending = Snapshot{Step: ev.Step, Current: ev.Node}
			hasPend = true

		case EventRoot:
			if len(open) == 0 || open[len(open)-1] != ev.Node {
				return ErrBadTrace
			}
			roots = append(roots, ev.Node)
			committed = len(edges)
			open = open[:0]

		case EventMerge:
			if len(open) == 0 || open[len(open)-1] != ev.Node {
				return ErrBadTrace
			}
			committed = len(edges)
			open = open[:0]

		default:
			return ErrBadTrace
		}
	}
	flush()

	return nil
}

// Forest rebuilds the final forest implied by the trace. It must equal the
// Forest returned by the Build run that recorded the trace; exposed so
// replay consumers can cross-check their state.
// Complexity: O(steps).
func (t *Trace) Forest() (*Forest, error) {
	f := &Forest{}
	err := t.Replay(func(Snapshot) bool { return true })
	if err != nil {
		return nil, err
	}
	// A second pass collects the committed results; Replay validated shape.
	var (
		edges     []Edge
		committed int
		open      []graphmodel.NodeID
	)
	for _, ev := range t.events {
		switch ev.Kind {
		case EventStart:
			open = append(open[:0], ev.Node)
		case EventExtend:
			edges = append(edges, Edge{From: open[len(open)-1], To: ev.Node})
			open = append(open, ev.Node)
		case EventErase:
			open = open[:ev.Keep]
			edges = edges[:committed+ev.Keep-1]
		case EventRoot:
			f.Roots = append(f.Roots, ev.Node)
			f.RootOrder = append(f.RootOrder, ev.Step)
			committed = len(edges)
			open = open[:0]
		case EventMerge:
			committed = len(edges)
			open = open[:0]
		}
		if ev.Step+1 > f.Steps {
			f.Steps = ev.Step + 1
		}
	}
	f.Edges = edges[:committed]

	return f, nil
}
