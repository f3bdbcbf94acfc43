package aspen

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-update timing and command metrics.
// Only populated when Stage.debug is true.
type frameStats struct {
	reconcileTime time.Duration
	layoutTime    time.Duration
	renderTime    time.Duration
	nodeCount     int
	commandCount  int
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, RemoveChild
// misuse warns, and per-update timing stats are logged to stderr.
func (st *Stage) SetDebugMode(enabled bool) {
	st.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so that node
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage; multiple Stages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLog prints timing and command stats to stderr.
func (st *Stage) debugLog(stats frameStats) {
	if !st.debug {
		return
	}
	total := stats.reconcileTime + stats.layoutTime + stats.renderTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[aspen] reconcile: %v | layout: %v | render: %v | total: %v\n",
		stats.reconcileTime, stats.layoutTime, stats.renderTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[aspen] nodes: %d | commands: %d\n",
		stats.nodeCount, stats.commandCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called in debug mode; release-mode
// callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("aspen debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; {
		depth++
		if p.parent == nil {
			break
		}
		p = &p.parent.Node
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[aspen] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a container holds more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Container) {
	if len(c.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[aspen] warning: node %q has %d children (threshold %d)\n",
			c.Name, len(c.children), debugMaxChildCount)
	}
}

// debugWarnNotAChild reports a RemoveChild call on a node that does not
// belong to the receiver. The call itself is a silent no-op by contract;
// the warning keeps the likely bug visible.
func debugWarnNotAChild(c *Container, b *Node) {
	_, _ = fmt.Fprintf(os.Stderr, "[aspen] warning: RemoveChild: %q is not a child of %q\n",
		b.Name, c.Name)
}
