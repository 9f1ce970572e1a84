package lumina

import (
	"fmt"
	"os"

	"github.com/goforj/godump"
)

//
// Tracer is the optional statement-level trace facility, off by
// default (spec.md carries no tracing requirement of its own; this is
// ambient observability the way the teacher's -trace/godump.Dump
// calls are: diagnostic, never load-bearing).  Grounded on basic.go's
// own godump.Dump(node) call sites, which dump whatever AST node is
// about to run when a debug flag is set
//

type Tracer struct {
	trace bool
	dump  bool
}

func NewTracer(trace, dump bool) *Tracer {
	return &Tracer{trace: trace, dump: dump}
}

// step is called once per top-level or body statement, immediately
// before execution
func (t *Tracer) step(c *Context, stmt *Statement) {

	if t == nil || !t.trace {
		return
	}

	fmt.Fprintf(os.Stderr, "line=%d reverse=%v kw=%s\n", c.currentLine, c.reverse, stmt.Keyword)

	if t.dump {
		godump.Dump(stmt)
	}
}
