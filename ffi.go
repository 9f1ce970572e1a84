package lumina

import (
	"strings"

	"github.com/google/uuid"
	shellquote "github.com/kballard/go-shellquote"
)

//
// The FFI hook, spec.md section 4.3's ExternalCall step 3 and section
// 5's "FFI handles are opened once ... and retained for the process
// lifetime".  Actual native-library loading is explicitly out of
// scope (spec.md section 1); what's specified here is the shape of
// the hook and the bookkeeping around handles and IMPORT.  Grounded
// on the abstract external-call resolver pattern visible in
// daios-ai-msg's tool-dispatch layer: a narrow interface consulted
// only after the built-in and user-function paths have already failed
//

// Resolver is consulted by ExternalCall when a name is neither a
// built-in nor a user-defined function.  The binding mechanism behind
// a concrete Resolver (dynamic library loading, RPC, etc.) is a
// platform detail left to the embedder
type Resolver interface {
	Resolve(name string, args []Value) (Value, bool)
}

// NoopResolver always reports no match.  NewContext installs it as
// the Context's resolver and there is no exported way to replace it,
// so a run behaves exactly as if FFI didn't exist: every unresolved
// name reaches UnknownFunction
type NoopResolver struct{}

func (NoopResolver) Resolve(name string, args []Value) (Value, bool) {
	return Value{}, false
}

// Handle is one loaded FFI import.  ID gives every handle a stable
// identity independent of its path.  Handles are kept on the Context
// only; Resolve is not given them
type Handle struct {
	ID   uuid.UUID
	Path string
	Args []string
}

// runImport implements the Import statement (spec.md section 4.3):
// open (or reuse) a handle for path and retain it for the run
func (c *Context) runImport(path string, args []string) {

	for _, h := range c.handles {
		if h.Path == path {
			return
		}
	}

	c.handles = append(c.handles, &Handle{
		ID:   uuid.New(),
		Path: path,
		Args: args,
	})
}

// shellSplit parses an IMPORT statement's argument text the way a
// shell would: quoted segments become single arguments, honoring
// backslash escapes.  Grounded on daios-ai-msg's command-line tool
// invocation layer, which parses subprocess arguments the same way
func shellSplit(s string) ([]string, error) {

	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	return shellquote.Split(s)
}
