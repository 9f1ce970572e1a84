package lumina

import "time"

//
// Executor drives the top-level instruction pointer described in
// spec.md section 4.4.  Grounded on the teacher's main execution loop
// in execute.go (a flat ip over the statement list, with gotoLine
// jumps), generalized to support the bidirectional ip movement
// REVERSE introduces
//

type Executor struct {
	ctx  *Context
	prog *Program
}

func NewExecutor(prog *Program, cfg Config) *Executor {

	ctx := NewContext(cfg)
	ctx.retro = prog.Retro
	ctx.budget = cfg.StatementBudget

	return &Executor{ctx: ctx, prog: prog}
}

// Run drives the executor to completion.  This is one of the two
// recover sites in the package (the other guards ParseProgram, in
// the package-level Run below): every LuminaError or internalError
// raised anywhere below here surfaces as a plain error return
func (e *Executor) Run() (result Value, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = recoverToErr(r)
		}
	}()

	e.runLoop()

	return e.ctx.lastReturn, nil
}

func (e *Executor) runLoop() {

	stmts := e.prog.Statements
	n := len(stmts)
	if n == 0 {
		return
	}

	ip := 0
	if e.ctx.reverse {
		ip = n - 1
	}

	for ip >= 0 && ip < n {

		if e.ctx.budget > 0 && e.ctx.stats.StatementsExecuted >= uint64(e.ctx.budget) {
			raise(ErrInternal, e.ctx.currentLine, "statement budget of %d exceeded", e.ctx.budget)
		}

		if e.ctx.runStatement(stmts[ip]) {
			return
		}

		if e.ctx.reverse {
			ip--
		} else {
			ip++
		}
	}
}

// Run parses src and executes it against a fresh Context built from
// cfg, returning the final last_return value
func Run(src string, cfg Config) (Value, error) {

	result, _, err := RunWithStats(src, cfg)
	return result, err
}

// RunWithStats is Run, plus the RunStats accumulated along the way --
// used by the -stats CLI flag, which needs the counters after a
// normal OR a failed run
func RunWithStats(src string, cfg Config) (Value, *RunStats, error) {

	prog, err := parseProgramSafe(src)
	if err != nil {
		return Value{}, newRunStats(), err
	}

	ex := NewExecutor(prog, cfg)
	result, err := ex.Run()

	return result, ex.ctx.stats, err
}

func parseProgramSafe(src string) (prog *Program, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = recoverToErr(r)
		}
	}()

	return ParseProgram(src), nil
}

func recoverToErr(r any) error {

	switch v := r.(type) {
	case *LuminaError:
		return v
	case *internalError:
		return v
	default:
		panic(r)
	}
}

//
// runStatement is the per-statement envelope spec.md section 4.3
// describes: keyword-disabled check, retroactive-binding application,
// dispatch, current_line increment, expiry sweep.  Shared by the
// top-level loop above and executeBody below, since current_line
// counts statements "at the top level and inside functions" alike
//

func (c *Context) runStatement(stmt *Statement) (returned bool) {

	if c.isDisabled(stmt.Keyword) {
		raiseToken(ErrDisabledToken, c.currentLine, stmt.Keyword)
	}

	c.applyRetroBindings(c.currentLine + 1)

	c.tracer.step(c, stmt)

	returned = c.dispatch(stmt)

	c.currentLine++
	c.stats.StatementsExecuted++
	c.sweepExpirations()

	return returned
}

// executeBody runs stmts forward, in order, stopping early if a
// RETURN propagates out of one of them.  Used for If/While/function
// bodies, all of which execute "always forward" per spec.md section 4.6
func executeBody(c *Context, stmts []*Statement) bool {

	for _, s := range stmts {
		if c.runStatement(s) {
			return true
		}
	}

	return false
}

// applyRetroBindings implements spec.md section 4.5's load-time
// precomputed synthetic bindings: anything targeting the line about
// to execute is bound into the current frame first
func (c *Context) applyRetroBindings(line uint64) {

	for _, rb := range c.retro[line] {
		v := evalExpr(c, rb.Expr)
		c.frame().set(rb.Name, v)
	}
}

//
// dispatch is the discriminant-driven executor for a single
// Statement, spec.md section 4.3's statement table and section 9's
// modeling note ("a tagged variant with a discriminant-driven
// executor rather than subtype dispatch")
//

func (c *Context) dispatch(stmt *Statement) (returned bool) {

	switch stmt.Kind {

	case StmtAssign:
		c.frame().set(stmt.Name, evalExpr(c, stmt.Expr))
		return false

	case StmtLifetimeAssign:
		c.frame().set(stmt.Name, evalExpr(c, stmt.Expr))
		c.applyLifetime(stmt.Name, stmt.Lifetime)
		return false

	case StmtInlineCall:
		args := evalArgs(c, stmt.ArgExprs)
		c.lastReturn = c.externalCall(stmt.CallName, args)
		return false

	case StmtDelete:
		c.runDelete(stmt.Target)
		return false

	case StmtPrevious:
		if _, ok := c.frame().popHistory(stmt.Target); !ok {
			raise(ErrNoPrevious, c.currentLine, "%s has no previous value", stmt.Target)
		}
		return false

	case StmtReturn:
		c.lastReturn = evalExpr(c, stmt.Expr)
		return true

	case StmtReverse:
		// spec.md section 9: REVERSE inside a function body is a no-op,
		// the flag is top-level only
		if len(c.frames) == 1 {
			c.reverse = !c.reverse
			c.stats.ReverseToggles++
		}
		return false

	case StmtIf:
		if evalCondition(c, stmt.Cond) {
			return executeBody(c, stmt.Body)
		}
		return false

	case StmtWhile:
		for evalCondition(c, stmt.Cond) {
			if executeBody(c, stmt.Body) {
				return true
			}
		}
		return false

	case StmtFunctionDef:
		c.defineFunction(&Function{Name: stmt.FuncName, Body: stmt.Body})
		return false

	case StmtImport:
		c.runImport(stmt.ImportPath, stmt.ImportArgs)
		return false

	default:
		luminaAssert(false, "unknown statement kind %d", int(stmt.Kind))
		return false
	}
}

// runDelete implements the Delete statement, spec.md section 4.3: a
// current-frame variable is purged outright; anything else disables
// the token for the rest of the run (after removing any same-named
// function), including the DELETE DELETE special case (spec.md 4.6)
func (c *Context) runDelete(target string) {

	if c.frame().delete(target) {
		c.clearLineExpiration(target)
		c.clearTimeExpiration(target)
		return
	}

	c.deleteFunction(target)
	c.disable(target)
}

// applyLifetime implements the expiry-scheduling half of a lifetime
// assignment, spec.md section 4.3/4.5.  "current_line = c" in the
// testable property (section 8) names the assignment statement's own
// execution-line identity, the same current_line+1 convention used
// for def_line (section 4.5) and for "next line number" (section
// 4.4) -- not the raw pre-increment counter
func (c *Context) applyLifetime(name string, life *LifetimeSpec) {

	identity := c.currentLine + 1

	if life.Seconds {
		if life.Duration == 0 {
			return
		}
		deadline := time.Now().Add(time.Duration(life.Duration * float64(time.Second)))
		c.scheduleTimeExpiration(name, deadline)
		return
	}

	if life.Lines == 0 {
		return
	}

	if life.Lines > 0 {
		c.scheduleLineExpiration(name, identity+uint64(life.Lines))
		return
	}

	// negative line-lifetime: the retroactive synthetic bindings
	// (computed at parse time) cover the backward-looking half; the
	// statement's own binding expires immediately, on this same step
	c.scheduleLineExpiration(name, identity)
}

//
// externalCall implements spec.md section 4.3's ExternalCall dispatch
// order: built-in table, then user function registry, then the FFI
// resolver, then UnknownFunction
//

func (c *Context) externalCall(name string, args []Value) Value {

	if c.isDisabled(name) {
		raiseToken(ErrDisabledToken, c.currentLine, name)
	}

	if fn, ok := c.builtins[normalizeName(name)]; ok {
		return fn(c, args)
	}

	if fn, ok := c.lookupFunction(name); ok {
		c.pushFrame()
		c.stats.FunctionCalls++
		// spec.md section 9: the ArgStack is the only channel for
		// inline-call arguments to user functions, but the reference
		// never pops from it inside a function body -- args here are
		// therefore silently ignored, by design
		executeBody(c, fn.Body)
		c.popFrame()
		return c.lastReturn
	}

	if v, ok := c.resolver.Resolve(name, args); ok {
		return v
	}

	raiseToken(ErrUnknownFunction, c.currentLine, name)
	return Value{}
}

func evalArgs(c *Context, exprs []string) []Value {

	args := make([]Value, len(exprs))
	for i, expr := range exprs {
		args[i] = evalExpr(c, expr)
	}

	return args
}

// evalCondition implements the two If/While condition shapes from
// spec.md section 4.3
func evalCondition(c *Context, cond *Condition) bool {

	if !cond.IsComparison {
		return evalExpr(c, cond.Expr).Truthy()
	}

	left := evalExpr(c, cond.Left)
	right := evalExpr(c, cond.Right)

	cmp, ok := left.Compare(right)
	if !ok {
		raise(ErrTypeError, c.currentLine, "cannot compare across value kinds")
	}

	switch cond.Op {
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	case "==":
		return cmp == 0
	case "!=":
		return cmp != 0
	default:
		luminaAssert(false, "unknown comparison operator %q", cond.Op)
		return false
	}
}
