// Package scenedsl builds scenes for a space.Space by evaluating a small
// Lisp DSL in a sandboxed zygomys interpreter. There is no user-facing
// scene file format: every scene source is a Go string constant compiled
// into the binary (see presets.go), and Eval runs it against a fresh,
// timeboxed sandbox exactly the way the original Lisp DSL this engine is
// descended from ran design scripts.
package scenedsl

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chazu/adsoda/pkg/space"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"
)

// EvalTimeout is the hard limit for a single scene evaluation.
const EvalTimeout = 5 * time.Second

// EvalError represents a non-fatal error encountered while parsing or
// running scene source.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

type evalResult struct {
	errs []EvalError
	err  error
}

var generation struct {
	mu  sync.Mutex
	gen uint64
}

// Eval parses and runs source against target, appending any solids it
// constructs. Each call opens a fresh zygomys sandbox. Calls share one
// generation counter: if another Eval starts before this one finishes,
// this call returns a "superseded" error.
//
// Return semantics mirror the engine this DSL is descended from: a
// non-nil error means the evaluation itself failed to complete (timeout,
// panic, or superseded); a non-empty errs with a nil error means the scene
// source was rejected but the process is healthy.
func Eval(source string, target *space.Space) (errs []EvalError, err error) {
	generation.mu.Lock()
	generation.gen++
	gen := generation.gen
	generation.mu.Unlock()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: errors.Errorf("scenedsl: panic during evaluation: %v", r)}
			}
		}()
		e := evalOnce(source, target)
		ch <- e
	}()

	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()
	select {
	case res := <-ch:
		generation.mu.Lock()
		current := generation.gen
		generation.mu.Unlock()
		if gen != current {
			return nil, errors.New("scenedsl: evaluation superseded by newer request")
		}
		return res.errs, res.err
	case <-timer.C:
		return nil, errors.Errorf("scenedsl: evaluation timed out after %s", EvalTimeout)
	}
}

func evalOnce(source string, target *space.Space) evalResult {
	if strings.TrimSpace(source) == "" {
		return evalResult{}
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, target)

	if err := env.LoadString(source); err != nil {
		return evalResult{errs: []EvalError{{Message: err.Error()}}}
	}
	if _, err := env.Run(); err != nil {
		return evalResult{errs: []EvalError{{Message: err.Error()}}}
	}
	return evalResult{}
}
