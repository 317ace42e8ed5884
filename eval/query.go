package eval

import (
	"fmt"
	"os"

	"github.com/signadot/bintree/debug"
	"github.com/signadot/bintree/tree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Query struct {
	src string
	prg *vm.Program
}

// Match is a selected node and its path from the root.
type Match struct {
	Path tree.Path
	Node *tree.Node
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Compile compiles src into a Query. src must evaluate to a bool.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Select returns the nodes of root for which q is true, in pre-order.
func (q *Query) Select(root *tree.Node) ([]Match, error) {
	var (
		res []Match
		err error
		ord int
	)
	tree.Walk(root, func(n *tree.Node, p tree.Path, depth int) bool {
		if err != nil {
			return false
		}
		env := newEnv(root, n, p, depth, ord)
		ord++
		out, rErr := expr.Run(q.prg, env)
		if rErr != nil {
			err = fmt.Errorf("%w: at %s: %w", ErrEval, p, rErr)
			return false
		}
		if debug.Eval() {
			debug.Logf("%s at %s: %v\n", q.src, p, out)
		}
		if out.(bool) {
			res = append(res, Match{Path: p, Node: n})
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		paths := make([]string, len(res))
		for i := range res {
			paths[i] = res[i].Path.String()
		}
		debug.LogAny(paths)
	}
	return res, nil
}

// Match reports whether q is true at the root of n.
func (q *Query) Match(n *tree.Node) (bool, error) {
	if n == nil {
		return false, nil
	}
	out, err := expr.Run(q.prg, newEnv(n, n, nil, 0, 0))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return out.(bool), nil
}
