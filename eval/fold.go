package eval

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/lintcfg/value"
)

// expr operators for the JavaScript binary operators folded on numbers
// and strings.
var exprOps = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"**": "**",
	"<":  "<",
	"<=": "<=",
	">":  ">",
	">=": ">=",
}

var programs sync.Map // operator -> *vm.Program

func program(op string) (*vm.Program, error) {
	if p, ok := programs.Load(op); ok {
		return p.(*vm.Program), nil
	}
	eop, ok := exprOps[op]
	if !ok {
		return nil, fmt.Errorf("no program for %q", op)
	}
	p, err := expr.Compile("a " + eop + " b")
	if err != nil {
		return nil, err
	}
	programs.Store(op, p)
	return p, nil
}

// fold applies the binary operator op to the resolved operands l and r.
func fold(op string, l, r any) (any, bool) {
	switch op {
	case "===", "!==":
		eq, ok := strictEqual(l, r)
		if !ok {
			return nil, false
		}
		return eq == (op == "==="), true
	case "==", "!=":
		if !sameType(l, r) {
			return nil, false
		}
		eq, ok := strictEqual(l, r)
		if !ok {
			return nil, false
		}
		return eq == (op == "=="), true
	case "%":
		a, aok := l.(float64)
		b, bok := r.(float64)
		if !aok || !bok {
			return nil, false
		}
		return math.Mod(a, b), true
	case "+":
		_, ls := l.(string)
		_, rs := r.(string)
		if ls || rs {
			a, aok := jsString(l)
			b, bok := jsString(r)
			if !aok || !bok {
				return nil, false
			}
			return a + b, true
		}
	}
	if _, ok := exprOps[op]; !ok {
		return nil, false
	}
	switch l.(type) {
	case float64:
		if _, ok := r.(float64); !ok {
			return nil, false
		}
	case string:
		if _, ok := r.(string); !ok {
			return nil, false
		}
		switch op {
		case "<", "<=", ">", ">=":
		default:
			return nil, false
		}
	default:
		return nil, false
	}
	p, err := program(op)
	if err != nil {
		return nil, false
	}
	v, err := vm.Run(p, map[string]any{"a": l, "b": r})
	if err != nil {
		return nil, false
	}
	switch x := v.(type) {
	case float64, bool:
		return x, true
	case int:
		return float64(x), true
	}
	return nil, false
}

func sameType(l, r any) bool {
	switch l.(type) {
	case nil:
		return r == nil
	case bool:
		_, ok := r.(bool)
		return ok
	case float64:
		_, ok := r.(float64)
		return ok
	case string:
		_, ok := r.(string)
		return ok
	}
	return false
}

// strictEqual is === on primitives. Arrays and objects compare by
// identity, which is unknown.
func strictEqual(l, r any) (bool, bool) {
	switch l.(type) {
	case []any, value.Object:
		return false, false
	}
	switch r.(type) {
	case []any, value.Object:
		return false, false
	}
	if !sameType(l, r) {
		return false, true
	}
	return l == r, true
}

// jsString converts a primitive to a string the way String(v) does.
func jsString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "null", true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return value.FormatNumber(x), true
	case string:
		return x, true
	}
	return "", false
}
