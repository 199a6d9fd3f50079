// Package builtins holds the process-wide table of host-provided
// functions callable by name from Lumen source (spec.md §4.D). The
// table and every entry in it are initialized once at startup and are
// immutable thereafter; lexical lookup always takes priority over a
// builtin of the same name (spec.md §4.D, §5).
package builtins

import (
	"fmt"
	"io"

	"github.com/lumenlang/lumen/internal/runtime"
)

// Table maps a builtin's name to its callable value. New is the only
// thing that should ever be called to obtain one: callers that need
// `puts` to write somewhere other than os.Stdout (tests, the REPL
// capturing output for `:ast` echoing, embedding hosts) pass their own
// io.Writer rather than reaching into a global.
type Table map[string]*runtime.Builtin

// New builds the builtin table, wiring `puts` to write to out.
func New(out io.Writer) Table {
	return Table{
		"len":   {Fn: builtinLen},
		"first": {Fn: builtinFirst},
		"last":  {Fn: builtinLast},
		"rest":  {Fn: builtinRest},
		"push":  {Fn: builtinPush},
		"puts":  {Fn: builtinPuts(out)},
	}
}

func builtinLen(args ...runtime.Value) runtime.Value {
	if len(args) != 1 {
		return runtime.NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *runtime.String:
		return &runtime.Integer{Value: int64(len(arg.Value))}
	case *runtime.Array:
		return &runtime.Integer{Value: int64(len(arg.Elements))}
	default:
		return runtime.NewError("argument to `len` not supported, got %s", args[0].Type())
	}
}

func builtinFirst(args ...runtime.Value) runtime.Value {
	if len(args) != 1 {
		return runtime.NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*runtime.Array)
	if !ok {
		return runtime.NewError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return runtime.NULL
	}
	return arr.Elements[0]
}

func builtinLast(args ...runtime.Value) runtime.Value {
	if len(args) != 1 {
		return runtime.NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*runtime.Array)
	if !ok {
		return runtime.NewError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return runtime.NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args ...runtime.Value) runtime.Value {
	if len(args) != 1 {
		return runtime.NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*runtime.Array)
	if !ok {
		return runtime.NewError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return runtime.NULL
	}
	newElements := make([]runtime.Value, length-1)
	copy(newElements, arr.Elements[1:length])
	return &runtime.Array{Elements: newElements}
}

func builtinPush(args ...runtime.Value) runtime.Value {
	if len(args) != 2 {
		return runtime.NewError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*runtime.Array)
	if !ok {
		return runtime.NewError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]runtime.Value, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &runtime.Array{Elements: newElements}
}

// builtinPuts returns a `puts` implementation bound to out. Each
// argument's display form is written followed by a newline; an Error
// argument is printed with the ERROR: prefix spec.md §9 recommends,
// since puts is the only place a user program can surface an error
// value's text without evaluate() itself returning it.
func builtinPuts(out io.Writer) runtime.BuiltinFunction {
	return func(args ...runtime.Value) runtime.Value {
		for _, arg := range args {
			if err, ok := arg.(*runtime.Error); ok {
				fmt.Fprintln(out, "ERROR: "+err.Message)
				continue
			}
			fmt.Fprintln(out, arg.Inspect())
		}
		return runtime.NULL
	}
}
