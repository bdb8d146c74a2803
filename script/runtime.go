// Package script provides a JavaScript playground for the layout
// engine. It uses the goja JavaScript engine (pure Go ES5.1+
// implementation) to run layout scenarios headlessly.
package script

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// Runtime wraps a goja JavaScript runtime with layout-specific
// functionality.
type Runtime struct {
	vm     *goja.Runtime
	out    io.Writer
	mu     sync.Mutex
	errors []error
}

// NewRuntime creates a new JavaScript runtime with the console and the
// grid factory installed. Console output goes to stdout.
func NewRuntime() *Runtime {
	r := &Runtime{
		vm:     goja.New(),
		out:    os.Stdout,
		errors: make([]error, 0),
	}

	r.setupConsole()
	r.setupGrid()

	return r
}

// SetOutput redirects console output.
func (r *Runtime) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Recover from panics in the goja parser/runtime
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.errors = append(r.errors, err)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.errors = append(r.errors, err)
	}
	return result, err
}

// RunFile executes the script at the given path.
func (r *Runtime) RunFile(path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: reading %s: %w", path, err)
	}
	_, err = r.Execute(string(code))
	return err
}

// Errors returns all errors collected so far.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}

// setupConsole creates the console object with log, warn, error, info.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()

	console.Set("log", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, "[WARN]", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, "[ERROR]", formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("info", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, "[INFO]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	r.vm.Set("console", console)
}

// formatArgs formats console arguments the way browsers do: joined with
// single spaces.
func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
