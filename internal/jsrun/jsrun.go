// Package jsrun executes emitted bundles in an embedded goja runtime.
package jsrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dop251/goja"

	"jsbundle/internal/errs"
)

type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Timeout interrupts the script; 0 means no limit beyond ctx.
	Timeout time.Duration
	// Globals are defined before the script runs.
	Globals map[string]any
}

// Compile parses src without running it.
func Compile(name, src string) (*goja.Program, error) {
	prog, err := goja.Compile(name, src, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return prog, nil
}

// CheckFunctionBody reports whether body is valid as the body of
// function(exports, require) { ... }.
func CheckFunctionBody(name, body string) error {
	_, err := goja.Compile(name, "(function(exports, require) { "+body+" \n})", false)
	return err
}

// Run executes src to completion. Uncaught exceptions and interrupts are
// returned as RuntimeError.
func Run(ctx context.Context, name, src string, opts Options) error {
	prog, err := Compile(name, src)
	if err != nil {
		return errs.Runtime("syntax error in "+name, err)
	}

	vm := goja.New()
	if err := installConsole(vm, opts); err != nil {
		return err
	}
	for k, v := range opts.Globals {
		if err := vm.Set(k, v); err != nil {
			return fmt.Errorf("set global %s: %w", k, err)
		}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	_, err = vm.RunProgram(prog)
	if err == nil {
		return nil
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		cause, _ := interrupted.Value().(error)
		if cause == nil {
			cause = err
		}
		return errs.Runtime("execution interrupted", cause)
	}
	var ex *goja.Exception
	if errors.As(err, &ex) {
		return errs.Runtime("uncaught exception: "+ex.Value().String(), err)
	}
	return errs.Runtime("execution failed", err)
}

func installConsole(vm *goja.Runtime, opts Options) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	console := vm.NewObject()
	printer := func(w io.Writer) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				parts[i] = format(vm, arg)
			}
			_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
			return goja.Undefined()
		}
	}
	for name, w := range map[string]io.Writer{
		"log":   stdout,
		"info":  stdout,
		"debug": stdout,
		"warn":  stderr,
		"error": stderr,
	} {
		if err := console.Set(name, printer(w)); err != nil {
			return err
		}
	}
	return vm.Set("console", console)
}

// format: строки и примитивы как есть, объекты через JSON.stringify.
func format(vm *goja.Runtime, v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return v.String()
	}
	if _, isFunc := goja.AssertFunction(obj); isFunc {
		return "[Function]"
	}
	if obj.ClassName() == "Error" {
		return obj.String()
	}
	stringify, ok := goja.AssertFunction(vm.Get("JSON").ToObject(vm).Get("stringify"))
	if !ok {
		return obj.String()
	}
	res, err := stringify(goja.Undefined(), obj)
	if err != nil || goja.IsUndefined(res) {
		return obj.String()
	}
	return res.String()
}
