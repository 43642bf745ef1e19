package jsrun

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jsbundle/internal/errs"
)

func TestRunConsole(t *testing.T) {
	var out, errOut bytes.Buffer
	src := `console.log('a', 1, true, null, {x: [1, 2]}); console.error('bad'); console.log(() => 1);`
	if err := Run(context.Background(), "t.js", src, Options{Stdout: &out, Stderr: &errOut}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "a 1 true null {\"x\":[1,2]}\n[Function]\n" {
		t.Errorf("stdout = %q", got)
	}
	if errOut.String() != "bad\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunException(t *testing.T) {
	err := Run(context.Background(), "t.js", `throw new Error("boom")`, Options{})
	if !errors.Is(err, errs.ErrRuntime) || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunTimeout(t *testing.T) {
	start := time.Now()
	err := Run(context.Background(), "loop.js", `for (;;) {}`, Options{Timeout: 50 * time.Millisecond})
	if !errors.Is(err, errs.ErrRuntime) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want interrupted by deadline", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("interrupt took too long")
	}
}

func TestRunSyntaxError(t *testing.T) {
	err := Run(context.Background(), "bad.js", `function (`, Options{})
	if !errors.Is(err, errs.ErrRuntime) {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckFunctionBody(t *testing.T) {
	if err := CheckFunctionBody("ok.js", "exports.default = 1; // trailing"); err != nil {
		t.Errorf("valid body rejected: %v", err)
	}
	if err := CheckFunctionBody("bad.js", "exports.default = ;"); err == nil {
		t.Errorf("invalid body accepted")
	}
}

func TestGlobals(t *testing.T) {
	var got int64
	err := Run(context.Background(), "g.js", `report(40 + 2)`, Options{
		Globals: map[string]any{"report": func(v int64) { got = v }},
	})
	if err != nil || got != 42 {
		t.Fatalf("got %d, err %v", got, err)
	}
}
