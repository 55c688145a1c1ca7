package tempo

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	n := NewNode("ghost")
	r := NewRunnerWithConfig(n, RunnerConfig{Debug: true})
	n.Dispose()

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic on Do with disposed node, got none")
		}
		msg := fmt.Sprint(rec)
		if !strings.Contains(msg, "disposed") || !strings.Contains(msg, "ghost") {
			t.Errorf("panic message should name the disposed node, got: %s", msg)
		}
	}()

	r.Do(Must(Delay(1)))
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	n := NewNode("ghost")
	r := NewRunner(n)
	n.Dispose()

	if _, err := r.Do(Must(Delay(1))); err != nil {
		t.Fatal(err)
	}
	if err := r.Step(0.1); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestDebugMode_ReentrantStepPanics(t *testing.T) {
	r := NewRunnerWithConfig(NewNode("looper"), RunnerConfig{Debug: true})
	nested := Must(CallFunc(func() error { return r.Step(0.1) }))
	mustDo(t, r, Must(Sequence(Must(Delay(0)), nested)))

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic on nested Step, got none")
		}
		msg := fmt.Sprint(rec)
		if !strings.Contains(msg, "during Step") || !strings.Contains(msg, "looper") {
			t.Errorf("unexpected panic message: %s", msg)
		}
	}()

	r.Step(0.1)
}

func TestDebugMode_ActiveCountWarning(t *testing.T) {
	r := NewRunnerWithConfig(NewNode("crowded"), RunnerConfig{Debug: true})
	tpl := Must(Delay(10))

	output := captureStderr(t, func() {
		for i := 0; i < debugMaxActive+1; i++ {
			if _, err := r.Do(tpl); err != nil {
				t.Error(err)
				return
			}
		}
	})

	if !strings.Contains(output, "warning: runner has") {
		t.Errorf("expected active count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_StepStats(t *testing.T) {
	r := NewRunnerWithConfig(NewNode("n"), RunnerConfig{Debug: true})
	mustDo(t, r, Place(Vec3{}))
	mustDo(t, r, Must(Delay(5)))

	output := captureStderr(t, func() {
		_ = r.Step(0.1)
	})

	if !strings.Contains(output, "[tempo] step:") {
		t.Errorf("expected step stats in stderr, got: %q", output)
	}
	if !strings.Contains(output, "advanced: 2 | reaped: 1 | active: 1") {
		t.Errorf("unexpected stats line: %q", output)
	}
}

func TestReleaseMode_NoStepStats(t *testing.T) {
	r := NewRunner(NewNode("n"))
	mustDo(t, r, Must(Delay(5)))

	output := captureStderr(t, func() {
		_ = r.Step(0.1)
	})
	if output != "" {
		t.Errorf("release mode wrote to stderr: %q", output)
	}
}
