package tempo

import (
	"errors"
	"testing"
)

func TestCallFuncFiresOnceOnStart(t *testing.T) {
	r := NewRunner(NewNode("n"))
	calls := 0
	h := mustDo(t, r, Must(CallFunc(func() error {
		calls++
		return nil
	})))

	if calls != 1 {
		t.Fatalf("calls = %d after Do, want 1", calls)
	}
	if !h.Done() {
		t.Error("CallFunc should be done immediately")
	}
	stepN(t, r, 3, 0.1)
	if calls != 1 {
		t.Errorf("calls = %d after stepping, want 1", calls)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestCallFuncBoundArguments(t *testing.T) {
	r := NewRunner(NewNode("n"))
	var got []string
	say := func(words ...string) func() error {
		return func() error {
			got = append(got, words...)
			return nil
		}
	}
	mustDo(t, r, Must(CallFunc(say("hello", "world"))))
	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Errorf("got %v", got)
	}
}

func TestCallFuncSReceivesTarget(t *testing.T) {
	n := NewNode("target")
	r := NewRunner(n)
	var seen Animatable
	mustDo(t, r, Must(CallFuncS(func(target Animatable) error {
		seen = target
		target.SetScale(4)
		return nil
	})))
	if seen != Animatable(n) {
		t.Errorf("callback target = %v, want node", seen)
	}
	assertFloat(t, "scale", n.Scale(), 4)
}

func TestCallFuncErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := NewRunner(NewNode("n"))
	h, err := r.Do(Must(CallFunc(func() error { return boom })))
	if h != nil {
		t.Error("failed start should not return a handle")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	var cbErr *CallbackError
	if !errors.As(err, &cbErr) || cbErr.Action != "CallFunc" {
		t.Errorf("err = %#v, want *CallbackError for CallFunc", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestCallFuncNil(t *testing.T) {
	if _, err := CallFunc(nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("CallFunc(nil) err = %v", err)
	}
	if _, err := CallFuncS(nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("CallFuncS(nil) err = %v", err)
	}
}

func TestDelayGate(t *testing.T) {
	r := NewRunner(NewNode("n"))
	h := mustDo(t, r, Must(Delay(1)))

	stepN(t, r, 2, 0.5)
	if h.Done() {
		t.Fatal("delay should still hold at exactly its length")
	}
	stepN(t, r, 1, 0.5)
	if !h.Done() {
		t.Fatal("delay should open once its length has passed")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestDelayExactSingleStepHolds(t *testing.T) {
	r := NewRunner(NewNode("n"))
	h := mustDo(t, r, Must(Delay(1)))

	stepN(t, r, 1, 1)
	if h.Done() {
		t.Fatal("Delay(1) should hold after a single step of exactly 1")
	}
	stepN(t, r, 1, 0.01)
	if !h.Done() {
		t.Fatal("Delay(1) should open on the next step")
	}
}

func TestDelayHasNoVisibleEffect(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(Vec3{1, 2, 3})
	n.SetAngle(45)
	n.ClearDirty()
	r := NewRunner(n)
	mustDo(t, r, Must(Delay(0.5)))
	stepN(t, r, 3, 0.25)
	if n.Dirty() {
		t.Error("Delay should not touch the target")
	}
}

func TestDelayValidation(t *testing.T) {
	if _, err := Delay(-1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Delay(-1) err = %v", err)
	}
	if _, err := Delay(0); err != nil {
		t.Errorf("Delay(0) err = %v", err)
	}
	if _, err := RandomDelay(2, 1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("RandomDelay(2, 1) err = %v", err)
	}
	if _, err := RandomDelay(-1, 1); !errors.Is(err, ErrConfiguration) {
		t.Errorf("RandomDelay(-1, 1) err = %v", err)
	}
}

func TestRandomDelaySampledOnce(t *testing.T) {
	tpl := Must(RandomDelay(0.5, 1.5))
	a := tpl.NewAction().(*delayAction)
	b := tpl.NewAction().(*delayAction)

	if a.Seconds() < 0.5 || a.Seconds() > 1.5 {
		t.Errorf("Seconds = %v, outside [0.5, 1.5]", a.Seconds())
	}
	if a.Seconds() != b.Seconds() {
		t.Errorf("instances disagree: %v vs %v", a.Seconds(), b.Seconds())
	}

	r := NewRunner(NewNode("n"))
	if err := a.Start(r); err != nil {
		t.Fatal(err)
	}
	before := a.Seconds()
	if err := a.Restart(); err != nil {
		t.Fatal(err)
	}
	if a.Seconds() != before {
		t.Error("restart re-sampled the delay")
	}
}

func TestRandomDelayDegenerateRange(t *testing.T) {
	a := Must(RandomDelay(2, 2)).NewAction().(*delayAction)
	if a.Seconds() != 2 {
		t.Errorf("Seconds = %v, want 2", a.Seconds())
	}
}
