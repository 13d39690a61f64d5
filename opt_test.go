package optional

import "testing"

func TestOptStates(t *testing.T) {
	if !Some(1).IsSome() || Some(1).IsNone() {
		t.Error("Some(1) state wrong")
	}
	if None[int]().IsSome() || !None[int]().IsNone() {
		t.Error("None state wrong")
	}
	var zero Opt[int]
	if zero != None[int]() {
		t.Error("zero value is not None")
	}
}

func TestOptGet(t *testing.T) {
	if v, ok := Some("a").Get(); !ok || v != "a" {
		t.Errorf("Some(a).Get() = %q, %v", v, ok)
	}
	if _, ok := None[string]().Get(); ok {
		t.Error("None.Get() reported a value")
	}
}

func TestOptOr(t *testing.T) {
	if got := Some(1).Or(9); got != 1 {
		t.Errorf("Or() = %d, want 1", got)
	}
	if got := None[int]().Or(9); got != 9 {
		t.Errorf("Or() = %d, want 9", got)
	}
	if got := None[int]().OrElse(func() int { return 5 }); got != 5 {
		t.Errorf("OrElse() = %d, want 5", got)
	}
	if got := None[int]().OrZero(); got != 0 {
		t.Errorf("OrZero() = %d, want 0", got)
	}
}

func TestOptMust(t *testing.T) {
	if got := Some(2).Must(); got != 2 {
		t.Errorf("Must() = %d, want 2", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic on None")
		}
	}()
	None[int]().Must()
}

func TestOptPtr(t *testing.T) {
	if p := Some(3).Ptr(); p == nil || *p != 3 {
		t.Errorf("Ptr() = %v", p)
	}
	if p := None[int]().Ptr(); p != nil {
		t.Errorf("None.Ptr() = %v, want nil", p)
	}
	v := 4
	if got := OptFromPtr(&v); got != Some(4) {
		t.Errorf("OptFromPtr(&4) = %v", got)
	}
	if got := OptFromPtr[int](nil); got != None[int]() {
		t.Errorf("OptFromPtr(nil) = %v, want None", got)
	}
}

func TestOptString(t *testing.T) {
	if got := Some(3).String(); got != "3" {
		t.Errorf("String() = %q", got)
	}
	if got := None[int]().String(); got != "none" {
		t.Errorf("String() = %q", got)
	}
}
