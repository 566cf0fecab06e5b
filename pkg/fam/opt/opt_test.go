package opt

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/ib-77/fam3/pkg/fam"
)

func TestMap_Present(t *testing.T) {
	t.Parallel()

	out := Map(fam.Present("hello"), func(v string) int { return len(v) })
	if v, ok := out.Get(); !ok || v != 5 {
		t.Fatalf("expected Present(5), got %v present=%v", v, ok)
	}
}

func TestMap_AbsentNeverInvokesTransform(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Map(fam.Absent[string](), func(v string) int {
		calls++
		return len(v)
	})

	if calls != 0 {
		t.Fatalf("transform must never run on absence, ran %d times", calls)
	}
	if !out.IsAbsent() {
		t.Fatal("expected absent")
	}
}

func TestMap_FunctorIdentity(t *testing.T) {
	t.Parallel()

	if v, ok := Map(fam.Present(9), fam.Identity[int]).Get(); !ok || v != 9 {
		t.Fatal("map with identity must preserve the value")
	}
	if !Map(fam.Absent[int](), fam.Identity[int]).IsAbsent() {
		t.Fatal("map with identity must preserve absence")
	}
}

func TestApply_TruthTable(t *testing.T) {
	t.Parallel()

	square := func(v int) int { return v * v }

	if v, ok := Apply(fam.Present(5), fam.Present(square)).Get(); !ok || v != 25 {
		t.Fatalf("expected Present(25), got %v present=%v", v, ok)
	}
	if !Apply(fam.Absent[int](), fam.Present(square)).IsAbsent() {
		t.Fatal("absent value must yield absent")
	}
	if !Apply(fam.Present(5), fam.Absent[func(int) int]()).IsAbsent() {
		t.Fatal("absent transform must yield absent")
	}
	if !Apply(fam.Absent[int](), fam.Absent[func(int) int]()).IsAbsent() {
		t.Fatal("both absent must yield absent")
	}
}

func TestApply_AbsentNeverInvokesTransform(t *testing.T) {
	t.Parallel()

	calls := 0
	spy := func(v int) int {
		calls++
		return v
	}
	Apply(fam.Absent[int](), fam.Present(spy))
	if calls != 0 {
		t.Fatalf("transform must never run when the value is absent, ran %d times", calls)
	}
}

func TestFlatMap_MonadLaws(t *testing.T) {
	t.Parallel()

	f := func(v int) fam.Optional[string] { return fam.Present(strconv.Itoa(v)) }
	g := func(s string) fam.Optional[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fam.Absent[int]()
		}
		return fam.Present(n * 2)
	}

	// left identity
	if l, direct := FlatMap(Wrap(3), f), f(3); l != direct {
		t.Fatalf("left identity violated: %v vs %v", l, direct)
	}

	// right identity
	p := fam.Present(4)
	if FlatMap(p, Wrap[int]) != p {
		t.Fatal("right identity violated for Present")
	}
	if !FlatMap(fam.Absent[int](), Wrap[int]).IsAbsent() {
		t.Fatal("right identity violated for Absent")
	}

	// associativity
	left := FlatMap(FlatMap(p, f), g)
	right := FlatMap(p, func(v int) fam.Optional[int] { return FlatMap(f(v), g) })
	if left != right {
		t.Fatalf("associativity violated: %v vs %v", left, right)
	}
}

func TestFlatMap_MonadLaws_Randomized(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))

	for range 50 {
		a := rng.Intn(10)
		f := func(v int) fam.Optional[int] {
			if v%2 == 0 {
				return fam.Present(v + a)
			}
			return fam.Absent[int]()
		}
		g := func(v int) fam.Optional[int] {
			if v > a {
				return fam.Present(v * 3)
			}
			return fam.Absent[int]()
		}

		o := fam.Present(rng.Intn(100))
		if rng.Intn(4) == 0 {
			o = fam.Absent[int]()
		}

		if FlatMap(o, Wrap[int]) != o {
			t.Fatalf("right identity violated for %v", o)
		}
		left := FlatMap(FlatMap(o, f), g)
		right := FlatMap(o, func(v int) fam.Optional[int] { return FlatMap(f(v), g) })
		if left != right {
			t.Fatalf("associativity violated for %v: %v vs %v", o, left, right)
		}
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := Finally(fam.Present(2),
		func(v int) string { return "value:" + strconv.Itoa(v) },
		func() string { return "none" })
	if got != "value:2" {
		t.Fatalf("expected value:2, got %q", got)
	}

	got = Finally(fam.Absent[int](),
		func(v int) string { return "value" },
		func() string { return "none" })
	if got != "none" {
		t.Fatalf("expected none, got %q", got)
	}
}

func TestBridges(t *testing.T) {
	t.Parallel()

	missing := errors.New("missing")

	r := ToResult(fam.Present(1), missing)
	if !r.IsSuccess() || r.Value() != 1 {
		t.Fatalf("expected Success(1), got %v", r.Err())
	}

	r = ToResult(fam.Absent[int](), missing)
	if !r.IsFailure() || r.Err() != missing {
		t.Fatalf("expected the supplied error, got %v", r.Err())
	}

	if v, ok := FromResult(fam.Success(7)).Get(); !ok || v != 7 {
		t.Fatal("expected Present(7)")
	}
	if !FromResult(fam.Fail[int](missing)).IsAbsent() {
		t.Fatal("expected absent for a failed result")
	}

	n := 3
	if v, ok := FromPtr(&n).Get(); !ok || v != 3 {
		t.Fatal("expected Present(3)")
	}
	if !FromPtr[int](nil).IsAbsent() {
		t.Fatal("expected absent for nil pointer")
	}
}
