package vavr_test

import (
	"fmt"
	"testing"

	"github.com/texasbruce/vavr"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := vavr.Compose(g, f) // type-inference works out h = f . g
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestPipe(t *testing.T) {
	g := func(n int) int {
		return n * 2
	}
	f := func(n int) string {
		return fmt.Sprintf("%d", n)
	}
	s := vavr.Pipe(21, g, f)
	if s != "42" {
		t.Logf("pipe(21) = %q", s)
		t.Error("expected Pipe(21, *2, itoa) to return string 42")
	}
}

func TestConst(t *testing.T) {
	seven := vavr.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestUnit(t *testing.T) {
	nothing := vavr.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestIdentity(t *testing.T) {
	if vavr.Identity("Moin") != "Moin" {
		t.Error("expected Identity to hand back its argument, didn't")
	}
}
