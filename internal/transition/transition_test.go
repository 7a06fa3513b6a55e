package transition

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

const tick = time.Second / 60

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEasings(t *testing.T) {
	eases := map[string]Ease{
		"linear":           Linear,
		"quadratic-in":     QuadraticIn,
		"quadratic-out":    QuadraticOut,
		"quadratic-in-out": QuadraticInOut,
		"cubic-in-out":     CubicInOut,
		"sine-in-out":      SineInOut,
	}
	for name, f := range eases {
		if !near(f(0), 0) || !near(f(1), 1) {
			t.Errorf("%s: f(0)=%v f(1)=%v, expected 0 and 1", name, f(0), f(1))
		}
		if _, err := EaseByName(name); err != nil {
			t.Errorf("EaseByName(%q) error: %v", name, err)
		}
	}
	if !near(QuadraticIn(0.5), 0.25) {
		t.Errorf("QuadraticIn(0.5) = %v, expected 0.25", QuadraticIn(0.5))
	}
	if !near(CubicInOut(0.5), 0.5) {
		t.Errorf("CubicInOut(0.5) = %v, expected 0.5", CubicInOut(0.5))
	}
	if _, err := EaseByName("bounce"); err == nil {
		t.Error("EaseByName(bounce) should fail")
	}
}

func TestTween(t *testing.T) {
	tw := NewTween(core.Transparent, core.White, 500*time.Millisecond, QuadraticIn)
	tw.Advance(250 * time.Millisecond)

	if !near(tw.Progress(), 0.5) {
		t.Errorf("Progress() = %v, expected 0.5", tw.Progress())
	}
	if !near(tw.Value().A, 0.25) {
		t.Errorf("alpha = %v, expected 0.25", tw.Value().A)
	}
	if tw.Done() {
		t.Error("tween should not be done at half time")
	}

	tw.Advance(time.Second)
	if !tw.Done() || tw.Value() != core.White {
		t.Errorf("after overshoot: done=%v value=%+v, expected done white", tw.Done(), tw.Value())
	}
}

func TestShowFadesIn(t *testing.T) {
	a := NewAnimator(DefaultOptions())
	e := NewElement("title", "Runner", core.White)
	a.Add(e)

	if e.Visible || e.Color.A != 0 {
		t.Fatalf("new element should be hidden and transparent, got %+v", e)
	}

	a.Show()
	if a.Mode() != Show {
		t.Errorf("Mode() = %v, expected Show", a.Mode())
	}
	a.Tick(tick)
	if a.Mode() != Idle {
		t.Errorf("Mode() after tick = %v, expected Idle", a.Mode())
	}
	if !e.Visible {
		t.Error("element should be visible once the show fade passes the threshold")
	}

	for i := 0; i < 40; i++ {
		a.Tick(tick)
	}
	if e.Color != core.White {
		t.Errorf("Color = %+v, expected white", e.Color)
	}
	if e.Fading() || a.Busy() {
		t.Error("fade should be finished")
	}
}

func TestHideBecomesInvisibleNearEnd(t *testing.T) {
	a := NewAnimator(DefaultOptions())
	e := NewElement("item", "Play", core.White)
	e.Color = core.White
	e.Visible = true
	a.Add(e)

	a.Hide()
	a.Tick(400 * time.Millisecond)
	if !e.Visible {
		t.Error("element should stay visible mid hide")
	}
	a.Tick(95 * time.Millisecond)
	if e.Visible {
		t.Error("element should be hidden at 99% progress")
	}
	if e.Color.A >= 0.03 {
		t.Errorf("alpha = %v, expected near 0", e.Color.A)
	}
}

func TestShowInterruptsHideFromCurrentAlpha(t *testing.T) {
	a := NewAnimator(DefaultOptions())
	e := NewElement("item", "Play", core.White)
	e.Color = core.White
	e.Visible = true
	a.Add(e)

	a.Hide()
	a.Tick(250 * time.Millisecond)
	if !near(e.Color.A, 0.75) {
		t.Fatalf("alpha at 50%% hide = %v, expected 0.75", e.Color.A)
	}

	a.Show()
	a.Tick(0)
	if !near(e.Color.A, 0.75) {
		t.Errorf("alpha at show start = %v, expected 0.75 (no snap to transparent)", e.Color.A)
	}
	if !e.Visible {
		t.Error("element should remain visible")
	}

	a.Tick(250 * time.Millisecond)
	// 0.75 + (1 - 0.75) * 0.25
	if !near(e.Color.A, 0.8125) {
		t.Errorf("alpha at 50%% show = %v, expected 0.8125", e.Color.A)
	}
}

func TestRemoveAndClear(t *testing.T) {
	a := NewAnimator(DefaultOptions())
	a.Add(NewElement("a", "A", core.White), NewElement("b", "B", core.White))
	a.Remove("a")
	if _, ok := a.Element("a"); ok {
		t.Error("element a should be removed")
	}
	if _, ok := a.Element("b"); !ok {
		t.Error("element b should remain")
	}
	a.Clear()
	if len(a.Elements()) != 0 {
		t.Error("Clear() should drop all elements")
	}
}

func TestPulseMirrors(t *testing.T) {
	p := NewPulse(core.Transparent, core.White, 500*time.Millisecond, Linear)

	p.Advance(250 * time.Millisecond)
	if p.Leg() != 0 || !near(p.Value().A, 0.5) {
		t.Errorf("leg %d alpha %v, expected leg 0 alpha 0.5", p.Leg(), p.Value().A)
	}

	p.Advance(375 * time.Millisecond)
	if p.Leg() != 1 || !near(p.Value().A, 0.75) {
		t.Errorf("leg %d alpha %v, expected leg 1 alpha 0.75", p.Leg(), p.Value().A)
	}

	p.Reset()
	if p.Leg() != 0 || p.Progress() != 0 {
		t.Error("Reset() should restart the first leg")
	}
}
