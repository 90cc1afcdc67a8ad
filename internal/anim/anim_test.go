package anim

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{Linear, EaseInOut} {
		if got := e.Apply(0); !approx(got, 0) {
			t.Errorf("%s.Apply(0) = %v, want 0", e, got)
		}
		if got := e.Apply(1); !approx(got, 1) {
			t.Errorf("%s.Apply(1) = %v, want 1", e, got)
		}
		if got := e.Apply(-3); !approx(got, 0) {
			t.Errorf("%s.Apply(-3) = %v, want clamp to 0", e, got)
		}
		if got := e.Apply(7); !approx(got, 1) {
			t.Errorf("%s.Apply(7) = %v, want clamp to 1", e, got)
		}
	}
}

func TestEaseInOutShape(t *testing.T) {
	if got := EaseInOut.Apply(0.5); !approx(got, 0.5) {
		t.Errorf("EaseInOut.Apply(0.5) = %v, want 0.5 (symmetric)", got)
	}
	for _, x := range []float64{0.05, 0.2, 0.35, 0.45} {
		if sum := EaseInOut.Apply(x) + EaseInOut.Apply(1-x); math.Abs(sum-1) > 1e-5 {
			t.Errorf("EaseInOut(%v) + EaseInOut(%v) = %v, want 1", x, 1-x, sum)
		}
	}
	if got := EaseInOut.Apply(0.25); approx(got, 0.25) {
		t.Errorf("EaseInOut.Apply(0.25) = %v, should differ from linear", got)
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut.Apply(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("EaseInOut not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestEasingString(t *testing.T) {
	if Linear.String() != "linear" || EaseInOut.String() != "ease-in-out" {
		t.Errorf("unexpected names %q %q", Linear, EaseInOut)
	}
	if Easing(42).String() != "unknown" {
		t.Error("unknown easing should stringify as unknown")
	}
	if got := Easing(42).Apply(0.25); !approx(got, 0.25) {
		t.Errorf("unknown easing should be linear, got %v", got)
	}
}

func TestTweenLinear(t *testing.T) {
	tw := NewTween(0, 200, epoch, 300*time.Millisecond, Linear)

	tests := []struct {
		at   time.Duration
		want float64
		done bool
	}{
		{0, 0, false},
		{150 * time.Millisecond, 100, false},
		{299 * time.Millisecond, 200 * 299.0 / 300.0, false},
		{300 * time.Millisecond, 200, true},
		{time.Second, 200, true},
		{-time.Second, 0, false},
	}
	for _, tt := range tests {
		now := epoch.Add(tt.at)
		if got := tw.Value(now); !approx(got, tt.want) {
			t.Errorf("Value(+%v) = %v, want %v", tt.at, got, tt.want)
		}
		if got := tw.Done(now); got != tt.done {
			t.Errorf("Done(+%v) = %v, want %v", tt.at, got, tt.done)
		}
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween(0.3, 1, epoch, 0, EaseInOut)
	if !tw.Done(epoch) || tw.Value(epoch) != 1 {
		t.Errorf("zero-duration tween should be done at start, value %v", tw.Value(epoch))
	}
}

func TestTweenDescending(t *testing.T) {
	tw := NewTween(1, 0, epoch, 300*time.Millisecond, Linear)
	if got := tw.Value(epoch.Add(75 * time.Millisecond)); !approx(got, 0.75) {
		t.Errorf("Value = %v, want 0.75", got)
	}
}

func TestSpringParams(t *testing.T) {
	freq, ratio := SpringParams(120, 8)
	// stiffness 519.8, damping 25
	if !approx(freq*freq, 519.8) {
		t.Errorf("stiffness = %v, want 519.8", freq*freq)
	}
	if math.Abs(ratio-25/(2*math.Sqrt(519.8))) > 1e-9 {
		t.Errorf("damping ratio = %v", ratio)
	}
	if ratio <= 0 || ratio >= 1 {
		t.Errorf("tension 120 / friction 8 should be under-damped, ratio %v", ratio)
	}
}

func TestSpringSettlesOnTarget(t *testing.T) {
	s := NewSpring(120, 8)
	s.Start(200, 0, epoch)
	if s.AtRest() {
		t.Fatal("spring should be moving after Start")
	}

	now := epoch
	overshoot := false
	for i := 0; i < 300 && !s.AtRest(); i++ {
		now = now.Add(16 * time.Millisecond)
		if v := s.Advance(now); v < 0 {
			overshoot = true
		}
	}

	if !s.AtRest() {
		t.Fatalf("spring did not settle, value %v velocity %v", s.Value(), s.Velocity())
	}
	if s.Value() != 0 {
		t.Errorf("settled value = %v, want exactly 0", s.Value())
	}
	if !overshoot {
		t.Error("under-damped spring should overshoot its target")
	}
}

func TestSpringAdvanceIsIdempotentForSameInstant(t *testing.T) {
	s := NewSpring(120, 8)
	s.Start(100, 0, epoch)
	now := epoch.Add(50 * time.Millisecond)
	a := s.Advance(now)
	b := s.Advance(now)
	if a != b {
		t.Errorf("advancing to the same instant changed value: %v -> %v", a, b)
	}
	if a >= 100 {
		t.Errorf("spring should have moved toward 0, got %v", a)
	}
}

func TestSpringStartAtTargetIsRest(t *testing.T) {
	s := NewSpring(120, 8)
	s.Start(0, 0, epoch)
	if !s.AtRest() {
		t.Error("starting on target should be at rest")
	}
	s.Set(42)
	if !s.AtRest() || s.Value() != 42 || s.Target() != 42 {
		t.Errorf("Set should park the spring, got value %v target %v", s.Value(), s.Target())
	}
}
