// Package anim provides the time-sampled interpolations used by the drawer:
// fixed-duration tweens and a tension/friction spring. Both are plain values
// sampled with an explicit clock so a new target can replace an in-flight one.
package anim

import "time"

// Tween interpolates from From to To over Duration starting at Start
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Easing   Easing
}

// NewTween starts a tween at now
func NewTween(from, to float64, now time.Time, d time.Duration, e Easing) Tween {
	return Tween{From: from, To: to, Start: now, Duration: d, Easing: e}
}

// Progress returns the linear fraction of Duration elapsed at now, in [0,1]
func (t Tween) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(t.Start)) / float64(t.Duration))
}

// Value samples the tween at now
func (t Tween) Value(now time.Time) float64 {
	p := t.Progress(now)
	if p >= 1 {
		return t.To
	}
	return t.From + (t.To-t.From)*t.Easing.Apply(p)
}

// Done reports whether the tween has reached its target at now
func (t Tween) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}
