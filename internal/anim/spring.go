package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Rest thresholds: once both displacement and speed fall under these the
// spring snaps to its target and stops.
const (
	RestDisplacement = 0.001
	RestSpeed        = 0.001
)

// SpringFPS is the fixed integration rate
const SpringFPS = 60

// maxCatchUp bounds how much elapsed time one Advance call integrates.
const maxCatchUp = 5 * time.Second

// Spring drives a value toward a target with a damped harmonic spring
type Spring struct {
	spring harmonica.Spring
	step   time.Duration

	pos    float64
	vel    float64
	target float64

	last time.Time
	acc  time.Duration
	rest bool
}

// SpringParams converts Origami-style tension/friction into angular
// frequency and damping ratio for a unit mass.
func SpringParams(tension, friction float64) (angularFrequency, dampingRatio float64) {
	stiffness := (tension-30)*3.62 + 194
	damping := (friction-8)*3 + 25
	if stiffness <= 0 {
		stiffness = 1
	}
	if damping < 0 {
		damping = 0
	}
	angularFrequency = math.Sqrt(stiffness)
	dampingRatio = damping / (2 * angularFrequency)
	return angularFrequency, dampingRatio
}

// NewSpring builds a spring from tension/friction. It starts at rest at 0.
func NewSpring(tension, friction float64) *Spring {
	freq, ratio := SpringParams(tension, friction)
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(SpringFPS), freq, ratio),
		step:   time.Second / SpringFPS,
		rest:   true,
	}
}

// Start restarts the spring from pos with zero velocity, heading to target
func (s *Spring) Start(pos, target float64, now time.Time) {
	s.pos = pos
	s.vel = 0
	s.target = target
	s.last = now
	s.acc = 0
	s.rest = false
	s.settleIfClose()
}

// Set places the spring at pos, at rest
func (s *Spring) Set(pos float64) {
	s.pos = pos
	s.vel = 0
	s.target = pos
	s.acc = 0
	s.rest = true
}

// Advance integrates up to now and returns the current value
func (s *Spring) Advance(now time.Time) float64 {
	if s.rest {
		return s.pos
	}
	elapsed := now.Sub(s.last)
	if elapsed <= 0 {
		return s.pos
	}
	if elapsed > maxCatchUp {
		elapsed = maxCatchUp
	}
	s.last = now
	s.acc += elapsed

	for s.acc >= s.step && !s.rest {
		s.acc -= s.step
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
		s.settleIfClose()
	}
	return s.pos
}

func (s *Spring) settleIfClose() {
	if math.Abs(s.pos-s.target) <= RestDisplacement && math.Abs(s.vel) <= RestSpeed {
		s.pos = s.target
		s.vel = 0
		s.acc = 0
		s.rest = true
	}
}

// Value returns the last integrated value
func (s *Spring) Value() float64 { return s.pos }

// Velocity returns the last integrated velocity
func (s *Spring) Velocity() float64 { return s.vel }

// Target returns the value the spring is heading toward
func (s *Spring) Target() float64 { return s.target }

// AtRest reports whether the spring has settled on its target
func (s *Spring) AtRest() bool { return s.rest }
