// Package drawer implements the bottom "Create New" drawer: its
// open/close animation state machine, drag-to-dismiss gesture handling and
// the settle callbacks it reports to the host screen.
//
// The controller is a plain value driven by the host's event loop. Every call
// that can start an animation takes the current time, and Tick samples the
// running interpolations. Calls that do not make sense in the current phase
// are ignored; nothing here returns an error.
package drawer

import (
	"log/slog"
	"math"
	"time"

	"github.com/marcus/wingsfly/internal/anim"
	"github.com/marcus/wingsfly/internal/models"
)

// Config holds the drawer geometry, gesture and animation parameters.
// Distances are in layout units; the host decides how units map to cells.
type Config struct {
	ViewportHeight      float64
	PanelHeightFraction float64
	DragThreshold       float64
	DismissFraction     float64
	OpenDuration        time.Duration
	CloseDuration       time.Duration
	SpringTension       float64
	SpringFriction      float64
}

// Defaults
const (
	DefaultPanelHeightFraction = 0.6
	DefaultDragThreshold       = 10
	DefaultDismissFraction     = 0.3
	DefaultDuration            = 300 * time.Millisecond
	DefaultSpringTension       = 120
	DefaultSpringFriction      = 8
)

// DefaultConfig returns the stock drawer parameters for a viewport height
func DefaultConfig(viewportHeight float64) Config {
	return Config{
		ViewportHeight:      viewportHeight,
		PanelHeightFraction: DefaultPanelHeightFraction,
		DragThreshold:       DefaultDragThreshold,
		DismissFraction:     DefaultDismissFraction,
		OpenDuration:        DefaultDuration,
		CloseDuration:       DefaultDuration,
		SpringTension:       DefaultSpringTension,
		SpringFriction:      DefaultSpringFriction,
	}
}

// ConfigFrom converts the loaded configuration into controller parameters
func ConfigFrom(dc models.DrawerConfig, viewportHeight float64) Config {
	return Config{
		ViewportHeight:      viewportHeight,
		PanelHeightFraction: dc.HeightFraction,
		DragThreshold:       dc.DragThreshold,
		DismissFraction:     dc.DismissFraction,
		OpenDuration:        time.Duration(dc.OpenMillis) * time.Millisecond,
		CloseDuration:       time.Duration(dc.CloseMillis) * time.Millisecond,
		SpringTension:       dc.SpringTension,
		SpringFriction:      dc.SpringFriction,
	}
}

func (c Config) withDefaults() Config {
	if c.ViewportHeight < 0 {
		c.ViewportHeight = 0
	}
	if c.PanelHeightFraction <= 0 || c.PanelHeightFraction > 1 {
		c.PanelHeightFraction = DefaultPanelHeightFraction
	}
	if c.DragThreshold < 0 {
		c.DragThreshold = DefaultDragThreshold
	}
	if c.DismissFraction <= 0 || c.DismissFraction > 1 {
		c.DismissFraction = DefaultDismissFraction
	}
	if c.OpenDuration <= 0 {
		c.OpenDuration = DefaultDuration
	}
	if c.CloseDuration <= 0 {
		c.CloseDuration = DefaultDuration
	}
	if c.SpringTension <= 0 {
		c.SpringTension = DefaultSpringTension
	}
	if c.SpringFriction <= 0 {
		c.SpringFriction = DefaultSpringFriction
	}
	return c
}

// State is a snapshot of the drawer for rendering
type State struct {
	Phase         Phase
	DragOffset    float64 // distance below the resting position, >= 0
	BackdropAlpha float64 // 0 transparent .. 1 fully dimmed
}

// Option configures a Controller
type Option func(*Controller)

// WithOnClose sets the callback fired once each time a close animation settles
func WithOnClose(fn func()) Option {
	return func(c *Controller) { c.onClose = fn }
}

// WithOnOptionSelect sets the callback fired when an option is picked
func WithOnOptionSelect(fn func(models.SelectableOption)) Option {
	return func(c *Controller) { c.onOptionSelect = fn }
}

// WithLogger sets the logger used for transition tracing
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns the drawer state. Only the controller mutates it.
type Controller struct {
	cfg Config

	phase  Phase
	offset float64
	alpha  float64

	animating    bool
	offsetSpring *anim.Spring
	offsetTween  anim.Tween
	springOffset bool
	alphaTween   anim.Tween

	// gesture
	pressed    bool
	recognized bool
	dragDY     float64

	onClose        func()
	onOptionSelect func(models.SelectableOption)
	log            *slog.Logger
}

// New creates a closed drawer
func New(cfg Config, opts ...Option) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		cfg:          cfg,
		phase:        Closed,
		offsetSpring: anim.NewSpring(cfg.SpringTension, cfg.SpringFriction),
		log:          slog.New(slog.DiscardHandler),
	}
	c.offset = c.PanelHeight()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PanelHeight returns the drawer height in layout units
func (c *Controller) PanelHeight() float64 {
	return c.cfg.ViewportHeight * c.cfg.PanelHeightFraction
}

// DismissDistance returns the drag distance that must be exceeded to dismiss
func (c *Controller) DismissDistance() float64 {
	return c.PanelHeight() * c.cfg.DismissFraction
}

// Config returns the effective parameters
func (c *Controller) Config() Config { return c.cfg }

// State returns the current snapshot. Call Tick first to advance animations.
func (c *Controller) State() State {
	return State{Phase: c.phase, DragOffset: c.offset, BackdropAlpha: c.alpha}
}

// Phase returns the current phase
func (c *Controller) Phase() Phase { return c.phase }

// Animating reports whether an interpolation is in flight and Tick should be
// called again
func (c *Controller) Animating() bool { return c.animating }

// Dragging reports whether a pointer gesture is currently held
func (c *Controller) Dragging() bool { return c.pressed }

// SetViewportHeight updates the viewport the panel height derives from.
// A closed drawer stays parked just below the new panel height.
func (c *Controller) SetViewportHeight(h float64) {
	if h < 0 {
		h = 0
	}
	c.cfg.ViewportHeight = h
	if c.phase == Closed {
		c.offset = c.PanelHeight()
	}
}

// SetVisible applies the host's desired visibility. Becoming visible opens
// the drawer; becoming invisible outside the animated close path resets it to
// Closed immediately without firing OnClose.
func (c *Controller) SetVisible(visible bool, now time.Time) {
	if visible {
		c.Open(now)
		return
	}
	if !c.transition(TriggerReset, "reset") {
		return
	}
	c.resetGesture()
	c.animating = false
	c.offset = c.PanelHeight()
	c.alpha = 0
	c.offsetSpring.Set(c.offset)
}

// Open animates the panel to its resting position. No-op while Open or Opening.
func (c *Controller) Open(now time.Time) {
	c.sample(now)
	if !c.transition(TriggerOpen, "open") {
		return
	}
	c.resetGesture()
	c.startOpen(now)
}

// Close animates the panel off-screen; OnClose fires when it settles.
// No-op while Closed or Closing.
func (c *Controller) Close(now time.Time) {
	c.sample(now)
	if !c.transition(TriggerClose, "close") {
		return
	}
	c.resetGesture()
	c.startClose(now)
}

// SelectOption reports option to the host and closes the drawer.
// Only valid while Open. The option callback runs before the close starts,
// so it always precedes the OnClose that follows.
func (c *Controller) SelectOption(option models.SelectableOption, now time.Time) {
	if c.phase != Open {
		c.ignored("select-option")
		return
	}
	c.log.Debug("drawer option selected", "id", option.ID, "title", option.Title)
	if c.onOptionSelect != nil {
		c.onOptionSelect(option)
	}
	c.Close(now)
}

// DragStart begins a pointer gesture on the panel. Only valid while the
// panel is Open or Opening.
func (c *Controller) DragStart() {
	if c.phase != Open && c.phase != Opening {
		c.ignored("drag-start")
		return
	}
	c.pressed = true
	c.recognized = false
	c.dragDY = 0
}

// DragMove feeds the cumulative vertical movement since DragStart.
// Movement only becomes a drag once its magnitude exceeds the threshold;
// from then on a downward delta moves the panel 1:1 and an upward delta
// pins it at its resting position.
func (c *Controller) DragMove(deltaY float64, now time.Time) {
	if !c.pressed {
		return
	}
	c.dragDY = deltaY

	if !c.recognized {
		if math.Abs(deltaY) <= c.cfg.DragThreshold {
			return
		}
		c.sample(now)
		if !c.transition(TriggerDrag, "drag") {
			c.resetGesture()
			return
		}
		c.recognized = true
		c.animating = false
	}

	c.offset = math.Max(deltaY, 0)
}

// DragEnd releases the gesture. A recognized drag past the dismiss distance
// closes the drawer; anything shorter snaps it back open. A release that
// never crossed the threshold is a tap and changes nothing.
func (c *Controller) DragEnd(now time.Time) {
	if !c.pressed {
		return
	}
	recognized, dy := c.recognized, c.dragDY
	c.resetGesture()
	if !recognized || c.phase != Dragging {
		return
	}

	if dy > c.DismissDistance() {
		c.transition(TriggerDismiss, "release")
		c.startClose(now)
		return
	}
	c.transition(TriggerSnapBack, "release")
	c.startOpen(now)
}

// Tick advances running animations to now and settles the phase when they
// finish. It returns whether another tick is needed.
func (c *Controller) Tick(now time.Time) bool {
	if !c.animating {
		return false
	}
	c.sample(now)

	switch c.phase {
	case Opening:
		if c.offsetSpring.AtRest() && c.alphaTween.Done(now) {
			c.animating = false
			c.offset = 0
			c.alpha = 1
			c.transition(TriggerSettle, "tick")
		}
	case Closing:
		if c.offsetTween.Done(now) && c.alphaTween.Done(now) {
			c.animating = false
			c.offset = c.PanelHeight()
			c.alpha = 0
			c.offsetSpring.Set(c.offset)
			c.transition(TriggerSettle, "tick")
			if c.onClose != nil {
				c.onClose()
			}
		}
	default:
		c.animating = false
	}
	return c.animating
}

func (c *Controller) startOpen(now time.Time) {
	c.springOffset = true
	c.offsetSpring.Start(c.offset, 0, now)
	c.alphaTween = anim.NewTween(c.alpha, 1, now, c.cfg.OpenDuration, anim.EaseInOut)
	c.animating = true
}

func (c *Controller) startClose(now time.Time) {
	c.springOffset = false
	c.offsetTween = anim.NewTween(c.offset, c.PanelHeight(), now, c.cfg.CloseDuration, anim.Linear)
	c.alphaTween = anim.NewTween(c.alpha, 0, now, c.cfg.CloseDuration, anim.Linear)
	c.animating = true
}

// sample brings offset and alpha up to date without settling
func (c *Controller) sample(now time.Time) {
	if !c.animating {
		return
	}
	if c.springOffset {
		c.offset = math.Max(c.offsetSpring.Advance(now), 0)
	} else {
		c.offset = math.Max(c.offsetTween.Value(now), 0)
	}
	c.alpha = clamp01(c.alphaTween.Value(now))
}

func (c *Controller) transition(trigger Trigger, op string) bool {
	next, ok := Next(c.phase, trigger)
	if !ok {
		c.ignored(op)
		return false
	}
	c.log.Debug("drawer transition", "from", c.phase.String(), "to", next.String(), "trigger", string(trigger))
	c.phase = next
	return true
}

func (c *Controller) ignored(op string) {
	c.log.Debug("drawer call ignored", "op", op, "phase", c.phase.String())
}

func (c *Controller) resetGesture() {
	c.pressed = false
	c.recognized = false
	c.dragDY = 0
}

func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}
