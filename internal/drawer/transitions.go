package drawer

// Phase is the drawer's animation/gesture state
type Phase int

const (
	Closed Phase = iota
	Opening
	Open
	Closing
	Dragging
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Visible reports whether the panel or backdrop can be on screen in this phase
func (p Phase) Visible() bool {
	return p != Closed
}

// Trigger names the event that moves the drawer between phases
type Trigger string

const (
	TriggerOpen     Trigger = "open"
	TriggerClose    Trigger = "close"
	TriggerSettle   Trigger = "settle"
	TriggerDrag     Trigger = "drag"
	TriggerSnapBack Trigger = "snap-back"
	TriggerDismiss  Trigger = "dismiss"
	TriggerReset    Trigger = "reset"
)

// Transition is one edge of the drawer state machine
type Transition struct {
	From    Phase
	To      Phase
	Trigger Trigger
}

// AllTransitions returns every valid phase transition.
// Forced resets (host visibility false) lead back to Closed from every
// visible phase.
func AllTransitions() []Transition {
	return []Transition{
		// Forced resets
		{From: Opening, To: Closed, Trigger: TriggerReset},
		{From: Open, To: Closed, Trigger: TriggerReset},
		{From: Dragging, To: Closed, Trigger: TriggerReset},
		{From: Closing, To: Closed, Trigger: TriggerReset},

		// From closed
		{From: Closed, To: Opening, Trigger: TriggerOpen},

		// From opening
		{From: Opening, To: Open, Trigger: TriggerSettle},
		{From: Opening, To: Closing, Trigger: TriggerClose},
		{From: Opening, To: Dragging, Trigger: TriggerDrag},

		// From open
		{From: Open, To: Closing, Trigger: TriggerClose},
		{From: Open, To: Dragging, Trigger: TriggerDrag},

		// From dragging
		{From: Dragging, To: Opening, Trigger: TriggerSnapBack},
		{From: Dragging, To: Closing, Trigger: TriggerDismiss},
		{From: Dragging, To: Opening, Trigger: TriggerOpen},
		{From: Dragging, To: Closing, Trigger: TriggerClose},

		// From closing
		{From: Closing, To: Closed, Trigger: TriggerSettle},
		{From: Closing, To: Opening, Trigger: TriggerOpen},
	}
}

// transitionIndex maps (from, trigger) to the destination phase
var transitionIndex = func() map[Phase]map[Trigger]Phase {
	idx := make(map[Phase]map[Trigger]Phase)
	for _, t := range AllTransitions() {
		if idx[t.From] == nil {
			idx[t.From] = make(map[Trigger]Phase)
		}
		idx[t.From][t.Trigger] = t.To
	}
	return idx
}()

// Next returns the phase reached from `from` on trigger, and false when the
// trigger is not valid in that phase
func Next(from Phase, trigger Trigger) (Phase, bool) {
	to, ok := transitionIndex[from][trigger]
	return to, ok
}
