// Package mouse maps terminal mouse events onto named screen regions and
// tracks press-drag-release gestures.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DoubleClickWindow is the longest gap between two clicks on the same region
// that still counts as a double click
const DoubleClickWindow = 400 * time.Millisecond

// Rect is a cell-aligned rectangle; W and H are exclusive bounds
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named, hit-testable area. Data carries whatever the view
// attached when it registered the region (an option index, a date entry).
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions of the last rendered frame
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Regions added later sit on top.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear drops every region
func (hm *HitMap) Clear() {
	hm.regions = nil
}

// ActionType classifies a mouse event after hit testing
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionDragEnd
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionDoubleClick:
		return "double-click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionScrollLeft:
		return "scroll-left"
	case ActionScrollRight:
		return "scroll-right"
	case ActionDrag:
		return "drag"
	case ActionDragEnd:
		return "drag-end"
	default:
		return "none"
	}
}

// Action is the result of HandleMouse
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
	// DragDX and DragDY are measured from the drag's start cell
	DragDX, DragDY int
}

// ClickResult is the result of HandleClick
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler owns the hit map plus click and drag state
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time

	dragging   bool
	dragRegion string
	dragStartX int
	dragStartY int
	dragStartV int

	now func() time.Time
}

// NewHandler returns a handler with an empty hit map
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// HandleClick hit-tests a click and detects double clicks. A double click
// resets the sequence so a third click starts over.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	if region == nil {
		h.lastClickID = ""
		return ClickResult{}
	}

	now := h.now()
	double := h.lastClickID == region.ID && now.Sub(h.lastClickTime) <= DoubleClickWindow
	if double {
		h.lastClickID = ""
		h.lastClickTime = time.Time{}
	} else {
		h.lastClickID = region.ID
		h.lastClickTime = now
	}
	return ClickResult{Region: region, IsDoubleClick: double}
}

// StartDrag begins tracking a drag from (x, y). startValue is whatever the
// caller wants back at the end (a width, an offset).
func (h *Handler) StartDrag(x, y int, regionID string, startValue int) {
	h.dragging = true
	h.dragRegion = regionID
	h.dragStartX, h.dragStartY = x, y
	h.dragStartV = startValue
}

// IsDragging reports whether a drag is in progress
func (h *Handler) IsDragging() bool { return h.dragging }

// DragRegion is the region ID the drag started on
func (h *Handler) DragRegion() string { return h.dragRegion }

// DragStartValue is the value passed to StartDrag
func (h *Handler) DragStartValue() int { return h.dragStartV }

// DragDelta returns the cell offset of (x, y) from the drag's start
func (h *Handler) DragDelta(x, y int) (dx, dy int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag stops tracking
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
}

// HandleMouse converts a bubbletea mouse message into an Action
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.Type = ActionScrollUp
			if msg.Shift {
				a.Type = ActionScrollLeft
			}
			a.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelDown:
			a.Type = ActionScrollDown
			if msg.Shift {
				a.Type = ActionScrollRight
			}
			a.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelLeft:
			a.Type = ActionScrollLeft
			a.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelRight:
			a.Type = ActionScrollRight
			a.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonLeft:
			res := h.HandleClick(msg.X, msg.Y)
			a.Region = res.Region
			a.Type = ActionClick
			if res.IsDoubleClick {
				a.Type = ActionDoubleClick
			}
		}

	case tea.MouseActionMotion:
		if h.dragging {
			a.Type = ActionDrag
			a.DragDX, a.DragDY = h.DragDelta(msg.X, msg.Y)
			return a
		}
		a.Type = ActionHover
		a.Region = h.HitMap.Test(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if h.dragging {
			a.Type = ActionDragEnd
			a.DragDX, a.DragDY = h.DragDelta(msg.X, msg.Y)
			h.EndDrag()
		}
	}

	return a
}

// Clear resets the hit map, typically at the start of each View
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
