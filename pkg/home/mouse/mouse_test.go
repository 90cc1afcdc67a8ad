package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	screenW, screenH = 80, 40
	sheetTop         = 16
)

// drawerFrame registers regions the way the home view does with the drawer
// open: home regions first, then backdrop, sheet and one row per option.
func drawerFrame(h *Handler, top int) {
	h.Clear()
	h.HitMap.AddRect("date", 0, 2, 11, 3, 18)
	h.HitMap.AddRect("fab", screenW-12, screenH-1, 12, 1, nil)
	h.HitMap.AddRect("backdrop", 0, 0, screenW, screenH, nil)
	if visible := min(screenH-top, screenH-sheetTop); visible > 0 {
		h.HitMap.AddRect("sheet", 0, top, screenW, visible, nil)
		for i := 0; i < 4; i++ {
			if row := top + 6 + 2*i; row < screenH {
				h.HitMap.AddRect("option", 0, row, screenW, 2, i)
			}
		}
	}
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestDrawerStacking(t *testing.T) {
	h := NewHandler()
	drawerFrame(h, sheetTop)

	tests := []struct {
		name     string
		x, y     int
		wantID   string
		wantData any
	}{
		{"date under backdrop", 3, 3, "backdrop", nil},
		{"fab under sheet", screenW - 2, screenH - 1, "sheet", nil},
		{"above sheet", 40, sheetTop - 1, "backdrop", nil},
		{"sheet header", 40, sheetTop, "sheet", nil},
		{"first option", 0, sheetTop + 6, "option", 0},
		{"second row of first option", 79, sheetTop + 7, "option", 0},
		{"last option", 10, sheetTop + 12, "option", 3},
		{"below options", 10, sheetTop + 14, "sheet", nil},
		{"off screen", screenW, 0, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := h.HitMap.Test(tt.x, tt.y)
			if tt.wantID == "" {
				if r != nil {
					t.Fatalf("Test(%d, %d) = %q, want no region", tt.x, tt.y, r.ID)
				}
				return
			}
			if r == nil || r.ID != tt.wantID {
				t.Fatalf("Test(%d, %d) = %v, want %s", tt.x, tt.y, r, tt.wantID)
			}
			if r.Data != tt.wantData {
				t.Errorf("Data = %v, want %v", r.Data, tt.wantData)
			}
		})
	}
}

func TestOptionRowEdges(t *testing.T) {
	r := Rect{X: 0, Y: sheetTop + 8, W: screenW, H: 2}

	tests := []struct {
		x, y int
		want bool
	}{
		{0, sheetTop + 8, true},
		{screenW - 1, sheetTop + 9, true},
		{screenW, sheetTop + 8, false},
		{0, sheetTop + 7, false},
		{0, sheetTop + 10, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRedrawAfterSheetMoves(t *testing.T) {
	h := NewHandler()
	drawerFrame(h, sheetTop)
	if r := h.HitMap.Test(5, sheetTop+6); r == nil || r.Data != 0 {
		t.Fatalf("before move got %v, want option 0", r)
	}

	// sheet dragged 4 rows down: the same cell is now sheet header
	drawerFrame(h, sheetTop+4)
	if r := h.HitMap.Test(5, sheetTop+6); r == nil || r.ID != "sheet" {
		t.Errorf("after move got %v, want sheet", r)
	}
	if r := h.HitMap.Test(5, sheetTop+10); r == nil || r.Data != 0 {
		t.Errorf("option 0 should follow the sheet, got %v", r)
	}

	// pushed almost off screen: only options still inside the screen register
	drawerFrame(h, screenH-8)
	options := 0
	for _, r := range h.HitMap.Regions() {
		if r.ID == "option" {
			options++
		}
	}
	if options != 1 {
		t.Errorf("registered %d options, want 1", options)
	}

	h.Clear()
	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("Clear left %d regions", len(h.HitMap.Regions()))
	}
}

func TestSheetDragCarriesPressedOption(t *testing.T) {
	h := NewHandler()
	drawerFrame(h, sheetTop)
	x, y := 10, sheetTop+8

	press := h.HandleMouse(leftPress(x, y))
	if press.Type != ActionClick || press.Region == nil || press.Region.ID != "option" {
		t.Fatalf("press = %v on %v, want click on option", press.Type, press.Region)
	}
	idx, ok := press.Region.Data.(int)
	if !ok || idx != 1 {
		t.Fatalf("pressed option = %v, want 1", press.Region.Data)
	}
	h.StartDrag(press.X, press.Y, "sheet", idx)

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   ActionType
		wantDY int
	}{
		{"small move", tea.MouseMsg{X: x, Y: y + 1, Action: tea.MouseActionMotion}, ActionDrag, 1},
		{"back above start", tea.MouseMsg{X: x + 3, Y: y - 2, Action: tea.MouseActionMotion}, ActionDrag, -2},
		{"further down", tea.MouseMsg{X: x, Y: y + 3, Action: tea.MouseActionMotion}, ActionDrag, 3},
		{"release elsewhere", tea.MouseMsg{X: x, Y: y + 9, Action: tea.MouseActionRelease}, ActionDragEnd, 9},
	}
	for _, tt := range tests {
		a := h.HandleMouse(tt.msg)
		if a.Type != tt.want || a.DragDY != tt.wantDY {
			t.Errorf("%s: got %v dy=%d, want %v dy=%d", tt.name, a.Type, a.DragDY, tt.want, tt.wantDY)
		}
		if a.Type == ActionDrag && a.Region != nil {
			t.Errorf("%s: drag motion should not hit test, got %q", tt.name, a.Region.ID)
		}
	}

	if h.IsDragging() || h.DragRegion() != "" {
		t.Errorf("drag still active after release: %v %q", h.IsDragging(), h.DragRegion())
	}
	if h.DragStartValue() != 1 {
		t.Errorf("DragStartValue() = %d after release, want 1", h.DragStartValue())
	}

	// the next motion is a plain hover again
	if a := h.HandleMouse(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}); a.Type != ActionHover {
		t.Errorf("motion after release = %v, want hover", a.Type)
	}
}

func TestSheetDragFromHeader(t *testing.T) {
	h := NewHandler()
	drawerFrame(h, sheetTop)

	press := h.HandleMouse(leftPress(40, sheetTop+1))
	if press.Region == nil || press.Region.ID != "sheet" || press.Region.Data != nil {
		t.Fatalf("press hit %v, want bare sheet", press.Region)
	}
	h.StartDrag(press.X, press.Y, "sheet", -1)

	end := h.HandleMouse(tea.MouseMsg{X: 42, Y: sheetTop - 3, Action: tea.MouseActionRelease})
	if end.Type != ActionDragEnd || end.DragDX != 2 || end.DragDY != -4 {
		t.Errorf("got %v (%d, %d), want drag-end (2, -4)", end.Type, end.DragDX, end.DragDY)
	}
	if h.DragStartValue() != -1 {
		t.Errorf("DragStartValue() = %d, want -1", h.DragStartValue())
	}
}

func TestWheelActions(t *testing.T) {
	h := NewHandler()
	drawerFrame(h, sheetTop)

	tests := []struct {
		button tea.MouseButton
		shift  bool
		want   ActionType
	}{
		{tea.MouseButtonWheelUp, false, ActionScrollUp},
		{tea.MouseButtonWheelDown, false, ActionScrollDown},
		{tea.MouseButtonWheelUp, true, ActionScrollLeft},
		{tea.MouseButtonWheelDown, true, ActionScrollRight},
		{tea.MouseButtonWheelLeft, false, ActionScrollLeft},
		{tea.MouseButtonWheelRight, false, ActionScrollRight},
		{tea.MouseButtonRight, false, ActionNone},
	}
	for _, tt := range tests {
		a := h.HandleMouse(tea.MouseMsg{X: 5, Y: sheetTop + 6, Action: tea.MouseActionPress, Button: tt.button, Shift: tt.shift})
		if a.Type != tt.want {
			t.Errorf("%v shift=%v: got %v, want %v", tt.button, tt.shift, a.Type, tt.want)
		}
		if tt.want != ActionNone && (a.Region == nil || a.Region.ID != "option") {
			t.Errorf("%v: scroll should report the option under the pointer, got %v", tt.button, a.Region)
		}
	}
}

func TestActionTypeString(t *testing.T) {
	tests := []struct {
		a    ActionType
		want string
	}{
		{ActionNone, "none"},
		{ActionClick, "click"},
		{ActionDoubleClick, "double-click"},
		{ActionHover, "hover"},
		{ActionScrollLeft, "scroll-left"},
		{ActionDrag, "drag"},
		{ActionDragEnd, "drag-end"},
		{ActionType(99), "none"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestDoubleClickWindow(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("fab", 0, 0, 5, 3, nil)

	clock := time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return clock }

	h.HandleClick(1, 1)
	clock = clock.Add(DoubleClickWindow + time.Millisecond)
	if h.HandleClick(1, 1).IsDoubleClick {
		t.Error("clicks further apart than the window are not a double-click")
	}

	clock = clock.Add(DoubleClickWindow)
	if !h.HandleClick(1, 1).IsDoubleClick {
		t.Error("clicks exactly at the window edge count as a double-click")
	}

	if h.HandleClick(1, 1).IsDoubleClick {
		t.Error("a third click starts a new sequence")
	}
}

func TestDoubleClickNeedsSameRegion(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("a", 0, 0, 5, 1, nil)
	h.HitMap.AddRect("b", 0, 1, 5, 1, nil)

	h.HandleClick(0, 0)
	if h.HandleClick(0, 1).IsDoubleClick {
		t.Error("clicks on different regions are not a double-click")
	}
}

func TestHandleMouseRegionData(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("option", 0, 4, 40, 1, 2)

	action := h.HandleMouse(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if action.Region == nil {
		t.Fatal("expected a region")
	}
	if idx, ok := action.Region.Data.(int); !ok || idx != 2 {
		t.Errorf("Data = %v, want 2", action.Region.Data)
	}
}

func TestHoverReportsRegion(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("option", 0, 4, 40, 1, nil)

	a := h.HandleMouse(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion})
	if a.Type != ActionHover || a.Region == nil || a.Region.ID != "option" {
		t.Errorf("got %v on %v, want hover on option", a.Type, a.Region)
	}
	a = h.HandleMouse(tea.MouseMsg{X: 3, Y: 9, Action: tea.MouseActionMotion})
	if a.Type != ActionHover || a.Region != nil {
		t.Errorf("got %v on %v, want hover on nothing", a.Type, a.Region)
	}
}

func TestReleaseWithoutDrag(t *testing.T) {
	h := NewHandler()
	action := h.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease})
	if action.Type != ActionNone {
		t.Errorf("expected ActionNone, got %v", action.Type)
	}
}

func TestDragEndReportsDelta(t *testing.T) {
	h := NewHandler()
	h.StartDrag(10, 20, "sheet", 0)

	action := h.HandleMouse(tea.MouseMsg{X: 10, Y: 26, Action: tea.MouseActionRelease})
	if action.Type != ActionDragEnd || action.DragDY != 6 {
		t.Errorf("got %v dy=%d, want drag-end dy=6", action.Type, action.DragDY)
	}
}
