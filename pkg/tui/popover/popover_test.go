package popover

import "testing"

func TestOutsidePressClosesOpenWidget(t *testing.T) {
	c := NewCoordinator()
	c.Register(Calendar, Region{X: 10, Y: 5, Width: 30, Height: 10})
	c.Open(Calendar)

	closed := c.DismissOutside(0, 0)
	if len(closed) != 1 || closed[0] != Calendar {
		t.Fatalf("expected calendar to close, got %v", closed)
	}
	if c.IsOpen(Calendar) {
		t.Fatalf("calendar should be closed")
	}
}

func TestInsidePressLeavesWidgetOpen(t *testing.T) {
	c := NewCoordinator()
	c.Register(Calendar, Region{X: 10, Y: 5, Width: 30, Height: 10})
	c.Open(Calendar)

	if closed := c.DismissOutside(15, 8); len(closed) != 0 {
		t.Fatalf("press inside region must not close: %v", closed)
	}
	if !c.IsOpen(Calendar) {
		t.Fatalf("calendar should stay open")
	}
}

func TestRegionEdges(t *testing.T) {
	r := Region{X: 10, Y: 5, Width: 30, Height: 10}
	if !r.Contains(10, 5) {
		t.Fatalf("top-left corner is inside")
	}
	if !r.Contains(39, 14) {
		t.Fatalf("bottom-right cell is inside")
	}
	if r.Contains(40, 5) || r.Contains(10, 15) {
		t.Fatalf("cells past width/height are outside")
	}
}

func TestWidgetsCloseIndependently(t *testing.T) {
	c := NewCoordinator()
	c.Register(StartTime, Region{X: 0, Y: 0, Width: 10, Height: 10})
	c.Register(EndTime, Region{X: 20, Y: 0, Width: 10, Height: 10})
	c.Open(StartTime)
	c.Open(EndTime)

	// Press inside StartTime only: EndTime closes, StartTime stays.
	c.DismissOutside(5, 5)
	if !c.IsOpen(StartTime) {
		t.Fatalf("start-time picker should survive a press inside its region")
	}
	if c.IsOpen(EndTime) {
		t.Fatalf("end-time picker should close")
	}
}

func TestOpeningOneDoesNotCloseAnother(t *testing.T) {
	c := NewCoordinator()
	c.Open(Calendar)
	c.Open(StudentSearch)
	if !c.IsOpen(Calendar) || !c.IsOpen(StudentSearch) {
		t.Fatalf("widgets opened independently may both be open")
	}
}

func TestUnregisteredRegionIsSkipped(t *testing.T) {
	c := NewCoordinator()
	c.Open(StudentSearch) // widget not mounted yet, no region registered

	if closed := c.DismissOutside(0, 0); len(closed) != 0 {
		t.Fatalf("dismissal check must be skipped without a region, got %v", closed)
	}
}

func TestTriggerPressIsExemptForOwnWidget(t *testing.T) {
	c := NewCoordinator()
	c.Register(Calendar, Region{X: 10, Y: 10, Width: 30, Height: 10})
	c.Register(StudentSearch, Region{X: 50, Y: 10, Width: 20, Height: 8})
	c.Open(Calendar)
	c.Open(StudentSearch)

	// A press on the calendar trigger (outside both overlay regions) toggles
	// the calendar itself; the shared rule must not also close it, but the
	// search dropdown still dismisses.
	closed := c.DismissOutside(12, 3, Calendar)
	if c.IsOpen(StudentSearch) {
		t.Fatalf("student search should dismiss")
	}
	if !c.IsOpen(Calendar) {
		t.Fatalf("trigger's own widget must not be dismissed")
	}
	if len(closed) != 1 || closed[0] != StudentSearch {
		t.Fatalf("unexpected closed set: %v", closed)
	}
}

func TestToggle(t *testing.T) {
	c := NewCoordinator()
	if !c.Toggle(EndTime) {
		t.Fatalf("first toggle opens")
	}
	if c.Toggle(EndTime) {
		t.Fatalf("second toggle closes")
	}
}
