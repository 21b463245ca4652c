// Package popover coordinates the form's overlay widgets: one dismissal
// policy shared by independently owned open/closed flags, instead of a
// per-widget copy of the outside-click listener.
package popover

// ID names an overlay widget.
type ID string

// The four overlays the booking form owns.
const (
	Calendar      ID = "calendar"
	StartTime     ID = "start-time"
	EndTime       ID = "end-time"
	StudentSearch ID = "student-search"
)

// Region is a widget's bound screen area in cell coordinates.
type Region struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) falls inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Coordinator tracks the open flags and bound regions of the overlay
// widgets. Widgets are never coupled to each other: opening one does not
// close another, and each closes independently when a pointer press lands
// outside its own region.
type Coordinator struct {
	regions map[ID]Region
	open    map[ID]bool
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		regions: make(map[ID]Region),
		open:    make(map[ID]bool),
	}
}

// Register records (or replaces) a widget's bound region. Layout passes call
// this whenever geometry changes.
func (c *Coordinator) Register(id ID, r Region) {
	c.regions[id] = r
}

// Unregister drops a widget's region, e.g. when it is no longer rendered.
func (c *Coordinator) Unregister(id ID) {
	delete(c.regions, id)
}

// Open sets a widget's flag open.
func (c *Coordinator) Open(id ID) {
	c.open[id] = true
}

// Close sets a widget's flag closed.
func (c *Coordinator) Close(id ID) {
	delete(c.open, id)
}

// Toggle flips a widget's flag and returns the new state.
func (c *Coordinator) Toggle(id ID) bool {
	if c.open[id] {
		c.Close(id)
		return false
	}
	c.Open(id)
	return true
}

// IsOpen reports a widget's flag.
func (c *Coordinator) IsOpen(id ID) bool {
	return c.open[id]
}

// CloseAll closes every widget.
func (c *Coordinator) CloseAll() {
	c.open = make(map[ID]bool)
}

// DismissOutside applies the shared dismissal rule for a pointer press at
// (x, y): every open widget whose bound region does not contain the press is
// closed. Widgets listed in keep are exempt, so a press on a widget's own
// trigger is not treated as an outside click for that widget. A widget with
// no registered region is skipped. Returns the ids that were closed.
func (c *Coordinator) DismissOutside(x, y int, keep ...ID) []ID {
	kept := make(map[ID]bool, len(keep))
	for _, id := range keep {
		kept[id] = true
	}

	var closed []ID
	for id := range c.open {
		if kept[id] {
			continue
		}
		region, ok := c.regions[id]
		if !ok {
			continue
		}
		if !region.Contains(x, y) {
			c.Close(id)
			closed = append(closed, id)
		}
	}
	return closed
}
