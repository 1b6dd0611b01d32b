// Package controller tracks the state of abstract game controls.
package controller

// Control is one logical input.
type Control int

const (
	Left Control = iota
	Right
	Up
	Down
	Jump
	Action
	PauseMenu
	MenuSelect
	PeekLeft
	PeekRight
	PeekUp
	PeekDown
	ControlCount
)

var controlNames = [ControlCount]string{
	Left:       "left",
	Right:      "right",
	Up:         "up",
	Down:       "down",
	Jump:       "jump",
	Action:     "action",
	PauseMenu:  "pause-menu",
	MenuSelect: "menu-select",
	PeekLeft:   "peek-left",
	PeekRight:  "peek-right",
	PeekUp:     "peek-up",
	PeekDown:   "peek-down",
}

func (c Control) String() string {
	if c < 0 || c >= ControlCount {
		return "unknown"
	}
	return controlNames[c]
}

// ParseControl looks a control up by name.
func ParseControl(name string) (Control, bool) {
	for i, n := range controlNames {
		if n == name {
			return Control(i), true
		}
	}
	return 0, false
}

// Controller keeps this frame's and last frame's control state so both
// edge- and level-triggered queries work.
type Controller struct {
	current  [ControlCount]bool
	previous [ControlCount]bool
}

// New returns a controller with nothing held.
func New() *Controller {
	return &Controller{}
}

// Update starts a new frame. Call it before writing this frame's state.
func (c *Controller) Update() {
	c.previous = c.current
}

// Press sets the state of a control for the current frame.
func (c *Controller) Press(control Control, pressed bool) {
	c.current[control] = pressed
}

// Reset releases every control.
func (c *Controller) Reset() {
	c.current = [ControlCount]bool{}
	c.previous = [ControlCount]bool{}
}

// Hold reports whether control is down this frame.
func (c *Controller) Hold(control Control) bool {
	return c.current[control]
}

// Pressed reports whether control went down this frame.
func (c *Controller) Pressed(control Control) bool {
	return c.current[control] && !c.previous[control]
}

// Released reports whether control went up this frame.
func (c *Controller) Released(control Control) bool {
	return !c.current[control] && c.previous[control]
}
