// Package view holds the small amount of UI state the page owns.
package view

// MenuState is the open/closed state of the mobile navigation menu
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

// Query parameter that carries the menu state when scripts are unavailable
const MenuParam = "menu"

// ParseMenuState maps "open" to MenuOpen and anything else to MenuClosed
func ParseMenuState(s string) MenuState {
	if s == "open" {
		return MenuOpen
	}
	return MenuClosed
}

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Toggled returns the state a toggle press leads to
func (s MenuState) Toggled() MenuState {
	if s == MenuOpen {
		return MenuClosed
	}
	return MenuOpen
}

// Menu owns one navigation bar's MenuState. The zero value is closed.
// Navigating from inside the menu always closes it, so callers only get
// Toggle and ForceClose.
type Menu struct {
	state MenuState
}

// NewMenu returns a Menu starting in the given state
func NewMenu(initial MenuState) *Menu {
	return &Menu{state: initial.normalize()}
}

// Toggle flips the menu and returns the new state
func (m *Menu) Toggle() MenuState {
	m.state = m.state.Toggled()
	return m.state
}

// ForceClose closes the menu regardless of its current state
func (m *Menu) ForceClose() MenuState {
	m.state = MenuClosed
	return m.state
}

// State returns the current state
func (m *Menu) State() MenuState {
	return m.state
}

// IsOpen reports whether the dropdown is shown
func (m *Menu) IsOpen() bool {
	return m.state == MenuOpen
}

func (s MenuState) normalize() MenuState {
	if s == MenuOpen {
		return MenuOpen
	}
	return MenuClosed
}
