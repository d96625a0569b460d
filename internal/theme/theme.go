// Package theme persists the visitor's dark/light display preference and
// turns it into the value the page is rendered with.
package theme

// Key is the storage key the preference lives under.
const Key = "theme"

// Theme is the display mode a page is rendered with.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// FromDark maps the stored boolean onto a Theme.
func FromDark(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// IsDark reports whether t is the dark mode.
func (t Theme) IsDark() bool { return t == Dark }

// Toggle returns the opposite mode.
func (t Theme) Toggle() Theme { return FromDark(!t.IsDark()) }

// Class is the class attribute set on the document root.
func (t Theme) Class() string {
	if t.IsDark() {
		return "dark"
	}
	return ""
}

// ToggleLabel names the mode the toggle button switches to.
func (t Theme) ToggleLabel() string {
	if t.IsDark() {
		return "Light"
	}
	return "Dark"
}

func (t Theme) String() string { return string(t) }
