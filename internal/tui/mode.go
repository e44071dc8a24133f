package tui

// Tab selects which issues the list shows.
type Tab int

const (
	TabOpen   Tab = iota // Open issues
	TabClosed            // Closed issues
)

// String returns the string representation of the tab.
func (t Tab) String() string {
	switch t {
	case TabOpen:
		return "open"
	case TabClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// next returns the other tab.
func (t Tab) next() Tab {
	if t == TabOpen {
		return TabClosed
	}
	return TabOpen
}
