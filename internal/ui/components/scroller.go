package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Scroller keeps a vertical offset into content taller than its viewport.
type Scroller struct {
	Offset int
}

// Update moves the offset on navigation keys. It reports whether the key
// was consumed.
func (s Scroller) Update(msg tea.Msg) (Scroller, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}
	switch kmsg.String() {
	case "up", "k":
		s.Offset--
	case "down", "j":
		s.Offset++
	case "pgup":
		s.Offset -= 10
	case "pgdown":
		s.Offset += 10
	case "home", "g":
		s.Offset = 0
	default:
		return s, false
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	return s, true
}

// View returns the height lines of content starting at the offset. The
// offset is clamped so the last page stays full.
func (s Scroller) View(content string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	offset := min(max(s.Offset, 0), len(lines)-height)
	return strings.Join(lines[offset:offset+height], "\n")
}
