package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/ui/theme"
)

// DefaultMessage is shown when no message is given.
const DefaultMessage = "Nothing to show here yet."

// PlaceholderScreen fills a slot whose real content is unavailable, such
// as a missing image or a sector without published analysis.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and message.
func New(title, message string) *PlaceholderScreen {
	if message == "" {
		message = DefaultMessage
	}
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return Box(p.message, width, height)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

// Box renders message centred in a dashed frame of the given size.
func Box(message string, width, height int) string {
	inner := max(width-2, 0)
	innerH := max(height-2, 1)
	return lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
			TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		}).
		BorderForeground(theme.Border).
		Width(inner).
		Height(innerH).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render(message)
}
