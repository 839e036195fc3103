package splash

import (
	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/ui/theme"
)

const bannerArt = `
 ██╗███████╗ ██████╗ ████████╗ ██████╗ ██████╗ ███████╗███████╗
 ██║██╔════╝██╔═══██╗╚══██╔══╝██╔═══██╗██╔══██╗██╔════╝██╔════╝
 ██║███████╗██║   ██║   ██║   ██║   ██║██████╔╝█████╗  ███████╗
 ██║╚════██║██║   ██║   ██║   ██║   ██║██╔═══╝ ██╔══╝  ╚════██║
 ██║███████║╚██████╔╝   ██║   ╚██████╔╝██║     ███████╗███████║
 ╚═╝╚══════╝ ╚═════╝    ╚═╝    ╚═════╝ ╚═╝     ╚══════╝╚══════╝`

const bannerCompact = "I S O T O P E S"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 66

// RenderBanner returns the ISOTOPES banner styled in the primary color.
// Uses a compact fallback for terminals narrower than bannerMinWidth.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
