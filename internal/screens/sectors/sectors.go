package sectors

import (
	"errors"
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/matrix/isotopes/internal/assets"
	"github.com/matrix/isotopes/internal/chart"
	"github.com/matrix/isotopes/internal/dataset"
	"github.com/matrix/isotopes/internal/screen"
	"github.com/matrix/isotopes/internal/screens/placeholder"
	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/layout"
	"github.com/matrix/isotopes/internal/ui/theme"
)

// Sector is one entry of the sector selector.
type Sector int

const (
	Medical Sector = iota
	Industrial
	Agricultural
	SpaceTechnology
)

var sectorNames = []string{"Medical", "Industrial", "Agricultural", "Space Technology"}

func (s Sector) String() string {
	if s < 0 || int(s) >= len(sectorNames) {
		return fmt.Sprintf("Sector(%d)", int(s))
	}
	return sectorNames[s]
}

// imageHeight caps the rendered picture height in lines.
const imageHeight = 12

var medicalIsotopes = []string{
	"Tc-99m (Diagnostics)",
	"I-131 (Thyroid treatment)",
	"Lu-177 (Cancer therapy)",
}

var medicalImpact = []string{
	"$3.2B market (2025)",
	"40M procedures/year",
	"90% accuracy in diagnostics",
}

var industrialUses = []string{
	"Radiography testing (Ir-192)",
	"Gauging systems (Cs-137)",
	"Tracer studies (H-3, C-14)",
}

var industrialBenefits = []string{
	"$850M market (2025)",
	"30% cost reduction vs alternatives",
	"0% production downtime",
}

// SectorsScreen compares how sectors apply isotopes.
type SectorsScreen struct {
	selected Sector
	image    image.Image
	imageErr error
	scroller components.Scroller
}

var _ screen.Screen = (*SectorsScreen)(nil)
var _ screen.KeyHintProvider = (*SectorsScreen)(nil)

// New creates the sector applications panel. The industrial picture is
// loaded from assetsDir; when it is missing a placeholder is shown.
func New(assetsDir string, log logrus.FieldLogger) *SectorsScreen {
	img, err := assets.LoadImage(assetsDir, assets.IndustrialImage)
	if err != nil {
		entry := log.WithError(err).WithField("asset", assets.IndustrialImage)
		if errors.Is(err, assets.ErrAssetMissing) {
			entry.Info("optional asset not found, showing placeholder")
		} else {
			entry.Warn("optional asset unreadable, showing placeholder")
		}
	}
	return &SectorsScreen{image: img, imageErr: err}
}

func (s *SectorsScreen) Init() tea.Cmd {
	return nil
}

func (s *SectorsScreen) Title() string {
	return "Sector Applications Analysis"
}

func (s *SectorsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Sector"},
		{Key: "↑↓", Description: "Scroll"},
	}
}

// Selected returns the sector being shown.
func (s *SectorsScreen) Selected() Sector {
	return s.selected
}

func (s *SectorsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			if s.selected > Medical {
				s.selected--
				s.scroller.Offset = 0
			}
			return s, nil
		case "right", "l":
			if s.selected < SpaceTechnology {
				s.selected++
				s.scroller.Offset = 0
			}
			return s, nil
		}
	}
	s.scroller, _ = s.scroller.Update(msg)
	return s, nil
}

func (s *SectorsScreen) View(width, height int) string {
	return s.scroller.View(s.render(width, height), height)
}

func (s *SectorsScreen) render(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("▦ Sector Applications Analysis"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Select Sector"))
	b.WriteString("\n")
	b.WriteString(components.Tabs(sectorNames, int(s.selected)))
	b.WriteString("\n\n")

	switch s.selected {
	case Medical:
		b.WriteString(s.renderMedical(width))
	case Industrial:
		b.WriteString(s.renderIndustrial(width))
	case Agricultural, SpaceTechnology:
		b.WriteString(placeholder.Box(
			fmt.Sprintf("No %s analysis has been published yet.", s.selected),
			width, max(height-6, 5)))
	}
	return b.String()
}

func (s *SectorsScreen) renderMedical(width int) string {
	text := theme.Heading.Render("Medical Applications") + "\n\n" +
		theme.Strong.Render("Common Isotopes:") + "\n" +
		components.Bullets(medicalIsotopes) + "\n\n" +
		theme.Strong.Render("Economic Impact:") + "\n" +
		components.Bullets(medicalImpact)

	shares := dataset.MedicalShares()
	parts := make([]chart.Bar, 0, len(shares))
	for _, m := range shares {
		parts = append(parts, chart.Bar{Label: m.Application, Value: m.Share})
	}

	if layout.IsCompactWidth(width + layout.SidebarWidth) {
		return text + "\n\n" + components.Section("Market Share (%)", chart.Share(parts, width))
	}
	half := width / 2
	left := lipgloss.NewStyle().Width(half).Render(text)
	right := components.Section("Market Share (%)", chart.Share(parts, width-half-2))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (s *SectorsScreen) renderIndustrial(width int) string {
	text := theme.Heading.Render("Industrial Applications") + "\n\n" +
		theme.Strong.Render("Key Uses:") + "\n" +
		components.Bullets(industrialUses) + "\n\n" +
		theme.Strong.Render("Economic Benefits:") + "\n" +
		components.Bullets(industrialBenefits)

	return text + "\n\n" + s.renderImage(width)
}

func (s *SectorsScreen) renderImage(width int) string {
	caption := theme.Hint.Render("Industrial radiography using isotopes")
	if s.image == nil {
		msg := "Image unavailable: " + assets.IndustrialImage
		if s.imageErr != nil && !errors.Is(s.imageErr, assets.ErrAssetMissing) {
			msg = "Image unreadable: " + assets.IndustrialImage
		}
		return placeholder.Box(msg, min(width, 60), 5) + "\n" + caption
	}

	// Keep the picture within imageHeight lines.
	b := s.image.Bounds()
	w := min(width, 60)
	if b.Dx() > 0 && b.Dy() > 0 {
		maxW := imageHeight * 2 * b.Dx() / b.Dy()
		w = max(min(w, maxW), 1)
	}
	return assets.RenderHalfBlocks(s.image, w) + "\n" + caption
}
