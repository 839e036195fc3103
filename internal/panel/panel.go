package panel

import "fmt"

// ID identifies one of the dashboard's panels.
type ID int

const (
	GlobalDashboard ID = iota
	IsotopeProduction
	SectorApplications
	EconomicAnalysis
	InteractiveQuiz
	References
)

// All returns every panel in sidebar order.
func All() []ID {
	return []ID{
		GlobalDashboard,
		IsotopeProduction,
		SectorApplications,
		EconomicAnalysis,
		InteractiveQuiz,
		References,
	}
}

// Valid reports whether id is one of the defined panels.
func (id ID) Valid() bool {
	return id >= GlobalDashboard && id <= References
}

// Label returns the sidebar text for the panel.
func (id ID) Label() string {
	switch id {
	case GlobalDashboard:
		return "Global Dashboard"
	case IsotopeProduction:
		return "Isotope Production"
	case SectorApplications:
		return "Sector Applications"
	case EconomicAnalysis:
		return "Economic Analysis"
	case InteractiveQuiz:
		return "Interactive Quiz"
	case References:
		return "References"
	default:
		return fmt.Sprintf("Panel(%d)", int(id))
	}
}

// Icon returns the glyph shown next to the panel title.
func (id ID) Icon() string {
	switch id {
	case GlobalDashboard:
		return "⚛"
	case IsotopeProduction:
		return "⚗"
	case SectorApplications:
		return "▦"
	case EconomicAnalysis:
		return "$"
	case InteractiveQuiz:
		return "?"
	case References:
		return "≡"
	default:
		return " "
	}
}

func (id ID) String() string {
	return id.Label()
}
