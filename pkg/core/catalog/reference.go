package catalog

// Tension is one point of the regional tension timeline (level out of 10).
type Tension struct {
	Year  int    `yaml:"year" json:"year"`
	Level int    `yaml:"level" json:"level"`
	Event string `yaml:"event" json:"event"`
}

// WeaponSystem summarizes a fielded system's reach and entry into service.
type WeaponSystem struct {
	Name        string `yaml:"name" json:"name"`
	RangeKm     int    `yaml:"range_km" json:"range_km"`
	ServiceYear int    `yaml:"service_year" json:"service_year"`
	Status      string `yaml:"status" json:"status"`
}

// DomainProgress compares a domain's modernization level in 2000 and 2027.
type DomainProgress struct {
	Domain    string  `yaml:"domain" json:"domain"`
	Level2000 float64 `yaml:"level_2000" json:"level_2000"`
	Level2027 float64 `yaml:"level_2027" json:"level_2027"`
}

// Threat is one cell of the probability/impact matrix.
type Threat struct {
	Type         string  `yaml:"type" json:"type"`
	Probability  float64 `yaml:"probability" json:"probability"`
	Impact       float64 `yaml:"impact" json:"impact"`
	Preparedness float64 `yaml:"preparedness" json:"preparedness"`
}

// Risk is probability times impact.
func (t Threat) Risk() float64 {
	return t.Probability * t.Impact
}

// ResponseProfile scores the response options for a crisis scenario.
type ResponseProfile struct {
	Scenario   string  `yaml:"scenario" json:"scenario"`
	Deterrence float64 `yaml:"deterrence" json:"deterrence"`
	Defense    float64 `yaml:"defense" json:"defense"`
	Riposte    float64 `yaml:"riposte" json:"riposte"`
}

func Tensions() []Tension {
	return append([]Tension(nil), data().Tensions...)
}

func WeaponSystems() []WeaponSystem {
	return append([]WeaponSystem(nil), data().WeaponSystems...)
}

func ModernizationByDomain() []DomainProgress {
	return append([]DomainProgress(nil), data().Modernization...)
}

func Threats() []Threat {
	return append([]Threat(nil), data().Threats...)
}

func ResponseCapabilities() []ResponseProfile {
	return append([]ResponseProfile(nil), data().Responses...)
}

// =============================================================================
// ANALYSIS MODES
// =============================================================================

// AnalysisMode is how the control panel picks a selection.
type AnalysisMode string

const (
	ModeBranch    AnalysisMode = "branch"
	ModeProgram   AnalysisMode = "program"
	ModeSystemic  AnalysisMode = "systemic"
	ModeScenarios AnalysisMode = "scenarios"
)

// Fixed selections of the systemic and scenario views.
const (
	SystemicView  = "Forces Armées Indiennes"
	ScenariosView = "Scénarios Géopolitiques"
)

// SelectionForMode maps a mode and the user's choice to a selection string.
// The scenarios view has no profile of its own and resolves to the generic one.
func SelectionForMode(mode AnalysisMode, choice string) string {
	switch mode {
	case ModeSystemic:
		return SystemicView
	case ModeScenarios:
		return ScenariosView
	default:
		return choice
	}
}
