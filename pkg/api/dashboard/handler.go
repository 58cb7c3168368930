package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"strategic_posture/pkg/core/catalog"
	coreConfig "strategic_posture/pkg/core/config"
	"strategic_posture/pkg/core/dataset"
	"strategic_posture/pkg/core/profile"
	"strategic_posture/pkg/core/projection"
	"strategic_posture/pkg/core/report"
	"strategic_posture/pkg/core/validate"
)

// Response is the payload of GET /api/dashboard.
type Response struct {
	RunID         string                `json:"run_id"`
	Selection     string                `json:"selection"`
	Configuration profile.Configuration `json:"configuration"`
	Groups        []string              `json:"groups"`
	Years         []int                 `json:"years"`
	Columns       []dataset.Column      `json:"columns"`
	Summary       dataset.Summary       `json:"summary"`
	Trends        []validate.Trend      `json:"trends"`
}

// Handler holds dependencies for dashboard endpoints
type Handler struct {
	Assembler *dataset.Assembler
	Settings  coreConfig.Settings
}

// NewHandler creates a new dashboard handler
func NewHandler(assembler *dataset.Assembler, settings coreConfig.Settings) *Handler {
	if assembler == nil {
		assembler = dataset.NewAssembler(nil)
	}
	return &Handler{
		Assembler: assembler,
		Settings:  settings,
	}
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[API] Failed to encode response: %v\n", err)
	}
}

// selection reads ?mode=&selection= and falls back to the configured default.
func (h *Handler) selection(r *http.Request) string {
	q := r.URL.Query()
	sel := catalog.SelectionForMode(catalog.AnalysisMode(q.Get("mode")), q.Get("selection"))
	if sel == "" && !q.Has("selection") {
		sel = h.Settings.DefaultSelection
	}
	return sel
}

func (h *Handler) build(r *http.Request, selection string) (*dataset.Dataset, profile.Configuration, error) {
	if !h.Settings.Parallel {
		ds, cfg := h.Assembler.Build(selection)
		return ds, cfg, nil
	}
	return h.Assembler.BuildContext(r.Context(), selection)
}

// HandleDashboard serves the full indicator table for one selection.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	sel := h.selection(r)
	ds, cfg, err := h.build(r, sel)
	if err != nil {
		http.Error(w, fmt.Sprintf("build dataset: %v", err), http.StatusServiceUnavailable)
		return
	}

	resp := Response{
		RunID:         uuid.NewString(),
		Selection:     ds.Selection,
		Configuration: cfg,
		Groups:        ds.Groups,
		Years:         ds.Years,
		Columns:       ds.Columns,
		Summary:       dataset.Summarize(ds),
		Trends:        validate.Trends(ds, validate.DefaultOutlierThreshold),
	}
	fmt.Printf("[DASHBOARD] %s: %q -> %d columns, groups %v\n", resp.RunID, sel, len(ds.Columns), ds.Groups)
	writeJSON(w, resp)
}

// HandleReport renders the dashboard as Markdown, HTML, CSV or JSON.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	format := report.FormatMarkdown
	if raw := r.URL.Query().Get("format"); raw != "" {
		f, err := report.ParseFormat(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		format = f
	}

	locale := h.Settings.Language()
	if raw := r.URL.Query().Get("locale"); raw != "" {
		tag, err := language.Parse(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid locale %q", raw), http.StatusBadRequest)
			return
		}
		locale = tag
	}

	ds, cfg, err := h.build(r, h.selection(r))
	if err != nil {
		http.Error(w, fmt.Sprintf("build dataset: %v", err), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if err := report.Render(w, report.New(ds, cfg), format, report.Options{Locale: locale}); err != nil {
		fmt.Printf("[DASHBOARD] Failed to render %s report: %v\n", format, err)
	}
}

// =============================================================================
// CATALOG
// =============================================================================

// Reference bundles the context tables shown next to the indicators.
// The cooperation index takes no profile input, so every selection shares it.
type Reference struct {
	Tensions      []catalog.Tension         `json:"tensions"`
	WeaponSystems []catalog.WeaponSystem    `json:"weapon_systems"`
	Modernization []catalog.DomainProgress  `json:"modernization"`
	Threats       []catalog.Threat          `json:"threats"`
	Responses     []catalog.ResponseProfile `json:"responses"`
	Years         []int                     `json:"years"`
	Cooperation   []float64                 `json:"cooperation_index"`
}

// HandleBranches lists the selectable military branches.
func HandleBranches(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	writeJSON(w, catalog.ListBranches())
}

// HandlePrograms lists the selectable strategic programs.
func HandlePrograms(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	writeJSON(w, catalog.ListPrograms())
}

// HandleMissiles lists missile systems, or returns one with ?name=.
func HandleMissiles(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, catalog.ListMissiles())
		return
	}
	m, err := catalog.LookupMissile(name)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, m)
}

// HandleNavalAssets lists naval assets, or returns one with ?name=.
func HandleNavalAssets(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, catalog.ListNavalAssets())
		return
	}
	a, err := catalog.LookupNavalAsset(name)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, a)
}

// HandleReference serves the geopolitical and capability context tables.
func HandleReference(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	coop := projection.CooperationIndex.Series(projection.Inputs{})
	writeJSON(w, Reference{
		Tensions:      catalog.Tensions(),
		WeaponSystems: catalog.WeaponSystems(),
		Modernization: catalog.ModernizationByDomain(),
		Threats:       catalog.Threats(),
		Responses:     catalog.ResponseCapabilities(),
		Years:         projection.Years(),
		Cooperation:   coop.Values,
	})
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
