package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strategic_posture/pkg/core/catalog"
	coreConfig "strategic_posture/pkg/core/config"
	"strategic_posture/pkg/core/profile"
	"strategic_posture/pkg/core/projection"
)

func newTestHandler(parallel bool) *Handler {
	return NewHandler(nil, coreConfig.Settings{
		DefaultSelection: profile.ArmedForces,
		Parallel:         parallel,
		Locale:           "en",
	})
}

func get(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandleDashboard_Selection(t *testing.T) {
	h := newTestHandler(true)
	rec := get(t, h.HandleDashboard, "/api/dashboard?selection="+url.QueryEscape(profile.StrategicForces))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	resp := decode[Response](t, rec)
	_, err := uuid.Parse(resp.RunID)
	assert.NoError(t, err)
	assert.Equal(t, profile.StrategicForces, resp.Selection)
	assert.Equal(t, []string{"nuclear"}, resp.Groups)
	assert.Len(t, resp.Years, projection.YearCount)
	assert.Len(t, resp.Columns, 18)
	assert.True(t, resp.Configuration.HasTag(profile.TagNuclear))
	assert.Equal(t, 270, resp.Summary.Warheads)
	require.Len(t, resp.Trends, 18)
	assert.Equal(t, resp.Columns[0].Key, resp.Trends[0].Key)
}

func TestHandleDashboard_DefaultSelection(t *testing.T) {
	h := newTestHandler(false)
	resp := decode[Response](t, get(t, h.HandleDashboard, "/api/dashboard"))

	assert.Equal(t, profile.ArmedForces, resp.Selection)
	assert.Equal(t, []string{"nuclear", "modernization", "maritime", "cyber"}, resp.Groups)
}

func TestHandleDashboard_UnknownSelection(t *testing.T) {
	h := newTestHandler(true)
	resp := decode[Response](t, get(t, h.HandleDashboard, "/api/dashboard?selection=Unknown+Unit"))

	assert.Empty(t, resp.Groups)
	assert.Len(t, resp.Columns, 14)
	assert.Equal(t, profile.DefaultBudgetBase, resp.Configuration.BudgetBase)
	assert.True(t, resp.Configuration.HasTag(profile.TagGenericDefense))
}

func TestHandleDashboard_Modes(t *testing.T) {
	h := newTestHandler(true)

	resp := decode[Response](t, get(t, h.HandleDashboard, "/api/dashboard?mode=systemic&selection=ignored"))
	assert.Equal(t, catalog.SystemicView, resp.Selection)

	resp = decode[Response](t, get(t, h.HandleDashboard, "/api/dashboard?mode=scenarios"))
	assert.Equal(t, catalog.ScenariosView, resp.Selection)
	assert.Empty(t, resp.Groups)

	resp = decode[Response](t, get(t, h.HandleDashboard, "/api/dashboard?mode=program&selection="+url.QueryEscape(profile.Cybersecurity)))
	assert.Equal(t, []string{"cyber"}, resp.Groups)
}

func TestHandleDashboard_CanceledRequest(t *testing.T) {
	h := newTestHandler(true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleDashboard_Options(t *testing.T) {
	h := newTestHandler(true)
	req := httptest.NewRequest(http.MethodOptions, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleReport_Formats(t *testing.T) {
	h := newTestHandler(true)
	sel := url.QueryEscape(profile.Navy)

	rec := get(t, h.HandleReport, "/api/dashboard/report?selection="+sel)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "# "+profile.Navy))

	rec = get(t, h.HandleReport, "/api/dashboard/report?format=html&selection="+sel)
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, projection.YearCount, doc.Find("table tbody tr").Length())

	rec = get(t, h.HandleReport, "/api/dashboard/report?format=csv&selection="+sel)
	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, projection.YearCount+1)
	assert.True(t, strings.HasPrefix(lines[0], "year,budget_bn,"))
}

func TestHandleReport_Locale(t *testing.T) {
	h := newTestHandler(true)

	en := get(t, h.HandleReport, "/api/dashboard/report?selection=").Body.String()
	fr := get(t, h.HandleReport, "/api/dashboard/report?selection=&locale=fr").Body.String()

	assert.Contains(t, en, " 2.5 |")
	assert.Contains(t, fr, " 2,5 |")
}

func TestHandleReport_BadInput(t *testing.T) {
	h := newTestHandler(true)

	rec := get(t, h.HandleReport, "/api/dashboard/report?format=pdf")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h.HandleReport, "/api/dashboard/report?locale=%21%21")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	branches := decode[[]catalog.Entity](t, get(t, HandleBranches, "/api/catalog/branches"))
	assert.Len(t, branches, len(catalog.ListBranches()))

	programs := decode[[]catalog.Entity](t, get(t, HandlePrograms, "/api/catalog/programs"))
	assert.Len(t, programs, len(catalog.ListPrograms()))

	missiles := decode[[]catalog.Missile](t, get(t, HandleMissiles, "/api/catalog/missiles"))
	require.NotEmpty(t, missiles)

	one := decode[catalog.Missile](t, get(t, HandleMissiles, "/api/catalog/missiles?name="+url.QueryEscape(missiles[0].Name)))
	assert.Equal(t, missiles[0], one)

	assets := decode[[]catalog.NavalAsset](t, get(t, HandleNavalAssets, "/api/catalog/naval-assets"))
	require.NotEmpty(t, assets)

	asset := decode[catalog.NavalAsset](t, get(t, HandleNavalAssets, "/api/catalog/naval-assets?name="+url.QueryEscape(assets[0].Name)))
	assert.Equal(t, assets[0], asset)
}

func TestCatalogEndpoints_NotFound(t *testing.T) {
	rec := get(t, HandleMissiles, "/api/catalog/missiles?name=Nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, HandleNavalAssets, "/api/catalog/naval-assets?name=Nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleReference(t *testing.T) {
	ref := decode[Reference](t, get(t, HandleReference, "/api/catalog/reference"))

	assert.Len(t, ref.Tensions, len(catalog.Tensions()))
	assert.Len(t, ref.Threats, len(catalog.Threats()))
	require.Len(t, ref.Cooperation, projection.YearCount)
	assert.Equal(t, ref.Years[0], projection.FirstYear)
	assert.Equal(t, 40.0, ref.Cooperation[0])
	assert.Equal(t, 85.0, ref.Cooperation[len(ref.Cooperation)-1])
}
