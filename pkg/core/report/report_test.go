package report_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"strategic_posture/pkg/core/dataset"
	"strategic_posture/pkg/core/profile"
	"strategic_posture/pkg/core/projection"
	"strategic_posture/pkg/core/report"
)

func build(t *testing.T, selection string) report.Report {
	t.Helper()
	ds, cfg := dataset.Build(selection)
	require.NotNil(t, ds)
	return report.New(ds, cfg)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]report.Format{
		"markdown": report.FormatMarkdown,
		"md":       report.FormatMarkdown,
		"HTML":     report.FormatHTML,
		" csv ":    report.FormatCSV,
		"json":     report.FormatJSON,
	}
	for in, want := range cases {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseFormat("xlsx")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestMarkdown_Table(t *testing.T) {
	r := build(t, profile.StrategicForces)
	md := report.Markdown(r, report.Options{Locale: language.English})

	assert.True(t, strings.HasPrefix(md, "# "+profile.StrategicForces+"\n"))
	assert.Contains(t, md, "| Year |")
	assert.Contains(t, md, "| Warhead stockpile |")
	assert.Contains(t, md, "| 2027 |")
	assert.Contains(t, md, "- Priority tags: ballistic_missiles, nuclear, nuclear_triad, submarines")

	var rows int
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "| 20") {
			rows++
		}
	}
	assert.Equal(t, projection.YearCount, rows)
}

func TestMarkdown_Locale(t *testing.T) {
	r := build(t, "")

	en := report.Markdown(r, report.Options{Locale: language.English})
	fr := report.Markdown(r, report.Options{Locale: language.French})

	// Military share of GDP in 2000 is 2.5
	assert.Contains(t, en, " 2.5 |")
	assert.Contains(t, fr, " 2,5 |")
	assert.Equal(t, fr, report.Markdown(r, report.Options{}))
}

func TestMarkdown_GenericTitle(t *testing.T) {
	r := build(t, "")
	md := report.Markdown(r, report.Options{})
	assert.True(t, strings.HasPrefix(md, "# Profil générique\n"))
	assert.NotContains(t, md, "Max missile range:")
}

func TestHTML_Table(t *testing.T) {
	r := build(t, profile.ArmedForces)
	page, err := report.HTML(r, report.Options{Locale: language.English})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, profile.ArmedForces, doc.Find("title").Text())
	assert.Equal(t, profile.ArmedForces, doc.Find("h1").First().Text())

	table := doc.Find("table").First()
	assert.Equal(t, len(r.Dataset.Columns)+1, table.Find("thead th").Length())
	assert.Equal(t, projection.YearCount, table.Find("tbody tr").Length())
	assert.Equal(t, "2000", strings.TrimSpace(table.Find("tbody tr").First().Find("td").First().Text()))
}

func TestCSV(t *testing.T) {
	r := build(t, profile.Navy)

	var buf bytes.Buffer
	require.NoError(t, report.CSV(&buf, r.Dataset))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, projection.YearCount+1)

	assert.Equal(t, append([]string{"year"}, r.Dataset.Keys()...), records[0])
	assert.Equal(t, "2000", records[1][0])
	assert.Equal(t, "2027", records[len(records)-1][0])

	ships := -1
	for i, k := range records[0] {
		if k == projection.CombatShips.Key {
			ships = i
		}
	}
	require.Positive(t, ships)
	assert.Equal(t, "70", records[len(records)-1][ships])
}

func TestRender_JSON(t *testing.T) {
	r := build(t, profile.StrategicForces)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, r, report.FormatJSON, report.Options{}))

	var decoded struct {
		Configuration profile.Configuration `json:"configuration"`
		Dataset       dataset.Dataset       `json:"dataset"`
		Summary       dataset.Summary       `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.True(t, decoded.Configuration.HasTag(profile.TagNuclear))
	assert.Equal(t, r.Dataset.Keys(), decoded.Dataset.Keys())
	assert.Equal(t, r.Summary.Warheads, decoded.Summary.Warheads)
}

func TestRender_UnknownFormat(t *testing.T) {
	r := build(t, "")
	err := report.Render(&bytes.Buffer{}, r, report.Format("pdf"), report.Options{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", report.FormatHTML.ContentType())
	assert.Equal(t, "application/json", report.FormatJSON.ContentType())
	assert.Equal(t, "text/csv; charset=utf-8", report.FormatCSV.ContentType())
	assert.Equal(t, "text/markdown; charset=utf-8", report.FormatMarkdown.ContentType())
}
