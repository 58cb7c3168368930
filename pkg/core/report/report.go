// Package report renders an assembled dataset for people: Markdown tables,
// standalone HTML pages, CSV and JSON exports.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"strategic_posture/pkg/core/dataset"
	"strategic_posture/pkg/core/profile"
	"strategic_posture/pkg/core/utils"
)

// Format is an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned for formats Render does not support.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMarkdown, FormatHTML, FormatCSV, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/markdown; charset=utf-8"
	}
}

// Options tune human-facing output. The zero value formats numbers in French.
type Options struct {
	Locale language.Tag
}

func (o Options) printer() *message.Printer {
	tag := o.Locale
	if tag == language.Und {
		tag = language.French
	}
	return message.NewPrinter(tag)
}

// Report is what gets rendered: the table, its configuration and headline figures.
type Report struct {
	Configuration profile.Configuration `json:"configuration"`
	Dataset       *dataset.Dataset      `json:"dataset"`
	Summary       dataset.Summary       `json:"summary"`
}

// New bundles a dataset and its configuration.
func New(ds *dataset.Dataset, cfg profile.Configuration) Report {
	return Report{Configuration: cfg, Dataset: ds, Summary: dataset.Summarize(ds)}
}

// Render writes the report in the given format.
func Render(w io.Writer, r Report, format Format, opts Options) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r, opts))
		return err
	case FormatHTML:
		page, err := HTML(r, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	case FormatCSV:
		return CSV(w, r.Dataset)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Title is the heading used for a selection.
func Title(selection string) string {
	if selection == "" {
		return "Profil générique"
	}
	return selection
}

// =============================================================================
// MARKDOWN
// =============================================================================

// Markdown renders the configuration, headline figures and the full table.
func Markdown(r Report, opts Options) string {
	p := opts.printer()
	ds, cfg, s := r.Dataset, r.Configuration, r.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title(ds.Selection))

	b.WriteString("## Configuration\n\n")
	fmt.Fprintf(&b, "- Category: %s\n", cfg.Category)
	b.WriteString(p.Sprintf("- Budget base: %.1f\n", cfg.BudgetBase))
	b.WriteString(p.Sprintf("- Personnel base: %.0f\n", cfg.PersonnelBase))
	b.WriteString(p.Sprintf("- Exercises base: %.0f\n", cfg.ExercisesBase))
	fmt.Fprintf(&b, "- Priority tags: %s\n", joinTags(cfg.PriorityTags))
	if len(cfg.Doctrines) > 0 {
		fmt.Fprintf(&b, "- Doctrines: %s\n", strings.Join(cfg.Doctrines, ", "))
	}
	if cfg.Command != "" {
		fmt.Fprintf(&b, "- Command: %s\n", cfg.Command)
	}

	fmt.Fprintf(&b, "\n## Headline %d\n\n", s.Year)
	b.WriteString(p.Sprintf("- Budget: %.1f bn USD (%.1f%% GDP)\n", s.Budget, s.GDPShare))
	b.WriteString(p.Sprintf("- Personnel: %.0fk (%+.1f%% since 2000)\n", s.Personnel, s.PersonnelGrowth))
	b.WriteString(p.Sprintf("- Deterrence: %.0f%% (%d warheads)\n", s.Deterrence, s.Warheads))
	b.WriteString(p.Sprintf("- Mobilization: %.1f days (%+.1f%%)\n", s.MobilizationDays, -s.MobilizationReduction))
	b.WriteString(p.Sprintf("- Readiness: %.1f%% (+%.1f)\n", s.Readiness, s.ReadinessGain))
	if s.MaxMissileRange != nil {
		b.WriteString(p.Sprintf("- Max missile range: %.0f km (%+.1f%%)\n", *s.MaxMissileRange, *s.MaxMissileRangeGrowth))
	}

	b.WriteString("\n## Indicators\n\n")
	b.WriteString("| Year |")
	for _, c := range ds.Columns {
		fmt.Fprintf(&b, " %s |", escapeCell(c.Label))
	}
	b.WriteString("\n|---|")
	for range ds.Columns {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for i, year := range ds.Years {
		fmt.Fprintf(&b, "| %s |", strconv.Itoa(year))
		for _, c := range ds.Columns {
			fmt.Fprintf(&b, " %s |", formatCell(p, c, c.Values[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatCell(p *message.Printer, c dataset.Column, v float64) string {
	if c.Count {
		return p.Sprintf("%.0f", v)
	}
	return p.Sprintf("%.1f", v)
}

func joinTags(tags profile.TagSet) string {
	sorted := tags.Sorted()
	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// =============================================================================
// HTML
// =============================================================================

// HTML renders the Markdown report into a standalone page.
func HTML(r Report, opts Options) (string, error) {
	md := Markdown(r, opts)
	if !utils.ValidateMarkdown(md) {
		return "", errors.New("render html: empty markdown document")
	}
	body, err := utils.MarkdownToHTML(md)
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(Title(r.Dataset.Selection)))
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// =============================================================================
// CSV
// =============================================================================

// CSV writes one header row of column keys and one row per year.
// Numbers are written unlocalized at full precision.
func CSV(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)
	header := append([]string{"year"}, ds.Keys()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, year := range ds.Years {
		record := make([]string, 0, len(ds.Columns)+1)
		record = append(record, strconv.Itoa(year))
		for _, c := range ds.Columns {
			record = append(record, strconv.FormatFloat(c.Values[i], 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
