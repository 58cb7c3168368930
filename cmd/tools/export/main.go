// Command export writes the indicator table of one selection to a file or
// stdout as Markdown, HTML, CSV or JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/language"

	"strategic_posture/pkg/core/catalog"
	"strategic_posture/pkg/core/config"
	"strategic_posture/pkg/core/dataset"
	"strategic_posture/pkg/core/report"
	"strategic_posture/pkg/core/validate"
)

type options struct {
	selection string
	mode      string
	format    string
	profiles  string
	out       string
	locale    string
}

func parseFlags(args []string, settings config.Settings) (options, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.selection, "selection", settings.DefaultSelection, "branch or program name")
	fs.StringVar(&opts.mode, "mode", string(catalog.ModeBranch), "analysis mode: branch, program, systemic or scenarios")
	fs.StringVar(&opts.format, "format", string(report.FormatMarkdown), "output format: markdown, html, csv or json")
	fs.StringVar(&opts.profiles, "profiles", settings.ProfilesFile, "extra profile definitions (.json or .hjson)")
	fs.StringVar(&opts.out, "out", "", "output file (default stdout)")
	fs.StringVar(&opts.locale, "locale", settings.Locale, "number formatting locale")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := parseFlags(args, settings)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	locale, err := language.Parse(opts.locale)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", opts.locale, err)
	}

	settings.ProfilesFile = opts.profiles
	resolver, err := settings.Resolver()
	if err != nil {
		return err
	}

	selection := catalog.SelectionForMode(catalog.AnalysisMode(opts.mode), opts.selection)
	ds, cfg, err := dataset.NewAssembler(resolver).BuildContext(ctx, selection)
	if err != nil {
		return fmt.Errorf("build dataset: %w", err)
	}
	if err := validate.Validate(ds, cfg); err != nil {
		return err
	}

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := report.Render(w, report.New(ds, cfg), format, report.Options{Locale: locale}); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if opts.out != "" {
		log.Printf("[EXPORT] %q (%d columns, groups %v) written to %s", report.Title(selection), len(ds.Columns), ds.Groups, opts.out)
	}
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		config.Exitf("[EXPORT] %v", err)
	}
}
