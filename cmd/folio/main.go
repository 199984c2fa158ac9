// Command folio prints per-line PDF text sizes in a greppable form, guesses
// body and header sizes, and lists header-delimited section candidates.
//
// Usage:
//
//	folio [flags] file.pdf
//
// The per-line listing goes to stdout; summaries go to stderr, so e.g.
//
//	folio report.pdf | awk '{if ($1+0 >= 14) print}'
//
// greps all large headings without the diagnostics in the way.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/report"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	var (
		configPath     string
		maxPages       int
		step           float64
		outlierGap     float64
		minHeaderCount int
		minHeaderFrac  float64
		verbose        bool
	)

	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file")
	flag.IntVar(&maxPages, "max-pages", 20, "Maximum number of pages to scan (0 scans all)")
	flag.Float64Var(&step, "step", 0.5, "Font-size bucket width in points")
	flag.Float64Var(&outlierGap, "outlier-gap", 2.0, "Gap above body size (pt) that always qualifies a header")
	flag.IntVar(&minHeaderCount, "min-header-count", 2, "Recurrence floor for header candidates")
	flag.Float64Var(&minHeaderFrac, "min-header-frac", 0.01, "Fraction of total lines a recurring header style must reach")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file.pdf\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	pdfPath := flag.Arg(0)

	// Precedence: flags > config file > defaults. Only values absent from the
	// command line fall back to the file.
	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg.apply(set, &maxPages, &step, &outlierGap, &minHeaderCount, &minHeaderFrac, &verbose)
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	analyzer := folio.Open(pdfPath).
		MaxPages(maxPages).
		Step(step).
		OutlierGap(outlierGap).
		MinHeaderCount(minHeaderCount).
		MinHeaderFrac(minHeaderFrac)

	analysis, err := analyzer.Analyze()
	if err != nil {
		log.Fatal().Err(err).Str("pdf", pdfPath).Msg("analysis failed")
	}

	log.Debug().
		Int("lines", len(analysis.Lines)).
		Int("buckets", len(analysis.Histogram.Buckets())).
		Msg("extraction complete")

	// Nothing extractable: terminate early and silently.
	if len(analysis.Lines) == 0 {
		return
	}

	rep := report.New(os.Stdout, os.Stderr)
	fail := func(err error) {
		if err != nil {
			log.Fatal().Err(err).Msg("write failed")
		}
	}

	fail(rep.Lines(analysis.Lines))
	fail(rep.Histogram(analysis.Histogram))
	fail(rep.LayoutGuess(analysis.Layout))

	if !analysis.Layout.Detected {
		return
	}
	if analysis.Layout.HasHeaders() {
		fail(rep.Sections(analysis.Sections))
	}
}
