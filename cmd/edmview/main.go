// Command edmview inspects wire-EDM motion programs: it parses them
// into a path model, detects closed contours, analyzes and normalizes
// controller framing, and renders offline PNG previews.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/wirecut/edmpath"
	"github.com/wirecut/edmpath/check"
)

// config holds the TOML-configurable defaults shared by subcommands.
type config struct {
	Tolerance float64 `toml:"tolerance"`
	Grid      struct {
		TargetPx      float64 `toml:"target_px"`
		LabelTargetPx float64 `toml:"label_target_px"`
	} `toml:"grid"`
	Preview struct {
		Width   int     `toml:"width"`
		Height  int     `toml:"height"`
		Padding float64 `toml:"padding"`
	} `toml:"preview"`
}

func defaultConfig() config {
	var c config
	c.Tolerance = edmpath.DefaultContourTolerance
	c.Grid.TargetPx = edmpath.DefaultGridTargetPx
	c.Grid.LabelTargetPx = edmpath.DefaultLabelTargetPx
	c.Preview.Width = 800
	c.Preview.Height = 600
	c.Preview.Padding = 20
	return c
}

func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: edmview <command> [flags] <args>

commands:
  analyze    analyze a program file and print a JSON report
  normalize  rewrite a program in strict ISO form (CRLF, N blocks, M02)
  compare    show the first differing line of two programs
  parse      parse a program and print path statistics as JSON
  preview    render a program's path to a PNG image

run "edmview <command> -h" for command flags`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "analyze":
		err = cmdAnalyze(os.Args[2:])
	case "normalize":
		err = cmdNormalize(os.Args[2:])
	case "compare":
		err = cmdCompare(os.Args[2:])
	case "parse":
		err = cmdParse(os.Args[2:])
	case "preview":
		err = cmdPreview(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		log.Fatalf("edmview: %v", err)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func cmdAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("analyze: expected one file argument")
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	rep := check.Analyze(data)
	rep.File = fs.Arg(0)
	return printJSON(rep)
}

func cmdNormalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	var (
		startN   = fs.Int("start-n", 10, "first block number")
		step     = fs.Int("step", 10, "block number increment")
		noPct    = fs.Bool("no-percent", false, "do not add a % header")
		noM02    = fs.Bool("no-m02", false, "do not force a trailing M02")
		lf       = fs.Bool("lf", false, "use LF line endings instead of CRLF")
		keepSemi = fs.Bool("keep-semicolons", false, "keep ; comments")
	)
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("normalize: expected input and output file arguments")
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	opts := check.NormalizeOptions{
		StartN:          *startN,
		Step:            *step,
		AddPercent:      !*noPct,
		EnsureM02:       !*noM02,
		CRLF:            !*lf,
		StripSemicolons: !*keepSemi,
	}
	if err := os.WriteFile(fs.Arg(1), check.Normalize(data, opts), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", fs.Arg(1))
	return nil
}

func cmdCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	var (
		keepHeader = fs.Bool("keep-header", false, "compare the % header too")
		keepFooter = fs.Bool("keep-footer", false, "compare the M02 trailer too")
	)
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("compare: expected two file arguments")
	}
	a, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}
	opts := check.CompareOptions{
		SkipHeaderPercent: !*keepHeader,
		SkipTrailingM02:   !*keepFooter,
	}
	return printJSON(check.Compare(a, b, opts))
}

// parseReport is the JSON shape of the parse subcommand.
type parseReport struct {
	File     string              `json:"file"`
	Stats    edmpath.Stats       `json:"stats"`
	Bounds   *edmpath.Bounds     `json:"bounds,omitempty"`
	Errors   []edmpath.LineError `json:"errors,omitempty"`
	Warnings []edmpath.LineError `json:"warnings,omitempty"`
	Contours []edmpath.Contour   `json:"contours,omitempty"`
}

func cmdParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var (
		strict   = fs.Bool("strict", false, "stop on the first coordinate error")
		contours = fs.Bool("contours", true, "detect closed contours")
		cfgPath  = fs.String("config", "", "TOML config file")
		verbose  = fs.Bool("v", false, "log parser diagnostics to stderr")
	)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("parse: expected one file argument")
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *verbose {
		edmpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	text := check.Decode(data)

	var popts []edmpath.ParseOption
	if *strict {
		popts = append(popts, edmpath.WithStrictMode())
	}
	res, err := edmpath.Parse(text, popts...)
	if err != nil {
		return err
	}

	rep := parseReport{
		File:     fs.Arg(0),
		Stats:    res.Stats,
		Errors:   res.Errors,
		Warnings: res.Warnings,
	}
	if res.Bounds.IsValid() {
		b := res.Bounds
		rep.Bounds = &b
	}
	if *contours {
		rep.Contours = edmpath.DetectContours(text, edmpath.WithTolerance(cfg.Tolerance))
	}
	return printJSON(rep)
}

func cmdPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var (
		out     = fs.String("out", "preview.png", "output PNG file")
		width   = fs.Int("width", 0, "image width (overrides config)")
		height  = fs.Int("height", 0, "image height (overrides config)")
		cfgPath = fs.String("config", "", "TOML config file")
	)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("preview: expected one file argument")
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		cfg.Preview.Width = *width
	}
	if *height > 0 {
		cfg.Preview.Height = *height
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	res, err := edmpath.Parse(check.Decode(data))
	if err != nil {
		return err
	}
	if !res.Bounds.IsValid() {
		return fmt.Errorf("preview: %s contains no drawable motion", fs.Arg(0))
	}
	if err := writePreview(*out, res, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", *out, cfg.Preview.Width, cfg.Preview.Height)
	return nil
}
