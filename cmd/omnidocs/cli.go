package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Discoverer *crawl.Discoverer
	Crawler    *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL string `arg:"" help:"Start page of the documentation site"`

	Format      string `short:"f" enum:"pdf,markdown,both" default:"pdf" help:"Output format: pdf, markdown or both"`
	OutputDir   string `short:"o" help:"Directory for per-page files (default: <domain>_pdfs, <domain>_markdown or <domain>_output)"`
	FinalName   string `help:"Path of the final document without extension (default: <domain>_documentation)"`
	KeepPages   bool   `help:"Keep per-page PDFs next to the merged one"`
	Preview     bool   `short:"p" help:"List the discovered pages and exit"`
	Readability bool   `help:"Fall back to readability scoring when no content container matches"`

	PageFormat   string `default:"A4" help:"Paper size: A0-A6, Letter, Legal, Tabloid or Ledger"`
	NoBackground bool   `help:"Do not print background graphics"`
	MarginTop    string `default:"20mm" help:"Top margin (mm, cm, in or px)"`
	MarginBottom string `default:"20mm" help:"Bottom margin (mm, cm, in or px)"`
	MarginLeft   string `default:"20mm" help:"Left margin (mm, cm, in or px)"`
	MarginRight  string `default:"20mm" help:"Right margin (mm, cm, in or px)"`

	Timeout     int           `default:"60" help:"Page load timeout in seconds"`
	IdleTimeout time.Duration `default:"5s" help:"How long to wait for network activity to settle"`
	Concurrency int           `short:"c" default:"1" help:"Pages converted in parallel"`
	Rate        float64       `default:"0" help:"Page loads per second per domain (0 = unlimited)"`
	RunTimeout  time.Duration `default:"0" help:"Stop starting new pages after this long (0 = no limit)"`

	Debug  bool            `help:"Log service calls to stderr"`
	Config kong.ConfigFlag `help:"YAML file with flag defaults"`
}

// RunConfig builds the run configuration, deriving output names from the
// site's domain where flags leave them empty.
func (c *CLI) RunConfig(base omnidocs.PageRef) (omnidocs.Config, error) {
	format, err := omnidocs.ParseOutputFormat(c.Format)
	if err != nil {
		return omnidocs.Config{}, err
	}

	domain := domainName(base)
	outputDir := c.OutputDir
	if outputDir == "" {
		switch format {
		case omnidocs.FormatMarkdown:
			outputDir = domain + "_markdown"
		case omnidocs.FormatBoth:
			outputDir = domain + "_output"
		default:
			outputDir = domain + "_pdfs"
		}
	}
	finalName := c.FinalName
	if finalName == "" {
		finalName = domain + "_documentation"
	}
	finalName = strings.TrimSuffix(strings.TrimSuffix(finalName, ".pdf"), ".md")

	cfg := omnidocs.Config{
		Format:    format,
		OutputDir: outputDir,
		FinalName: finalName,
		PDF: &omnidocs.PDFOptions{
			Format:          c.PageFormat,
			PrintBackground: !c.NoBackground,
			Margins: omnidocs.Margins{
				Top:    c.MarginTop,
				Bottom: c.MarginBottom,
				Left:   c.MarginLeft,
				Right:  c.MarginRight,
			},
		},
		PageTimeout:  pageTimeout(c.Timeout),
		Concurrency:  c.Concurrency,
		KeepPagePDFs: c.KeepPages,
	}
	if err := cfg.Validate(); err != nil {
		return omnidocs.Config{}, err
	}
	return cfg, nil
}

// domainName turns the host into a file-name prefix: docs.example.com
// becomes docs_example_com.
func domainName(base omnidocs.PageRef) string {
	return strings.NewReplacer(".", "_", ":", "_").Replace(base.Host())
}
