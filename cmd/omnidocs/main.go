// Command omnidocs converts a documentation site into a single PDF and/or
// Markdown document, following the site's navigation order.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/omnidocs"
	"github.com/fwojciec/omnidocs/crawl"
	"github.com/fwojciec/omnidocs/fs"
	"github.com/fwojciec/omnidocs/goquery"
	"github.com/fwojciec/omnidocs/htmltomarkdown"
	"github.com/fwojciec/omnidocs/pdfcpu"
	"github.com/fwojciec/omnidocs/readability"
	"github.com/fwojciec/omnidocs/rod"
	odslog "github.com/fwojciec/omnidocs/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", omnidocs.ErrorMessageOrText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Renderer replaces the headless browser when set. Used by tests.
	Renderer omnidocs.Renderer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("omnidocs"),
		kong.Description("Convert a documentation site to PDF and/or Markdown in navigation order"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAMLResolver),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	base, err := omnidocs.Canonicalize(cli.URL)
	if err != nil {
		return err
	}
	cfg, err := cli.RunConfig(base)
	if err != nil {
		return err
	}

	if cli.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cli.RunTimeout)
		defer cancel()
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	renderer := m.Renderer
	if renderer == nil {
		session, err := rod.NewSession()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or set ROD_BROWSER_BIN")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		renderer = rod.NewRenderer(session, rod.WithIdleTimeout(cli.IdleTimeout))
	}
	defer renderer.Close()

	var navigator omnidocs.Navigator = goquery.NewNavigator()
	var extractor omnidocs.Extractor
	if cli.Readability {
		extractor = goquery.NewExtractor(goquery.WithFallback(readability.NewExtractor()))
	} else {
		extractor = goquery.NewExtractor()
	}
	var merger omnidocs.PDFMerger = pdfcpu.NewMerger()
	var store omnidocs.OutputStore = fs.NewStore(cfg.Format, cfg.OutputDir, cfg.FinalName)

	if logger != nil {
		renderer = rod.NewLoggingRenderer(renderer, logger)
		navigator = odslog.NewLoggingNavigator(navigator, logger)
		extractor = odslog.NewLoggingExtractor(extractor, logger)
		merger = odslog.NewLoggingMerger(merger, logger)
		store = odslog.NewLoggingStore(store, logger)
	}

	var limiter omnidocs.RateLimiter
	if cli.Rate > 0 {
		limiter = crawl.NewHostLimiter(cli.Rate)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Discoverer: &crawl.Discoverer{
			Renderer:  renderer,
			Navigator: navigator,
			Timeout:   cfg.PageTimeout,
		},
		Crawler: &crawl.Crawler{
			Renderer:    renderer,
			Extractor:   extractor,
			Converter:   htmltomarkdown.NewConverter(),
			Merger:      merger,
			Store:       store,
			RateLimiter: limiter,
		},
	}

	cmd := &ConvertCmd{
		URL:     base.String(),
		Preview: cli.Preview,
		Config:  cfg,
	}
	return cmd.Run(deps)
}

// pageTimeout converts the --timeout seconds value.
func pageTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return omnidocs.DefaultPageTimeout
	}
	return time.Duration(seconds) * time.Second
}
