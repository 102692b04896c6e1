package main

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/fwojciec/omnidocs"
)

// ConvertCmd discovers the pages of a site and converts them.
type ConvertCmd struct {
	URL     string
	Preview bool
	Config  omnidocs.Config
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	discovery, err := deps.Discoverer.Discover(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	if c.Preview {
		return c.runPreview(deps, discovery)
	}
	return c.runConvert(deps, discovery)
}

func (c *ConvertCmd) runPreview(deps *Dependencies, discovery *omnidocs.DiscoveryResult) error {
	printDiscovery(deps.Stderr, discovery)
	for _, ref := range discovery.Pages() {
		fmt.Fprintln(deps.Stdout, ref)
	}
	return nil
}

func (c *ConvertCmd) runConvert(deps *Dependencies, discovery *omnidocs.DiscoveryResult) error {
	printDiscovery(deps.Stdout, discovery)

	deps.Crawler.Progress = func(p omnidocs.Progress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "\nskip %s: %s\n", p.URL, omnidocs.ErrorMessageOrText(p.Error))
		}
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 40))
	}

	run, err := deps.Crawler.Run(deps.Ctx, discovery, c.Config)
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
	if run != nil {
		printReport(deps.Stdout, run)
	}
	return err
}

func printDiscovery(w io.Writer, d *omnidocs.DiscoveryResult) {
	if d.Fallback() {
		fmt.Fprintf(w, "No navigation found, converting %s only\n", d.Base())
		return
	}
	framework := string(d.Framework())
	if framework == "" {
		framework = "unknown"
	}
	fmt.Fprintf(w, "Found %d pages (framework: %s, navigation: %s)\n", d.Len(), framework, d.Heuristic())
}

func printReport(w io.Writer, run *omnidocs.Run) {
	fmt.Fprintf(w, "Converted %d of %d pages (%d failed) in %s\n",
		run.Succeeded(), run.Total(), run.Failed(), run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))

	for _, a := range run.Artifacts {
		if a.OK() && a.Warning != "" {
			fmt.Fprintf(w, "  warning %s: %s\n", a.Ref, a.Warning)
		}
	}
	for _, a := range run.Failures() {
		fmt.Fprintf(w, "  failed %s: %s\n", a.Ref, omnidocs.ErrorMessageOrText(a.Err))
	}
	for _, msg := range run.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", msg)
	}
	for _, path := range run.Outputs {
		fmt.Fprintf(w, "Wrote %s\n", path)
	}
}

// truncateURL shortens a URL for display by showing only the path.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
