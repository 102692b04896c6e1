// Package goquery implements DOM heuristics over rendered documentation
// pages: framework detection, navigation discovery and main-content
// extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/omnidocs"
)

var _ omnidocs.FrameworkDetector = (*Detector)(nil)

// frameworkMarkers lists structural markers unique to each framework.
// Rules are checked in order; VitePress precedes VuePress since it reuses
// some VuePress class names.
var frameworkMarkers = []struct {
	framework omnidocs.Framework
	selectors []string
}{
	{omnidocs.FrameworkDocusaurus, []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container", "[data-rh][data-theme]"}},
	{omnidocs.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{omnidocs.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"}},
	{omnidocs.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".VPSidebar"}},
	{omnidocs.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{omnidocs.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"}},
	{omnidocs.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-sidebar-container", ".nextra-toc"}},
}

// generatorNames maps substrings of <meta name="generator"> to frameworks.
// VitePress must be checked before VuePress.
var generatorNames = []struct {
	name      string
	framework omnidocs.Framework
}{
	{"sphinx", omnidocs.FrameworkSphinx},
	{"gitbook", omnidocs.FrameworkGitBook},
	{"docusaurus", omnidocs.FrameworkDocusaurus},
	{"mkdocs", omnidocs.FrameworkMkDocs},
	{"vitepress", omnidocs.FrameworkVitePress},
	{"vuepress", omnidocs.FrameworkVuePress},
	{"nextra", omnidocs.FrameworkNextra},
}

// Detector identifies documentation frameworks from HTML content using
// meta generator tags and framework-specific markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) omnidocs.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return omnidocs.FrameworkUnknown
	}
	return d.DetectDocument(doc)
}

// DetectDocument is like Detect for an already parsed document.
func (d *Detector) DetectDocument(doc *goquery.Document) omnidocs.Framework {
	// Generator tags are the most reliable signal when present.
	generator := strings.ToLower(doc.Find("meta[name='generator']").Last().AttrOr("content", ""))
	if generator != "" {
		for _, g := range generatorNames {
			if strings.Contains(generator, g.name) {
				return g.framework
			}
		}
	}

	for _, rule := range frameworkMarkers {
		for _, sel := range rule.selectors {
			if doc.Find(sel).Length() > 0 {
				return rule.framework
			}
		}
	}

	if hasGitBookClasses(doc) {
		return omnidocs.FrameworkGitBook
	}
	return omnidocs.FrameworkUnknown
}

// hasGitBookClasses reports whether the html element carries at least two
// of GitBook's distinctive classes.
func hasGitBookClasses(doc *goquery.Document) bool {
	class := doc.Find("html").AttrOr("class", "")
	count := 0
	for _, c := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(class, c) {
			count++
		}
	}
	return count >= 2
}
