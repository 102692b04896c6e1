package omnidocs

// Framework identifies a documentation framework.
type Framework string

// Supported documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// Navigation is the navigation tree found on a rendered page.
type Navigation struct {
	// Framework is the detected documentation framework, if any.
	Framework Framework

	// Heuristic names the container heuristic that matched.
	Heuristic string

	// Links holds the absolute URLs of the navigation anchors in document
	// order, resolved against the page they were rendered on.
	Links []string
}

// Navigator locates the navigation tree of a rendered page.
type Navigator interface {
	// Navigation parses html rendered at pageURL and returns the links of
	// the first navigation container holding a document page under scope.
	// Returns ENOTFOUND if there is none.
	Navigation(html string, pageURL string, scope PageRef) (*Navigation, error)
}

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}
