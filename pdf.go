package omnidocs

import (
	"math"
	"strconv"
	"strings"
)

// Default PDF layout.
const (
	DefaultPageFormat = "A4"
	DefaultMargin     = "20mm"
)

// paperSizes maps page format names to width and height in inches.
var paperSizes = map[string][2]float64{
	"letter":  {8.5, 11},
	"legal":   {8.5, 14},
	"tabloid": {11, 17},
	"ledger":  {17, 11},
	"a0":      {33.1, 46.8},
	"a1":      {23.4, 33.1},
	"a2":      {16.54, 23.4},
	"a3":      {11.7, 16.54},
	"a4":      {8.27, 11.7},
	"a5":      {5.83, 8.27},
	"a6":      {4.13, 5.83},
}

// PageFormats lists the supported page format names.
var PageFormats = []string{"A4", "Letter", "Legal", "Tabloid", "Ledger", "A0", "A1", "A2", "A3", "A5", "A6"}

// Margins holds CSS-style lengths such as "20mm", "1in" or "96px".
type Margins struct {
	Top    string
	Bottom string
	Left   string
	Right  string
}

// PDFOptions configures PDF snapshots.
type PDFOptions struct {
	Format          string
	PrintBackground bool
	Margins         Margins
}

// DefaultPDFOptions returns A4 pages with 20mm margins and backgrounds.
func DefaultPDFOptions() *PDFOptions {
	return &PDFOptions{
		Format:          DefaultPageFormat,
		PrintBackground: true,
		Margins: Margins{
			Top:    DefaultMargin,
			Bottom: DefaultMargin,
			Left:   DefaultMargin,
			Right:  DefaultMargin,
		},
	}
}

// Validate returns an error if the format or a margin is invalid.
func (o *PDFOptions) Validate() error {
	if _, _, ok := PaperSize(o.Format); !ok {
		return Errorf(EINVALID, "unknown page format %q", o.Format)
	}
	for _, m := range []string{o.Margins.Top, o.Margins.Bottom, o.Margins.Left, o.Margins.Right} {
		if _, err := ParseLength(m); err != nil {
			return err
		}
	}
	return nil
}

// PaperSize returns the width and height in inches of a page format.
// Format names are case-insensitive.
func PaperSize(format string) (width, height float64, ok bool) {
	size, ok := paperSizes[strings.ToLower(strings.TrimSpace(format))]
	return size[0], size[1], ok
}

// ParseLength converts a length with a mm, cm, in or px unit to inches.
// A bare number is read as pixels and an empty string as zero.
func ParseLength(s string) (float64, error) {
	raw := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}

	perInch := 96.0
	for unit, n := range map[string]float64{"mm": 25.4, "cm": 2.54, "in": 1, "px": 96} {
		if strings.HasSuffix(s, unit) {
			s = strings.TrimSpace(strings.TrimSuffix(s, unit))
			perInch = n
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Errorf(EINVALID, "invalid length %q", raw)
	}
	return v / perInch, nil
}
