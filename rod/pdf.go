package rod

import (
	"github.com/fwojciec/omnidocs"
	"github.com/go-rod/rod/lib/proto"
)

// PrintOptions translates PDF options into a Chrome print request. Paper
// size and margins are given to Chrome in inches.
func PrintOptions(opts *omnidocs.PDFOptions) (*proto.PagePrintToPDF, error) {
	if opts == nil {
		opts = omnidocs.DefaultPDFOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	width, height, _ := omnidocs.PaperSize(opts.Format)

	margins := [4]string{opts.Margins.Top, opts.Margins.Bottom, opts.Margins.Left, opts.Margins.Right}
	var inches [4]float64
	for i, m := range margins {
		v, err := omnidocs.ParseLength(m)
		if err != nil {
			return nil, err
		}
		inches[i] = v
	}

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(inches[0]),
		MarginBottom:    floatPtr(inches[1]),
		MarginLeft:      floatPtr(inches[2]),
		MarginRight:     floatPtr(inches[3]),
		PrintBackground: opts.PrintBackground,
	}, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
