// Package printing turns rendered HTML into PDF bytes with a headless
// browser and hands finished documents to the system print spooler.
package printing

import "context"

// Options control the physical layout of the rasterized output.
type Options struct {
	PaperSize string
	Landscape bool
}

// Engine rasterizes a fully composed HTML document into PDF bytes.
type Engine interface {
	RenderPDF(ctx context.Context, html string, opts Options) ([]byte, error)
}

type paperDimension struct {
	width  float64
	height float64
}

// Paper sizes in inches, portrait orientation.
var paperDimensions = map[string]paperDimension{
	"A3":     {11.69, 16.54},
	"A4":     {8.27, 11.69},
	"A5":     {5.83, 8.27},
	"Letter": {8.5, 11},
	"Legal":  {8.5, 14},
}

func dimensionsFor(paperSize string) paperDimension {
	if d, ok := paperDimensions[paperSize]; ok {
		return d
	}
	return paperDimensions["A4"]
}
