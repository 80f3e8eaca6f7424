package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLpstat(t *testing.T) {
	out := `printer HP_LaserJet is idle.  enabled since Mon 02 Mar 2026
printer Brother_HL is idle.  enabled since Mon 02 Mar 2026
system default destination: Brother_HL
`
	printers := parseLpstat(out)
	assert.Equal(t, []Printer{
		{Name: "HP_LaserJet"},
		{Name: "Brother_HL", IsDefault: true},
	}, printers)
}

func TestParseLpstatNoDefault(t *testing.T) {
	printers := parseLpstat("printer Office is idle.\n")
	assert.Equal(t, []Printer{{Name: "Office"}}, printers)
}

func TestParseLpstatEmpty(t *testing.T) {
	assert.Empty(t, parseLpstat("lpstat: No destinations added.\n"))
}

func TestDimensionsFor(t *testing.T) {
	assert.Equal(t, paperDimension{8.27, 11.69}, dimensionsFor("A4"))
	assert.Equal(t, paperDimension{8.5, 14}, dimensionsFor("Legal"))
	assert.Equal(t, paperDimension{8.27, 11.69}, dimensionsFor("unknown"))
}
