package classify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name         string
		texts        []string
		wantSector   string
		wantIndustry string
		wantOK       bool
	}{
		{"biotech", []string{"Able Therapeutics Inc"}, "Healthcare", "Biotechnology", true},
		{"spac", []string{"Blue Ocean Acquisition Corp"}, "Financial Services", "Banking & Capital Markets", true},
		{"software", []string{"Cloudline Software Ltd"}, "Technology", "Software & Services", true},
		{"description used", []string{"Zeta Holdings", "operates solar farms"}, "Energy", "Energy", true},
		{"no match", []string{"Zeta Holdings"}, "", "", false},
		{"empty", []string{"", " "}, "", "", false},
		// both the biotech and the technology rules match; the earlier one wins
		{"first match wins", []string{"Genomic Data Technologies"}, "Healthcare", "Biotechnology", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sector, industry, ok := c.Classify(tt.texts...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSector, sector)
			assert.Equal(t, tt.wantIndustry, industry)
		})
	}
}

func TestClassify_CustomRuleOrder(t *testing.T) {
	a := Rule{Sector: "A", Pattern: regexp.MustCompile(`foo`)}
	b := Rule{Sector: "B", Pattern: regexp.MustCompile(`foo`)}

	s, _, _ := New([]Rule{a, b}).Classify("foo")
	assert.Equal(t, "A", s)

	s, _, _ = New([]Rule{b, a}).Classify("foo")
	assert.Equal(t, "B", s)
}
