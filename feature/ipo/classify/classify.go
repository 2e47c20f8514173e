package classify

import (
	"regexp"
	"strings"
)

// Rule maps a keyword pattern to a sector and industry.
type Rule struct {
	Sector   string
	Industry string
	Pattern  *regexp.Regexp
}

// DefaultRules is the built-in rule list. Order matters: the first match wins.
var DefaultRules = []Rule{
	{"Healthcare", "Biotechnology", regexp.MustCompile(`(?i)\b(bio|therapeutics?|pharma\w*|oncology|genomic\w*|clinical)\b`)},
	{"Healthcare", "Medical Devices", regexp.MustCompile(`(?i)\b(medical|health\w*|surgical|diagnostics?|hospital)\b`)},
	{"Financial Services", "Banking & Capital Markets", regexp.MustCompile(`(?i)\b(bank\w*|capital|acquisition corp\w*|financial|insurance|securities|fintech)\b`)},
	{"Technology", "Semiconductors", regexp.MustCompile(`(?i)\b(semiconductors?|chips?|silicon|microelectronics)\b`)},
	{"Technology", "Software & Services", regexp.MustCompile(`(?i)\b(software|cloud|data|ai|artificial intelligence|cyber\w*|saas|digital|technolog\w*|tech)\b`)},
	{"Energy", "Energy", regexp.MustCompile(`(?i)\b(energy|oil|gas|solar|renewable|power|battery|lithium)\b`)},
	{"Real Estate", "Real Estate", regexp.MustCompile(`(?i)\b(real estate|reit|properties|property|realty)\b`)},
	{"Consumer", "Consumer Goods & Retail", regexp.MustCompile(`(?i)\b(retail|consumer|foods?|beverages?|restaurants?|apparel|brands?)\b`)},
	{"Industrials", "Industrials", regexp.MustCompile(`(?i)\b(industrial|manufactur\w*|logistics|aerospace|machinery|construction)\b`)},
	{"Communication Services", "Media & Telecom", regexp.MustCompile(`(?i)\b(media|telecom\w*|entertainment|games?|gaming|network)\b`)},
}

// Classifier infers a sector from free text.
type Classifier struct {
	rules []Rule
}

// New creates a classifier. A nil rules list uses DefaultRules.
func New(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// Classify returns the sector and industry of the first rule matching any of the
// texts, in rule order. ok is false when nothing matches.
func (c *Classifier) Classify(texts ...string) (sector, industry string, ok bool) {
	joined := strings.Join(texts, " ")
	if strings.TrimSpace(joined) == "" {
		return "", "", false
	}
	for _, r := range c.rules {
		if r.Pattern.MatchString(joined) {
			return r.Sector, r.Industry, true
		}
	}
	return "", "", false
}
