package competitor

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sells-group/salesfit/internal/model"
)

// productKeywords anchor the text windows extracted as product mentions.
var productKeywords = []string{
	"platform", "software", "solution", "service", "product",
	"tool", "system", "application", "suite", "cloud",
}

// productCategoryTerms are the category markers used to judge two product
// mentions similar.
var productCategoryTerms = []string{
	"crm", "erp", "analytics", "cloud", "storage", "compute",
	"database", "security", "payment", "messaging", "collaboration",
	"marketing", "sales", "support", "finance", "hr",
}

// customerSegmentKeywords maps snippet substrings to canonical customer
// segment labels.
var customerSegmentKeywords = []struct {
	keyword string
	segment string
}{
	{"enterprise", "enterprise"},
	{"smb", "SMB"},
	{"small business", "SMB"},
	{"startup", "startups"},
	{"fortune 500", "Fortune 500"},
	{"government", "government"},
	{"healthcare", "healthcare"},
	{"financial", "financial services"},
	{"retail", "retail"},
}

// Overlap describes a detected product or customer overlap between the
// two sides.
type Overlap struct {
	HasOverlap bool
	Severity   int
	Reason     string
	Details    []string
}

// DetectProductOverlap extracts short text windows around generic product
// keywords from each side's source snippets and tests them pairwise for
// shared category terms.
func DetectProductOverlap(research *model.ResearchData) Overlap {
	if research == nil {
		return Overlap{}
	}

	sellerProducts := extractProductMentions(research.Seller.Sources)
	targetProducts := extractProductMentions(research.Target.Sources)

	var common []string
	for _, sp := range sellerProducts {
		for _, tp := range targetProducts {
			if similarProducts(sp, tp) {
				common = append(common, sp)
				break
			}
		}
	}

	if len(common) == 0 {
		return Overlap{}
	}

	severity := len(common) * 2
	if severity > 8 {
		severity = 8
	}
	return Overlap{
		HasOverlap: true,
		Severity:   severity,
		Reason:     "Both companies offer similar products/services",
		Details:    common,
	}
}

// DetectCustomerOverlap extracts customer-segment keywords from each
// side's source snippets and tests for intersection.
func DetectCustomerOverlap(research *model.ResearchData) Overlap {
	if research == nil {
		return Overlap{}
	}

	sellerSegments := extractCustomerSegments(research.Seller)
	targetSegments := extractCustomerSegments(research.Target)

	var common []string
	for _, s := range sellerSegments {
		for _, t := range targetSegments {
			if s == t {
				common = append(common, s)
				break
			}
		}
	}

	if len(common) == 0 {
		return Overlap{}
	}

	severity := (len(common)*5 + 1) / 2 // 2.5 per segment, rounded
	if severity > 7 {
		severity = 7
	}
	return Overlap{
		HasOverlap: true,
		Severity:   severity,
		Reason:     "Both target the same customer segments: " + strings.Join(common, ", "),
		Details:    common,
	}
}

func extractProductMentions(sources []model.Source) []string {
	var products []string
	for _, source := range sources {
		if source.Snippet == "" {
			continue
		}
		lower := strings.ToLower(source.Snippet)
		for _, keyword := range productKeywords {
			idx := strings.Index(lower, keyword)
			if idx < 0 {
				continue
			}
			start := idx - 20
			if start < 0 {
				start = 0
			}
			end := idx + 30
			if end > len(source.Snippet) {
				end = len(source.Snippet)
			}
			if start > end {
				start = end
			}
			// Widen byte offsets to rune boundaries so multibyte
			// snippets never get cut mid-rune.
			for start > 0 && !utf8.RuneStart(source.Snippet[start]) {
				start--
			}
			for end < len(source.Snippet) && !utf8.RuneStart(source.Snippet[end]) {
				end++
			}
			products = append(products, strings.TrimSpace(source.Snippet[start:end]))
		}
	}
	return products
}

func similarProducts(a, b string) bool {
	al := strings.ToLower(a)
	bl := strings.ToLower(b)
	for _, term := range productCategoryTerms {
		if strings.Contains(al, term) && strings.Contains(bl, term) {
			return true
		}
	}
	return false
}

func extractCustomerSegments(side model.CompanyResearch) []string {
	seen := make(map[string]bool)
	for _, source := range side.Sources {
		text := strings.ToLower(source.Snippet)
		for _, entry := range customerSegmentKeywords {
			if strings.Contains(text, entry.keyword) {
				seen[entry.segment] = true
			}
		}
	}

	segments := make([]string, 0, len(seen))
	for segment := range seen {
		segments = append(segments, segment)
	}
	sort.Strings(segments)
	return segments
}
