package competitor

import (
	"strconv"
	"strings"

	"github.com/sells-group/salesfit/internal/model"
)

// competitionKeywords flag any level of competitive language in research
// text.
var competitionKeywords = []string{
	"compet", "rival", "versus", " vs ", "alternative", "instead of",
	"better than", "replaces", "switch from", "migrate from", "compete",
	"market leader", "market share", "head to head", "face off",
	"battle", "challenge", "threat", "disrupt", "cannibalize",
	"same space", "similar offering", "comparable", "substitute",
}

var industryOverlapKeywords = []string{
	"same industry", "same market", "same sector", "same vertical",
	"same customers", "target audience", "customer base", "overlap",
}

var productSimilarityKeywords = []string{
	"similar product", "similar service", "similar solution", "similar platform",
	"same problem", "same use case", "similar features", "comparable offering",
}

// genericTechTerms are the broad technology markers used for stack
// overlap detection.
var genericTechTerms = []string{"cloud", "saas", "platform", "api", "enterprise"}

// AnalyzeResearch scans the research bags for competition signals. Each
// keyword hit where both company names co-occur in the same text is a
// HIGH signal; a single-company hit is MEDIUM. Structured financial data
// and technology stacks contribute additional signals. Nil research
// yields no signals.
func AnalyzeResearch(research *model.ResearchData, seller, target string) []model.Signal {
	if research == nil {
		return nil
	}

	var signals []model.Signal
	sellerLower := strings.ToLower(seller)
	targetLower := strings.ToLower(target)

	allNews := make([]model.NewsItem, 0, len(research.Seller.News)+len(research.Target.News))
	allNews = append(allNews, research.Seller.News...)
	allNews = append(allNews, research.Target.News...)

	for _, article := range allNews {
		text := strings.ToLower(article.Title + " " + article.Description + " " + article.Summary)

		for _, keyword := range competitionKeywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			switch {
			case strings.Contains(text, sellerLower) && strings.Contains(text, targetLower):
				signals = append(signals, model.Signal{
					Type:     "direct_competition",
					Evidence: article.Title,
					Source:   article.URL,
					Strength: model.SignalHigh,
					Keyword:  keyword,
					Context:  contextAround(text, keyword),
				})
			case strings.Contains(text, sellerLower) || strings.Contains(text, targetLower):
				signals = append(signals, model.Signal{
					Type:     "competition_context",
					Evidence: article.Title,
					Source:   article.URL,
					Strength: model.SignalMedium,
					Keyword:  keyword,
				})
			}
		}

		for _, keyword := range industryOverlapKeywords {
			if strings.Contains(text, keyword) {
				signals = append(signals, model.Signal{
					Type:     "industry_overlap",
					Evidence: article.Title,
					Source:   article.URL,
					Strength: model.SignalMedium,
					Keyword:  keyword,
				})
			}
		}

		for _, keyword := range productSimilarityKeywords {
			if strings.Contains(text, keyword) {
				signals = append(signals, model.Signal{
					Type:     "product_similarity",
					Evidence: article.Title,
					Source:   article.URL,
					Strength: model.SignalMedium,
					Keyword:  keyword,
				})
			}
		}
	}

	allSources := make([]model.Source, 0, len(research.Seller.Sources)+len(research.Target.Sources))
	allSources = append(allSources, research.Seller.Sources...)
	allSources = append(allSources, research.Target.Sources...)

	for _, source := range allSources {
		if source.Snippet == "" && source.Title == "" {
			continue
		}
		text := strings.ToLower(source.Snippet + " " + source.Title)
		evidence := source.Snippet
		if evidence == "" {
			evidence = source.Title
		}

		for _, keyword := range competitionKeywords {
			if strings.Contains(text, keyword) &&
				strings.Contains(text, sellerLower) && strings.Contains(text, targetLower) {
				signals = append(signals, model.Signal{
					Type:     "web_competition",
					Evidence: evidence,
					Source:   source.URL,
					Strength: model.SignalHigh,
					Keyword:  keyword,
				})
			}
		}

		if containsAnyOf(text, "comparison", "vs", "versus", "review", "alternative") &&
			(strings.Contains(text, sellerLower) || strings.Contains(text, targetLower)) {
			signals = append(signals, model.Signal{
				Type:     "comparison_content",
				Evidence: evidence,
				Source:   source.URL,
				Strength: model.SignalHigh,
			})
		}

		if containsAnyOf(text, "top competitor", "best alternative", "top 10", "top 5") {
			signals = append(signals, model.Signal{
				Type:     "competitor_list",
				Evidence: evidence,
				Source:   source.URL,
				Strength: model.SignalHigh,
			})
		}
	}

	signals = append(signals, financialSignals(research)...)
	signals = append(signals, technologySignals(research)...)

	return signals
}

// financialSignals compares structured financial summaries: identical
// industry fields are a HIGH signal, market caps within a 0.5x-2.0x ratio
// a MEDIUM "similar scale" signal.
func financialSignals(research *model.ResearchData) []model.Signal {
	sf := research.Seller.Financials
	tf := research.Target.Financials
	if sf == nil || tf == nil {
		return nil
	}

	var signals []model.Signal

	if sf.Industry != "" && sf.Industry == tf.Industry {
		signals = append(signals, model.Signal{
			Type:     "same_industry",
			Evidence: "Both operate in " + sf.Industry,
			Source:   "Financial data analysis",
			Strength: model.SignalHigh,
		})
	}

	sellerCap := ParseFinancialValue(sf.MarketCap)
	targetCap := ParseFinancialValue(tf.MarketCap)
	if sellerCap > 0 && targetCap > 0 {
		ratio := sellerCap / targetCap
		if ratio > 0.5 && ratio < 2.0 {
			signals = append(signals, model.Signal{
				Type:     "similar_scale",
				Evidence: "Companies of similar size often compete",
				Source:   "Market cap analysis",
				Strength: model.SignalMedium,
			})
		}
	}

	return signals
}

// technologySignals reports a MEDIUM signal when both stacks share at
// least three generic technology terms.
func technologySignals(research *model.ResearchData) []model.Signal {
	st := research.Seller.Technology
	tt := research.Target.Technology
	if st == nil || tt == nil {
		return nil
	}

	sellerStack := strings.ToLower(strings.Join(st.Stack, " "))
	targetStack := strings.ToLower(strings.Join(tt.Stack, " "))

	var overlap []string
	for _, term := range genericTechTerms {
		if strings.Contains(sellerStack, term) && strings.Contains(targetStack, term) {
			overlap = append(overlap, term)
		}
	}

	if len(overlap) >= 3 {
		return []model.Signal{{
			Type:     "technology_overlap",
			Evidence: "Significant technology overlap in " + strings.Join(overlap, ", "),
			Source:   "Technology stack analysis",
			Strength: model.SignalMedium,
		}}
	}
	return nil
}

// ParseFinancialValue parses display strings like "$1.2B" or "450M" into
// a plain float. Unparseable input yields 0.
func ParseFinancialValue(value string) float64 {
	if value == "" {
		return 0
	}
	s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	s = strings.ToUpper(s)

	multiplier := 1.0
	switch {
	case strings.Contains(s, "T"):
		multiplier = 1e12
	case strings.Contains(s, "B"):
		multiplier = 1e9
	case strings.Contains(s, "M"):
		multiplier = 1e6
	case strings.Contains(s, "K"):
		multiplier = 1e3
	}

	numeric := strings.TrimRight(s, "TBMK")
	v, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0
	}
	return v * multiplier
}

func contextAround(text, keyword string) string {
	idx := strings.Index(text, keyword)
	if idx < 0 {
		return ""
	}
	start := idx - 50
	if start < 0 {
		start = 0
	}
	end := idx + 100
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func containsAnyOf(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
