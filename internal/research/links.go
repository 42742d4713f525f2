package research

import (
	"strings"

	"github.com/sells-group/salesfit/internal/model"
)

// tickerMap resolves well-known company names to stock symbols for the
// financial reference links. Unknown names get no ticker links.
var tickerMap = map[string]string{
	"apple":      "AAPL",
	"microsoft":  "MSFT",
	"google":     "GOOGL",
	"alphabet":   "GOOGL",
	"amazon":     "AMZN",
	"meta":       "META",
	"facebook":   "META",
	"salesforce": "CRM",
	"oracle":     "ORCL",
	"ibm":        "IBM",
	"cisco":      "CSCO",
	"intel":      "INTC",
	"adobe":      "ADBE",
	"netflix":    "NFLX",
	"tesla":      "TSLA",
	"nvidia":     "NVDA",
	"paypal":     "PYPL",
	"zoom":       "ZM",
	"shopify":    "SHOP",
	"spotify":    "SPOT",
	"uber":       "UBER",
	"airbnb":     "ABNB",
	"walmart":    "WMT",
	"jpmorgan":   "JPM",
	"berkshire":  "BRK-B",
}

// TickerFor returns the stock symbol for a company name, or "" when the
// company is not in the lookup table.
func TickerFor(company string) string {
	clean := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(company))
	return tickerMap[clean]
}

// ReferenceLinks builds the deterministic financial reference sources for
// a company. Companies with a known ticker get quote pages on the major
// financial sites; every company gets a profile link derived from its
// name slug.
func ReferenceLinks(company string) []model.Source {
	var links []model.Source

	if ticker := TickerFor(company); ticker != "" {
		links = append(links,
			model.Source{
				URL:   "https://finance.yahoo.com/quote/" + ticker,
				Type:  "financial",
				Title: company + " - Yahoo Finance",
			},
			model.Source{
				URL:   "https://www.marketwatch.com/investing/stock/" + strings.ToLower(ticker),
				Type:  "financial",
				Title: company + " - MarketWatch",
			},
			model.Source{
				URL:   "https://www.bloomberg.com/quote/" + ticker + ":US",
				Type:  "financial",
				Title: company + " - Bloomberg",
			},
			model.Source{
				URL:   "https://www.reuters.com/markets/companies/" + ticker + ".O/",
				Type:  "financial",
				Title: company + " - Reuters",
			},
		)
	}

	links = append(links, model.Source{
		URL:   "https://www.crunchbase.com/organization/" + nameSlug(company),
		Type:  "profile",
		Title: company + " - Company Profile",
	})

	return links
}

// nameSlug lowercases a company name and joins its words with hyphens,
// dropping punctuation.
func nameSlug(company string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(company) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
