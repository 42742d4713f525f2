package model

// Source is one web research result for a company.
type Source struct {
	URL     string `json:"url"`
	Type    string `json:"type,omitempty"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// NewsItem is one news article about a company.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Summary     string `json:"summary,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Financials holds the structured financial summary for a company. All
// monetary fields are display strings ("$1.2B" style); absent means
// unknown.
type Financials struct {
	Industry  string `json:"industry,omitempty"`
	MarketCap string `json:"market_cap,omitempty"`
	Revenue   string `json:"revenue,omitempty"`
	Employees string `json:"employees,omitempty"`
}

// TechProfile lists the technology terms associated with a company.
type TechProfile struct {
	Stack []string `json:"stack,omitempty"`
}

// CompanyResearch is the research bag gathered for one side of an
// analysis. Every field is optional; a nil or empty field is a documented
// zero-signal case, never an error.
type CompanyResearch struct {
	Company    string       `json:"company,omitempty"`
	Sources    []Source     `json:"sources,omitempty"`
	News       []NewsItem   `json:"news,omitempty"`
	Financials *Financials  `json:"financials,omitempty"`
	Technology *TechProfile `json:"technology,omitempty"`
}

// ResearchData pairs the seller- and target-side research bags.
type ResearchData struct {
	Seller CompanyResearch `json:"seller"`
	Target CompanyResearch `json:"target"`
}

// SourceCount returns the total number of sources across both sides.
func (r *ResearchData) SourceCount() int {
	if r == nil {
		return 0
	}
	return len(r.Seller.Sources) + len(r.Target.Sources)
}

// NewsCount returns the total number of news items across both sides.
func (r *ResearchData) NewsCount() int {
	if r == nil {
		return 0
	}
	return len(r.Seller.News) + len(r.Target.News)
}
