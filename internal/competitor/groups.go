package competitor

import "strings"

// competitorGroups clusters keyword substrings by market segment. Two
// names matching keywords in the same group are treated as direct
// competitors.
var competitorGroups = [][]string{
	// Tech giants
	{"microsoft", "apple", "google", "amazon", "meta", "oracle"},
	// Cloud providers
	{"aws", "azure", "gcp", "google cloud", "microsoft azure", "amazon web services"},
	// CRM / enterprise software
	{"salesforce", "hubspot", "zoho", "pipedrive", "monday", "dynamics"},
	// Social media
	{"facebook", "meta", "twitter", "x", "linkedin", "tiktok", "snapchat"},
	// E-commerce
	{"amazon", "walmart", "target", "ebay", "alibaba"},
	// Streaming
	{"netflix", "disney", "hulu", "hbo", "paramount", "peacock", "apple tv"},
	// Payments
	{"paypal", "stripe", "square", "adyen", "worldpay"},
	// Ride-sharing
	{"uber", "lyft", "didi", "grab"},
	// Food delivery
	{"doordash", "uber eats", "grubhub", "postmates"},
	// Airlines
	{"united", "american", "delta", "southwest", "jetblue"},
	// Automakers
	{"tesla", "ford", "gm", "general motors", "toyota", "volkswagen", "bmw", "mercedes"},
	// Banks
	{"jpmorgan", "chase", "bank of america", "wells fargo", "citibank", "goldman sachs"},
	// Consulting
	{"mckinsey", "bain", "bcg", "deloitte", "pwc", "ey", "kpmg", "accenture"},
}

// companyIndustries maps well-known company names to a fine-grained
// industry string; two companies in the same industry are medium-severity
// competitors.
var companyIndustries = map[string]string{
	// Tech / software
	"microsoft":  "technology",
	"apple":      "technology",
	"google":     "technology",
	"amazon":     "e-commerce/cloud",
	"meta":       "social-media",
	"oracle":     "enterprise-software",
	"salesforce": "crm-software",
	"adobe":      "creative-software",
	"ibm":        "enterprise-technology",
	"cisco":      "networking",
	"intel":      "semiconductors",
	"nvidia":     "semiconductors",

	// E-commerce / retail
	"walmart": "retail",
	"target":  "retail",
	"ebay":    "e-commerce",
	"shopify": "e-commerce-platform",
	"alibaba": "e-commerce",

	// Finance
	"jpmorgan":      "banking",
	"goldman sachs": "investment-banking",
	"visa":          "payments",
	"mastercard":    "payments",
	"paypal":        "payments",
	"stripe":        "payments",

	// Entertainment
	"netflix": "streaming",
	"disney":  "entertainment",
	"spotify": "music-streaming",

	// Transportation
	"uber":  "ride-sharing",
	"lyft":  "ride-sharing",
	"tesla": "automotive",
	"ford":  "automotive",

	// Other
	"starbucks": "food-service",
	"mcdonalds": "food-service",
	"nike":      "apparel",
	"cocacola":  "beverages",
	"pepsi":     "beverages",
}

// archRivalPairs is the fixed table of famous rivalries. A match forces
// the reduction to at least 80% and ARCH_RIVALS.
var archRivalPairs = [][2]string{
	{"microsoft", "apple"},
	{"google", "microsoft"},
	{"amazon", "microsoft"},
	{"oracle", "salesforce"},
	{"uber", "lyft"},
	{"coca-cola", "pepsi"},
	{"nike", "adidas"},
	{"bmw", "mercedes"},
	{"netflix", "disney"},
	{"spotify", "apple music"},
	{"zoom", "teams"},
	{"slack", "teams"},
	{"dropbox", "google drive"},
	{"aws", "azure"},
	{"stripe", "paypal"},
}

// Severity grades a known-competitor relationship.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityNone   Severity = "NONE"
)

// CompetitorCheck is the result of the fixed-list competitor lookup.
type CompetitorCheck struct {
	AreCompetitors bool     `json:"are_competitors"`
	Reason         string   `json:"reason"`
	Severity       Severity `json:"severity"`
	Group          string   `json:"group,omitempty"`
}

// AreCompetitors checks two company names against the fixed competitor
// groups, then the name-to-industry table. Group matching is bidirectional
// substring containment ("Microsoft Corp" matches "microsoft", "x" matches
// a name contained in it).
func AreCompetitors(company1, company2 string) CompetitorCheck {
	name1 := strings.ToLower(strings.TrimSpace(company1))
	name2 := strings.ToLower(strings.TrimSpace(company2))

	for _, group := range competitorGroups {
		if matchesGroup(name1, group) && matchesGroup(name2, group) {
			return CompetitorCheck{
				AreCompetitors: true,
				Reason:         "Direct competitors in same market segment",
				Severity:       SeverityHigh,
				Group:          group[0],
			}
		}
	}

	industry1 := companyIndustries[name1]
	industry2 := companyIndustries[name2]
	if industry1 != "" && industry1 == industry2 {
		return CompetitorCheck{
			AreCompetitors: true,
			Reason:         "Both operate in " + industry1 + " industry",
			Severity:       SeverityMedium,
		}
	}

	return CompetitorCheck{
		AreCompetitors: false,
		Reason:         "No competitive relationship detected",
		Severity:       SeverityNone,
	}
}

func matchesGroup(name string, group []string) bool {
	if name == "" {
		return false
	}
	for _, member := range group {
		if strings.Contains(name, member) || strings.Contains(member, name) {
			return true
		}
	}
	return false
}
